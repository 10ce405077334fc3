package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/madappgang/stackplan/internal/config"
	"github.com/madappgang/stackplan/internal/graph"
	"github.com/madappgang/stackplan/internal/pricing"
)

// nodeCost pairs a diagram node with its monthly estimate for the report.
type nodeCost struct {
	graph.Node
	Estimate pricing.Estimate `json:"estimate"`
}

// report is the JSON document printed to stdout.
type report struct {
	Project  string          `json:"project"`
	Env      string          `json:"env"`
	Tier     pricing.Tier    `json:"tier"`
	Nodes    []nodeCost      `json:"nodes"`
	Edges    []graph.Edge    `json:"edges"`
	Total    decimal.Decimal `json:"total"`
	Complete bool            `json:"complete"`
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("stackplan failed")
	}
}

func run(cfg *Config) error {
	doc, err := loadDocument(cfg.DocumentPath)
	if err != nil {
		return err
	}

	tier, err := pricing.ParseTier(cfg.Tier)
	if err != nil {
		return err
	}

	table, err := loadTable(cfg.PricingTablePath)
	if err != nil {
		return err
	}

	acuRate, err := decimal.NewFromString(cfg.AuroraACURate)
	if err != nil {
		return fmt.Errorf("parse aurora-acu-rate: %w", err)
	}

	engine := pricing.NewEngine(table, log.Logger)
	diagram := graph.Project(doc)

	rep := report{
		Project: doc.Project,
		Env:     doc.Env,
		Tier:    tier,
		Edges:   diagram.Edges,
	}

	var estimates []pricing.Estimate
	for _, node := range diagram.Nodes {
		est, err := engine.ComputeMonthly(resourceKey(node.Kind), tier, nodeParams(node.Kind, doc, acuRate))
		if err != nil {
			return err
		}
		rep.Nodes = append(rep.Nodes, nodeCost{Node: node, Estimate: est})
		estimates = append(estimates, est)
	}
	rep.Total, rep.Complete = pricing.Sum(estimates...)

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func loadDocument(path string) (*config.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var raw config.Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return config.Load(raw)
}

func loadTable(path string) (pricing.Table, error) {
	if path == "" {
		log.Debug().Msg("No pricing table supplied, table-priced nodes will be unavailable")
		return pricing.Table{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing table: %w", err)
	}
	return pricing.ParseTable(data)
}

// resourceKey maps a node kind to the key the pricing engine knows it by.
// Kinds with no pricing data map to keys the engine reports Unavailable for.
func resourceKey(kind graph.ResourceKind) string {
	switch kind {
	case graph.KindService, graph.KindScheduledTask, graph.KindEventTask:
		return "fargate"
	case graph.KindBucket:
		return "s3"
	case graph.KindSQS:
		return "sqs"
	case graph.KindSES:
		return "ses"
	case graph.KindDomain:
		return "route53"
	case graph.KindPostgres:
		return "aurora"
	case graph.KindGateway:
		return "apigateway"
	case graph.KindAmplifyApp:
		return "amplify"
	default:
		return kind.String()
	}
}

// nodeParams supplies usage inputs for formula-priced kinds.
func nodeParams(kind graph.ResourceKind, doc *config.Document, acuRate decimal.Decimal) pricing.Params {
	if kind != graph.KindPostgres {
		return pricing.Params{}
	}
	return pricing.Params{
		MinCapacity: float64(doc.Postgres.MinCapacity),
		MaxCapacity: float64(doc.Postgres.MaxCapacity),
		HourlyRate:  acuRate,
	}
}
