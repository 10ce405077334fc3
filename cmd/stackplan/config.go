package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds settings for the stackplan CLI. Every flag can also be set
// through the environment with a STACKPLAN_ prefix, e.g. STACKPLAN_TIER.
type Config struct {
	DocumentPath     string
	PricingTablePath string
	Tier             string
	AuroraACURate    string
	LogLevel         string
}

func parseConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("stackplan", pflag.ContinueOnError)

	fs.StringP("document", "d", "", "Path to the environment document (YAML)")
	fs.StringP("pricing-table", "p", "", "Path to the tiered pricing table (JSON), optional")
	fs.StringP("tier", "t", "startup", "Pricing tier: startup, scaleup or highload")
	fs.String("aurora-acu-rate", "0.12", "Hourly USD rate of one Aurora capacity unit")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("STACKPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	config := &Config{
		DocumentPath:     v.GetString("document"),
		PricingTablePath: v.GetString("pricing-table"),
		Tier:             v.GetString("tier"),
		AuroraACURate:    v.GetString("aurora-acu-rate"),
		LogLevel:         v.GetString("log-level"),
	}

	if config.DocumentPath == "" {
		return nil, fmt.Errorf("--document is required")
	}

	return config, nil
}
