package graph

import (
	"github.com/madappgang/stackplan/internal/config"
)

// nodeRule emits the nodes for one feature of the document.
// edgeRule emits the dependency edges for one static rule.
// New rules are added by appending to the slices below; existing rules are
// never edited to accommodate a new one.
type (
	nodeRule func(d *config.Document) []Node
	edgeRule func(d *config.Document) []Edge
)

var nodeRules = []nodeRule{
	clusterNode,
	gatewayNode,
	serviceNodes,
	scheduledTaskNodes,
	eventTaskNodes,
	bucketNodes,
	amplifyNodes,
	sqsNode,
	sesNode,
	domainNode,
	postgresNode,
}

var edgeRules = []edgeRule{
	serviceClusterEdges,
	gatewayServiceEdges,
	taskClusterEdges,
	servicePostgresEdges,
	sqsAccessEdges,
	sesEdges,
	serviceBucketEdges,
	domainGatewayEdges,
	amplifyGatewayEdges,
}

// Project derives the diagram for a document snapshot. Disabled features
// emit no node; an edge is emitted only when both endpoints exist, so the
// diagram never contains a dangling edge.
func Project(doc *config.Document) Diagram {
	var nodes []Node
	for _, rule := range nodeRules {
		nodes = append(nodes, rule(doc)...)
	}

	present := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		present[n.ID] = struct{}{}
	}

	var edges []Edge
	for _, rule := range edgeRules {
		for _, e := range rule(doc) {
			if _, ok := present[e.From]; !ok {
				continue
			}
			if _, ok := present[e.To]; !ok {
				continue
			}
			edges = append(edges, e)
		}
	}

	return Diagram{Nodes: nodes, Edges: edges}
}

func clusterNode(d *config.Document) []Node {
	return []Node{{ID: "cluster", Kind: KindCluster, BackingName: d.ClusterName()}}
}

func gatewayNode(d *config.Document) []Node {
	return []Node{{ID: "gateway", Kind: KindGateway, BackingName: d.APIDomain()}}
}

func serviceNodes(d *config.Document) []Node {
	nodes := make([]Node, 0, len(d.Services))
	for _, s := range d.Services {
		nodes = append(nodes, Node{ID: nodeID(KindService, s.Name), Kind: KindService})
	}
	return nodes
}

func scheduledTaskNodes(d *config.Document) []Node {
	nodes := make([]Node, 0, len(d.ScheduledTasks))
	for _, t := range d.ScheduledTasks {
		nodes = append(nodes, Node{ID: nodeID(KindScheduledTask, t.Name), Kind: KindScheduledTask})
	}
	return nodes
}

func eventTaskNodes(d *config.Document) []Node {
	nodes := make([]Node, 0, len(d.EventProcessorTasks))
	for _, t := range d.EventProcessorTasks {
		nodes = append(nodes, Node{ID: nodeID(KindEventTask, t.Name), Kind: KindEventTask})
	}
	return nodes
}

func bucketNodes(d *config.Document) []Node {
	nodes := make([]Node, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		nodes = append(nodes, Node{
			ID:          nodeID(KindBucket, b.Name),
			Kind:        KindBucket,
			BackingName: d.BucketFullName(b),
		})
	}
	return nodes
}

func amplifyNodes(d *config.Document) []Node {
	nodes := make([]Node, 0, len(d.AmplifyApps))
	for _, a := range d.AmplifyApps {
		nodes = append(nodes, Node{ID: nodeID(KindAmplifyApp, a.Name), Kind: KindAmplifyApp})
	}
	return nodes
}

func sqsNode(d *config.Document) []Node {
	if !d.Sqs.Enabled {
		return nil
	}
	return []Node{{ID: "sqs", Kind: KindSQS, BackingName: d.QueueName()}}
}

func sesNode(d *config.Document) []Node {
	if !d.Ses.Enabled {
		return nil
	}
	return []Node{{ID: "ses", Kind: KindSES, BackingName: d.Ses.DomainName}}
}

func domainNode(d *config.Document) []Node {
	if !d.Domain.Enabled {
		return nil
	}
	return []Node{{ID: "domain", Kind: KindDomain, BackingName: d.EnvDomain()}}
}

func postgresNode(d *config.Document) []Node {
	if !d.Postgres.Enabled {
		return nil
	}
	return []Node{{ID: "postgres", Kind: KindPostgres, BackingName: d.Postgres.Dbname}}
}

func serviceClusterEdges(d *config.Document) []Edge {
	edges := make([]Edge, 0, len(d.Services))
	for _, s := range d.Services {
		edges = append(edges, Edge{From: nodeID(KindService, s.Name), To: "cluster"})
	}
	return edges
}

func gatewayServiceEdges(d *config.Document) []Edge {
	edges := make([]Edge, 0, len(d.Services))
	for _, s := range d.Services {
		edges = append(edges, Edge{From: "gateway", To: nodeID(KindService, s.Name)})
	}
	return edges
}

func taskClusterEdges(d *config.Document) []Edge {
	var edges []Edge
	for _, t := range d.ScheduledTasks {
		edges = append(edges, Edge{From: nodeID(KindScheduledTask, t.Name), To: "cluster"})
	}
	for _, t := range d.EventProcessorTasks {
		edges = append(edges, Edge{From: nodeID(KindEventTask, t.Name), To: "cluster"})
	}
	return edges
}

func servicePostgresEdges(d *config.Document) []Edge {
	if !d.Postgres.Enabled {
		return nil
	}
	edges := make([]Edge, 0, len(d.Services))
	for _, s := range d.Services {
		edges = append(edges, Edge{From: nodeID(KindService, s.Name), To: "postgres"})
	}
	return edges
}

// sqsAccessEdges connects workloads that declare sqs_access to the queue.
// The rule is inert while SQS is disabled.
func sqsAccessEdges(d *config.Document) []Edge {
	if !d.Sqs.Enabled {
		return nil
	}
	var edges []Edge
	for _, s := range d.Services {
		if s.SQSAccess {
			edges = append(edges, Edge{From: nodeID(KindService, s.Name), To: "sqs"})
		}
	}
	for _, t := range d.ScheduledTasks {
		if t.SQSAccess {
			edges = append(edges, Edge{From: nodeID(KindScheduledTask, t.Name), To: "sqs"})
		}
	}
	for _, t := range d.EventProcessorTasks {
		if t.SQSAccess {
			edges = append(edges, Edge{From: nodeID(KindEventTask, t.Name), To: "sqs"})
		}
	}
	return edges
}

func sesEdges(d *config.Document) []Edge {
	if !d.Ses.Enabled {
		return nil
	}
	edges := make([]Edge, 0, len(d.Services))
	for _, s := range d.Services {
		edges = append(edges, Edge{From: nodeID(KindService, s.Name), To: "ses"})
	}
	return edges
}

func serviceBucketEdges(d *config.Document) []Edge {
	var edges []Edge
	for _, s := range d.Services {
		for _, b := range d.Buckets {
			edges = append(edges, Edge{From: nodeID(KindService, s.Name), To: nodeID(KindBucket, b.Name)})
		}
	}
	return edges
}

func domainGatewayEdges(d *config.Document) []Edge {
	if !d.Domain.Enabled {
		return nil
	}
	return []Edge{{From: "domain", To: "gateway"}}
}

func amplifyGatewayEdges(d *config.Document) []Edge {
	edges := make([]Edge, 0, len(d.AmplifyApps))
	for _, a := range d.AmplifyApps {
		edges = append(edges, Edge{From: nodeID(KindAmplifyApp, a.Name), To: "gateway"})
	}
	return edges
}
