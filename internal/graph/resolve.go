package graph

import (
	"github.com/madappgang/stackplan/internal/config"
)

// Entity is the tagged result of resolving a node id. Exactly one pointer
// matching Kind is set. The values are copies of the backing entries;
// writes go through ApplyPartialUpdate, never through these pointers.
type Entity struct {
	Kind ResourceKind

	Service       *config.Service
	ScheduledTask *config.ScheduledTask
	EventTask     *config.EventProcessorTask
	Bucket        *config.Bucket
	AmplifyApp    *config.AmplifyApp

	Workload *config.Workload
	Sqs      *config.Sqs
	Ses      *config.Ses
	Domain   *config.Domain
	Postgres *config.Postgres
}

// Default stub field values, used when a node id has no backing document
// entry yet. The stub supports editing a property panel before the entity
// exists; nothing is written back until an edit goes through
// ApplyPartialUpdate.
const (
	stubSchedule     = "rate(1 day)"
	stubCPU          = 256
	stubMemory       = 512
	stubDesiredCount = 1
)

// Resolve maps a node id back to its backing entity, or to a default stub
// for the kind when the document has no entry with that name. An id with an
// unrecognized kind prefix fails with NotFoundError("unknown-kind").
func Resolve(doc *config.Document, nodeID string) (Entity, error) {
	kind, name, ok := parseNodeID(nodeID)
	if !ok {
		return Entity{}, &NotFoundError{Kind: KindUnknownKind, NodeID: nodeID}
	}

	switch kind {
	case KindService:
		for _, s := range doc.Services {
			if s.Name == name {
				return Entity{Kind: kind, Service: &s}, nil
			}
		}
		return Entity{Kind: kind, Service: &config.Service{
			Name:         name,
			CPU:          stubCPU,
			Memory:       stubMemory,
			DesiredCount: stubDesiredCount,
		}}, nil

	case KindScheduledTask:
		for _, t := range doc.ScheduledTasks {
			if t.Name == name {
				return Entity{Kind: kind, ScheduledTask: &t}, nil
			}
		}
		return Entity{Kind: kind, ScheduledTask: &config.ScheduledTask{
			Name:     name,
			Schedule: stubSchedule,
		}}, nil

	case KindEventTask:
		for _, t := range doc.EventProcessorTasks {
			if t.Name == name {
				return Entity{Kind: kind, EventTask: &t}, nil
			}
		}
		return Entity{Kind: kind, EventTask: &config.EventProcessorTask{
			Name:     name,
			RuleName: name,
		}}, nil

	case KindBucket:
		for _, b := range doc.Buckets {
			if b.Name == name {
				return Entity{Kind: kind, Bucket: &b}, nil
			}
		}
		return Entity{Kind: kind, Bucket: &config.Bucket{Name: name}}, nil

	case KindAmplifyApp:
		for _, a := range doc.AmplifyApps {
			if a.Name == name {
				return Entity{Kind: kind, AmplifyApp: &a}, nil
			}
		}
		return Entity{Kind: kind, AmplifyApp: &config.AmplifyApp{Name: name}}, nil

	case KindCluster, KindGateway:
		w := doc.Workload
		return Entity{Kind: kind, Workload: &w}, nil

	case KindSQS:
		s := doc.Sqs
		return Entity{Kind: kind, Sqs: &s}, nil

	case KindSES:
		s := doc.Ses
		return Entity{Kind: kind, Ses: &s}, nil

	case KindDomain:
		d := doc.Domain
		return Entity{Kind: kind, Domain: &d}, nil

	case KindPostgres:
		p := doc.Postgres
		return Entity{Kind: kind, Postgres: &p}, nil

	default:
		return Entity{}, &NotFoundError{Kind: KindUnknownKind, NodeID: nodeID}
	}
}
