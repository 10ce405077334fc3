// Package graph derives the node/edge diagram from a document snapshot and
// resolves node ids back to their backing entities. Projection is a pure
// function of the document: nodes and edges live exactly one call and are
// never persisted.
package graph

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ResourceKind identifies what a node represents. It is a closed set:
// adding a kind means extending the switches below, which the compiler and
// the exhaustiveness of String keep honest.
type ResourceKind int

const (
	// Entity kinds back a named collection element.
	KindService ResourceKind = iota
	KindScheduledTask
	KindEventTask
	KindBucket
	KindAmplifyApp

	// Structural and singleton kinds have fixed node ids.
	KindCluster
	KindGateway
	KindSQS
	KindSES
	KindDomain
	KindPostgres
)

func (k ResourceKind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindScheduledTask:
		return "scheduled"
	case KindEventTask:
		return "event"
	case KindBucket:
		return "bucket"
	case KindAmplifyApp:
		return "amplify"
	case KindCluster:
		return "cluster"
	case KindGateway:
		return "gateway"
	case KindSQS:
		return "sqs"
	case KindSES:
		return "ses"
	case KindDomain:
		return "domain"
	case KindPostgres:
		return "postgres"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalJSON renders the kind as its string form.
func (k ResourceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// entityKinds maps id prefixes to the kinds backed by named collections.
var entityKinds = map[string]ResourceKind{
	"service":   KindService,
	"scheduled": KindScheduledTask,
	"event":     KindEventTask,
	"bucket":    KindBucket,
	"amplify":   KindAmplifyApp,
}

// singletonKinds maps fixed node ids to structural and singleton kinds.
var singletonKinds = map[string]ResourceKind{
	"cluster":  KindCluster,
	"gateway":  KindGateway,
	"sqs":      KindSQS,
	"ses":      KindSES,
	"domain":   KindDomain,
	"postgres": KindPostgres,
}

// nodeID builds the id for an entity-backed node: "{prefix}-{name}".
func nodeID(kind ResourceKind, name string) string {
	return kind.String() + "-" + name
}

// parseNodeID splits a node id into kind and entity name. Singleton ids
// carry no name part.
func parseNodeID(id string) (ResourceKind, string, bool) {
	if k, ok := singletonKinds[id]; ok {
		return k, "", true
	}
	prefix, name, found := strings.Cut(id, "-")
	if !found {
		return 0, "", false
	}
	k, ok := entityKinds[prefix]
	if !ok {
		return 0, "", false
	}
	return k, name, true
}
