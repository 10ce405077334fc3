package graph

import "fmt"

// Node is one diagram node. BackingName is the derived AWS identifier shown
// next to the node (cluster name, queue name, bucket name); it is display
// data, never written back to the document.
type Node struct {
	ID          string       `json:"id"`
	Kind        ResourceKind `json:"kind"`
	BackingName string       `json:"backingName,omitempty"`
}

// Edge is a directed dependency between two nodes, declared by rule and
// recomputed on every projection.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Diagram is the full projection result for one document snapshot.
type Diagram struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NotFoundError kinds.
const (
	KindUnknownKind = "unknown-kind"
)

// NotFoundError reports a node id that resolves to neither a known entity
// nor a known stub kind.
type NotFoundError struct {
	Kind   string
	NodeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.NodeID)
}
