package graph

import "github.com/google/uuid"

// nodeNamespace scopes name-based node IDs to this package.
var nodeNamespace = uuid.MustParse("6f1d3c52-8a0e-4c2b-9d47-3b5e1a7f0c91")

// NodeID is a content-addressed identifier for graph nodes. Equal creation
// paths always yield equal IDs, so re-evaluating the same script produces the
// same graph.
type NodeID uuid.UUID

// NewNodeID derives a NodeID from a creation path such as "defpart/ball".
func NewNodeID(path string) NodeID {
	return NodeID(uuid.NewSHA1(nodeNamespace, []byte(path)))
}

// IsZero reports whether id is the zero value.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}

func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first 8 hex characters, for log and error messages.
func (id NodeID) Short() string {
	return id.String()[:8]
}
