package schema

import "github.com/google/uuid"

// IDGenerator produces identifiers for newly created schema nodes. The prefix
// names the node kind ("field", "section", "tab", "form").
type IDGenerator func(prefix string) string

// NewID is the default generator: a kind prefix plus a random UUID, so ids
// stay unique without any coordination.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
