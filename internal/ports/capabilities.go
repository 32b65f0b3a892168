package ports

import "context"

// IDSource issues fresh unique identifiers for newly created records.
type IDSource interface {
	NextID() int64
}

// Confirmer acknowledges an irreversible action on behalf of the operator
// before the caller invokes the mutation. The access service itself performs
// no confirmation.
type Confirmer interface {
	Confirm(ctx context.Context, action string) bool
}
