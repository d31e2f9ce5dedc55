package port

import "context"

// Transactor scopes a read-then-write sequence to a single store
// transaction. The transaction travels in the context; repository calls
// made inside fn join it. fn returning an error rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
