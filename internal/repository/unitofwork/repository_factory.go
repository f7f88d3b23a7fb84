package unitofwork

import "context"

// RepositoryFactory hands out a fresh UnitOfWork per request so that
// transactional state never leaks between callers.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
