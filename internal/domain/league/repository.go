package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item League) error
	List(ctx context.Context) ([]League, error)
	GetByCode(ctx context.Context, code string) (League, bool, error)
}
