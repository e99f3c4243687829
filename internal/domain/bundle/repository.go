package bundle

import "context"

type Repository interface {
	// List returns every configured bundle
	List(ctx context.Context) ([]*Bundle, error)
}
