package domain

import "context"

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Search(ctx context.Context, f Filters) (SearchResult, error)
}
