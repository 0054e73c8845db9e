package schema

import (
	"context"

	"gateguard/internal/core/domain/definition"
)

type Manager interface {
	RegisterDefinition(ctx context.Context, def *definition.Definition) (*definition.Definition, error)
	ReplaceDefinition(ctx context.Context, def *definition.Definition) (*definition.Definition, error)
	GetDefinition(ctx context.Context, name string) (*definition.Definition, error)
	ListDefinitions(ctx context.Context) ([]*definition.Definition, error)
	DeleteDefinition(ctx context.Context, name string) error
	Validate(ctx context.Context, name string, data map[string]any, stopOnError *bool) (map[string]any, error)
}
