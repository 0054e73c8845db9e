package ports

import (
	"context"

	"gateguard/internal/core/domain/definition"
)

type DefinitionRepository interface {
	Save(ctx context.Context, def *definition.Definition) error
	Update(ctx context.Context, def *definition.Definition) error
	GetByName(ctx context.Context, name string) (*definition.Definition, error)
	List(ctx context.Context) ([]*definition.Definition, error)
	Delete(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
}
