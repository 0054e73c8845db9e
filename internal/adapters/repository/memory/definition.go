package memory

import (
	"context"
	"errors"

	"gateguard/internal/core/domain/definition"
	memoryPlatform "gateguard/internal/platform/repository/memory"
)

type Repository struct {
	*memoryPlatform.Repository[*definition.Definition]
}

func NewRepository() *Repository {
	return &Repository{
		Repository: memoryPlatform.New(memoryPlatform.WithClone((*definition.Definition).Clone)),
	}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*definition.Definition, error) {
	def, err := r.Repository.Get(ctx, name)
	if err != nil {
		return nil, translate(err, name)
	}
	return def, nil
}

func (r *Repository) Save(ctx context.Context, def *definition.Definition) error {
	return translate(r.Repository.Save(ctx, def), def.Name)
}

func (r *Repository) Update(ctx context.Context, def *definition.Definition) error {
	return translate(r.Repository.Update(ctx, def), def.Name)
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	return translate(r.Repository.Delete(ctx, name), name)
}

func translate(err error, name string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memoryPlatform.ErrNotFound):
		return definition.ErrDefinitionNotFound
	case errors.Is(err, memoryPlatform.ErrAlreadyExists):
		return &definition.AlreadyExistsError{Name: name}
	default:
		return err
	}
}
