package registry

import (
	"context"
	"fmt"

	"gateguard/internal/core/domain/definition"
	"gateguard/internal/core/ports"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/validator"
)

type compiled struct {
	schema      *validator.Schema
	stopOnError bool
}

// Usecase manages schema definitions and validates payloads against them.
// Compiled schemas are cached per name and dropped when the definition is deleted.
type Usecase struct {
	repo     ports.DefinitionRepository
	checker  DefinitionChecker
	structs  validator.StructValidator
	recorder Recorder

	schemas *schemaCache
}

func NewUsecase(repo ports.DefinitionRepository, checker DefinitionChecker, structs validator.StructValidator, recorder Recorder) *Usecase {
	return &Usecase{
		repo:     repo,
		checker:  checker,
		structs:  structs,
		recorder: recorder,
		schemas:  newSchemaCache(),
	}
}

func (uc *Usecase) RegisterDefinition(ctx context.Context, def *definition.Definition) (*definition.Definition, error) {
	log := logger.FromContext(ctx)
	log.Debug("Registering schema definition", logger.String("schema", def.Name), logger.Int("fields", len(def.Fields)))

	c, err := uc.prepare(ctx, def)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, def); err != nil {
		return nil, err
	}

	uc.schemas.Store(def.Name, c)
	log.Info("Schema definition registered", logger.String("schema", def.Name))
	return def, nil
}

// ReplaceDefinition swaps an existing definition for def. Validations already
// running keep the schema they started with.
func (uc *Usecase) ReplaceDefinition(ctx context.Context, def *definition.Definition) (*definition.Definition, error) {
	log := logger.FromContext(ctx)
	log.Debug("Replacing schema definition", logger.String("schema", def.Name), logger.Int("fields", len(def.Fields)))

	c, err := uc.prepare(ctx, def)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, def); err != nil {
		return nil, err
	}

	uc.schemas.Store(def.Name, c)
	log.Info("Schema definition replaced", logger.String("schema", def.Name))
	return def, nil
}

func (uc *Usecase) prepare(ctx context.Context, def *definition.Definition) (*compiled, error) {
	log := logger.FromContext(ctx)

	if err := uc.structs.Validate(def); err != nil {
		log.Warn("Malformed schema definition", logger.String("schema", def.Name), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", definition.ErrInvalidDefinition, err)
	}

	if err := uc.checker.CheckDefinition(def); err != nil {
		log.Warn("Schema definition check failed", logger.String("schema", def.Name), logger.Error(err))
		return nil, err
	}

	schema, err := definition.Compile(def)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", definition.ErrInvalidDefinition, err)
	}
	return &compiled{schema: schema, stopOnError: def.StopOnError}, nil
}

func (uc *Usecase) GetDefinition(ctx context.Context, name string) (*definition.Definition, error) {
	log := logger.FromContext(ctx)
	log.Debug("Getting schema definition", logger.String("schema", name))

	return uc.repo.GetByName(ctx, name)
}

func (uc *Usecase) ListDefinitions(ctx context.Context) ([]*definition.Definition, error) {
	return uc.repo.List(ctx)
}

func (uc *Usecase) DeleteDefinition(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)
	log.Debug("Deleting schema definition", logger.String("schema", name))

	if err := uc.repo.Delete(ctx, name); err != nil {
		return err
	}
	uc.schemas.Delete(name)
	return nil
}

// Validate runs data through the named schema. A nil stopOnError falls back to
// the definition's own setting.
func (uc *Usecase) Validate(ctx context.Context, name string, data map[string]any, stopOnError *bool) (map[string]any, error) {
	log := logger.FromContext(ctx)

	c, err := uc.compiled(ctx, name)
	if err != nil {
		return nil, err
	}

	stop := c.stopOnError
	if stopOnError != nil {
		stop = *stopOnError
	}

	result, err := c.schema.Validate(data, stop)
	if uc.recorder != nil {
		uc.recorder.RecordValidation(ctx, name, err)
	}
	if err != nil {
		log.Debug("Payload rejected", logger.String("schema", name), logger.Bool("stop_on_error", stop), logger.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *Usecase) compiled(ctx context.Context, name string) (*compiled, error) {
	c, generation, ok := uc.schemas.lookup(name)
	if ok {
		return c, nil
	}

	def, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	schema, err := definition.Compile(def)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", definition.ErrInvalidDefinition, err)
	}

	return uc.schemas.Fill(name, generation, &compiled{schema: schema, stopOnError: def.StopOnError}), nil
}
