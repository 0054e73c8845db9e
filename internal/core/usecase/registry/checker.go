package registry

import (
	"context"

	"gateguard/internal/core/domain/definition"
)

type DefinitionChecker interface {
	CheckDefinition(def *definition.Definition) error
}

// Recorder observes the outcome of every validation run.
type Recorder interface {
	RecordValidation(ctx context.Context, schema string, err error)
}
