package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"gateguard/internal/core/domain/definition"
	"gateguard/internal/platform/logger"
)

var extensions = map[string]bool{".yaml": true, ".yml": true, ".json": true}

// Decode reads a YAML or JSON definition document. Unknown keys are rejected.
func Decode(data []byte) (*definition.Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parse definition: empty document")
	}

	var def definition.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "mapstructure",
		Result:      &def,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}

func LoadFile(path string) (*definition.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	def, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return def, nil
}

// LoadDir loads every .yaml, .yml and .json file directly inside dir in
// lexical order. Subdirectories are not visited.
func LoadDir(dir string) ([]*definition.Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	defs := make([]*definition.Definition, 0, len(names))
	for _, name := range names {
		def, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

type Registrar interface {
	RegisterDefinition(ctx context.Context, def *definition.Definition) (*definition.Definition, error)
}

// Preloader registers the definitions found in a directory at startup.
type Preloader struct {
	registrar Registrar
	logger    logger.Logger
}

func NewPreloader(registrar Registrar, log logger.Logger) *Preloader {
	return &Preloader{
		registrar: registrar,
		logger:    log,
	}
}

// Preload registers every definition in dir and returns how many were added.
// Definitions that already exist are skipped; any other failure stops the run.
func (p *Preloader) Preload(ctx context.Context, dir string) (int, error) {
	defs, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, def := range defs {
		if _, err := p.registrar.RegisterDefinition(ctx, def); err != nil {
			var exists *definition.AlreadyExistsError
			if errors.As(err, &exists) {
				p.logger.Warn("Schema definition already registered, skipping", logger.String("schema", def.Name))
				continue
			}
			return loaded, fmt.Errorf("register %s: %w", def.Name, err)
		}
		loaded++
	}

	p.logger.Info("Schema definitions preloaded", logger.String("dir", dir), logger.Int("count", loaded))
	return loaded, nil
}
