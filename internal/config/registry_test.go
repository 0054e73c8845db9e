package config

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RegistryConfigTestSuite struct {
	suite.Suite
}

func (s *RegistryConfigTestSuite) SetupTest() {
	clearEnv(s.T(), append(baseEnvVars, "REGISTRY_STORAGE", "REGISTRY_SCHEMA_DIR", "STORAGE", "SCHEMA_DIR")...)
}

func (s *RegistryConfigTestSuite) TestLoadRegistry_DefaultValues() {
	cfg, err := LoadRegistry()

	s.Require().NoError(err)
	s.Assert().Equal(StorageMemory, cfg.Registry.Storage)
	s.Assert().Empty(cfg.Registry.SchemaDir)
	s.Assert().False(cfg.UsesPostgres())
}

func (s *RegistryConfigTestSuite) TestLoadRegistry_WithEnvironmentVariables() {
	setEnv(s.T(), map[string]string{
		"REGISTRY_STORAGE":    "postgres",
		"REGISTRY_SCHEMA_DIR": "/etc/gateguard/schemas",
	})

	cfg, err := LoadRegistry()

	s.Require().NoError(err)
	s.Assert().Equal(StoragePostgres, cfg.Registry.Storage)
	s.Assert().Equal("/etc/gateguard/schemas", cfg.Registry.SchemaDir)
	s.Assert().True(cfg.UsesPostgres())
}

func (s *RegistryConfigTestSuite) TestLoadRegistry_IgnoresBareNames() {
	setEnv(s.T(), map[string]string{"STORAGE": "postgres", "SCHEMA_DIR": "/tmp"})

	cfg, err := LoadRegistry()

	s.Require().NoError(err)
	s.Assert().Equal(StorageMemory, cfg.Registry.Storage)
	s.Assert().Empty(cfg.Registry.SchemaDir)
}

func (s *RegistryConfigTestSuite) TestLoadRegistry_UnknownStorage() {
	setEnv(s.T(), map[string]string{"REGISTRY_STORAGE": "redis"})

	cfg, err := LoadRegistry()

	s.Require().Error(err)
	s.Assert().Nil(cfg)
	s.Assert().EqualError(err, "invalid configuration: Registry.Storage must satisfy oneof=memory postgres (got redis)")
}

func TestRegistryConfigTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryConfigTestSuite))
}
