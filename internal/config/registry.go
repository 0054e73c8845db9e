package config

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type RegistryConfig struct {
	BaseConfig
	Registry RegistrySettings `envconfig:"REGISTRY"`
}

// RegistrySettings selects where schema definitions live. SchemaDir, when
// set, is loaded into the registry at startup. Names are derived with
// split_words, giving REGISTRY_STORAGE and REGISTRY_SCHEMA_DIR.
type RegistrySettings struct {
	Storage   string `split_words:"true" default:"memory" validate:"oneof=memory postgres"`
	SchemaDir string `split_words:"true" default:""`
}

func (c *RegistryConfig) UsesPostgres() bool {
	return c.Registry.Storage == StoragePostgres
}

func LoadRegistry() (*RegistryConfig, error) {
	var cfg RegistryConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
