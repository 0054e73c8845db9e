package main

import (
	"github.com/spf13/cobra"

	"gateguard/internal/adapters/repository/memory"
	"gateguard/internal/adapters/validator"
	"gateguard/internal/core/domain/definition"
	"gateguard/internal/core/usecase/registry"
	"gateguard/internal/platform/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gateguard",
		Short:         "gateguard validates payloads against declarative schemas",
		Long:          `gateguard checks schema definitions written in YAML or JSON and validates payloads against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", string(logger.LevelWarn), "Log level (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newTransformsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// commandLogger builds a console logger on stderr at the level given by
// --log-level.
func commandLogger(cmd *cobra.Command) (logger.Logger, error) {
	raw, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	var level logger.Level
	if err := level.Decode(raw); err != nil {
		return nil, err
	}

	return logger.NewZapLogger(logger.Config{
		Environment: "production",
		Level:       level,
		Format:      logger.FormatText,
	})
}

// newRegistry wires an in-memory registry the same way the server does.
func newRegistry() *registry.Usecase {
	return registry.NewUsecase(memory.NewRepository(), definition.NewService(), validator.NewPlaygroundAdapter(), nil)
}
