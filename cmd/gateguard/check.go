package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gateguard/internal/adapters/loader"
	"gateguard/internal/core/domain/definition"
	"gateguard/internal/platform/logger"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Check schema definitions without validating any payload",
		Long:  `Loads each schema file, or every .yaml, .yml and .json file in a directory, and reports definitions that would be rejected at registration.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	ctx := logger.WithLogger(cmd.Context(), log)

	var defs []*definition.Definition
	for _, path := range args {
		loaded, err := loadPath(path)
		if err != nil {
			return err
		}
		defs = append(defs, loaded...)
	}

	reg := newRegistry()
	failed := 0
	for _, def := range defs {
		if _, err := reg.RegisterDefinition(ctx, def); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", def.Name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", def.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d schema definitions rejected", failed, len(defs))
	}
	return nil
}

func loadPath(path string) ([]*definition.Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loader.LoadDir(path)
	}

	def, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []*definition.Definition{def}, nil
}
