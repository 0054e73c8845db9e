package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gateguard/internal/core/domain/definition"
	"gateguard/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gateguard",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info().String())
		},
	}
}

func newTransformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transforms",
		Short: "List the named validators and hooks a schema may reference",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range definition.TransformNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
