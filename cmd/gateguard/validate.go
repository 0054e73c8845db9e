package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gateguard/internal/adapters/http/response"
	"gateguard/internal/adapters/loader"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/validator"
)

var errPayloadInvalid = errors.New("payload failed validation")

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON payload against a schema file",
		Long: `Loads a schema definition from --schema and validates the JSON object read from --input.
The cleaned data is printed on success. Field errors are printed and the command exits with status 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	cmd.Flags().String("schema", "", "Path to the schema definition (YAML or JSON)")
	cmd.Flags().String("input", "-", "Path to the JSON payload, - for stdin")
	cmd.Flags().Bool("stop-on-error", false, "Stop at the first failing field (overrides the schema setting)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	log, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	ctx := logger.WithLogger(cmd.Context(), log)

	schemaPath, _ := cmd.Flags().GetString("schema")
	inputPath, _ := cmd.Flags().GetString("input")

	var stopOnError *bool
	if cmd.Flags().Changed("stop-on-error") {
		stop, _ := cmd.Flags().GetBool("stop-on-error")
		stopOnError = &stop
	}

	def, err := loader.LoadFile(schemaPath)
	if err != nil {
		return err
	}

	payload, err := readPayload(cmd.InOrStdin(), inputPath)
	if err != nil {
		return err
	}

	reg := newRegistry()
	if _, err := reg.RegisterDefinition(ctx, def); err != nil {
		return err
	}

	data, err := reg.Validate(ctx, def.Name, payload, stopOnError)
	if err != nil {
		var validationErr *validator.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		if err := printValidationError(cmd.OutOrStdout(), validationErr); err != nil {
			return err
		}
		return errPayloadInvalid
	}

	return printJSON(cmd.OutOrStdout(), response.DataResponse{Data: data})
}

func readPayload(stdin io.Reader, path string) (map[string]any, error) {
	var src io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	var payload map[string]any
	decoder := json.NewDecoder(src)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if payload == nil {
		return nil, errors.New("decode input: payload must be a JSON object")
	}
	return payload, nil
}

func printValidationError(w io.Writer, ve *validator.ValidationError) error {
	return printJSON(w, response.NewValidationErrorResponse(ve))
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
