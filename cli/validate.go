package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	otelapi "go.opentelemetry.io/otel"
	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow/blocks"
	"github.com/blockflowhq/blockflow/graph"
	"github.com/blockflowhq/blockflow/loader"
	blockotel "github.com/blockflowhq/blockflow/otel"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Resolve and type-check every node in a workflow file",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	cmd.Flags().String("trace-endpoint", "", "Export resolution spans over OTLP/HTTP to host:port")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")
	traceEndpoint, _ := cmd.Flags().GetString("trace-endpoint")
	out := cmd.OutOrStdout()

	wf, err := loadWorkflowFile(filePath)
	if err != nil {
		return err
	}

	var opts []graph.Option
	if traceEndpoint != "" {
		ctx := cmd.Context()
		shutdown, err := blockotel.Setup(ctx, traceEndpoint)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()

		tracing := blockotel.NewTracingHandler(otelapi.GetTracerProvider().Tracer("blockflow/resolve"))
		opts = append(opts, graph.WithEventHandler(tracing.Handle))
	}

	diags := wf.Validate(blocks.Builtin(), opts...)

	printDiagnostics(out, diags, format)

	hasErrs := graph.HasErrors(diags)
	hasWarns := len(graph.Warnings(diags)) > 0

	if hasErrs || (strict && hasWarns) {
		return exitError(exitValidation, "validation failed")
	}

	return nil
}

// loadWorkflowFile reads and decodes a workflow, mapping missing files onto
// the dedicated exit code.
func loadWorkflowFile(filePath string) (*graph.Workflow, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- path from caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, exitError(exitFileNotFound, "file not found: %s", filePath)
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}

	if err := loader.DetectFormat(data, filePath); err != nil {
		return nil, exitError(exitValidation, "%s: %v", filePath, err)
	}

	wf, err := loader.LoadWorkflowBytes(data, filePath)
	if err != nil {
		return nil, exitError(exitValidation, "%s: %v", filePath, err)
	}
	return wf, nil
}

// printDiagnostics writes diagnostics to the writer in the requested format,
// followed by a summary line (for text format).
func printDiagnostics(w io.Writer, diags []graph.Diagnostic, format string) {
	if format == "json" {
		// Output an empty array rather than null when there are no findings.
		if diags == nil {
			diags = []graph.Diagnostic{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(diags)
		return
	}

	for _, d := range diags {
		sev := strings.ToUpper(d.Severity)
		loc := d.NodeID
		if d.Field != "" {
			loc = loc + "." + d.Field
		}
		if loc != "" {
			fmt.Fprintf(w, "%s [%s]: %s (at %s)\n", sev, d.Code, d.Message, loc)
		} else {
			fmt.Fprintf(w, "%s [%s]: %s\n", sev, d.Code, d.Message)
		}
	}

	errs := graph.Errors(diags)
	warns := graph.Warnings(diags)

	switch {
	case len(errs) == 0 && len(warns) == 0:
		fmt.Fprintln(w, "Valid!")
	case len(errs) == 0 && len(warns) > 0:
		fmt.Fprintf(w, "\nValid! (%d %s)\n", len(warns), pluralize("warning", len(warns)))
	default:
		fmt.Fprintf(w, "\n%d %s, %d %s\n",
			len(errs), pluralize("error", len(errs)),
			len(warns), pluralize("warning", len(warns)))
	}
}
