package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow"
	"github.com/blockflowhq/blockflow/blocks"
)

// NewBlocksCmd creates the "blocks" subcommand.
func NewBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks [type]",
		Short: "List registered block types, or inspect one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBlocks,
	}

	cmd.Flags().String("category", "", "Only list blocks in this category")

	return cmd
}

func runBlocks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cat := blocks.Builtin()

	if len(args) == 1 {
		def, err := cat.Get(args[0])
		if err != nil {
			return exitError(exitNotFound, "%v", err)
		}
		printBlock(out, def)
		return nil
	}

	category, _ := cmd.Flags().GetString("category")
	defs := cat.All()
	if category != "" {
		defs = cat.ListByCategory(category)
	}

	writer := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tCATEGORY\tTOOLS\tDESCRIPTION")
	for _, def := range defs {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", def.Type, def.Category, len(def.ToolAccess), def.Description)
	}
	return writer.Flush()
}

func printBlock(out io.Writer, def *blockflow.BlockDefinition) {
	fmt.Fprintf(out, "%s (%s)\n", def.Name, def.Type)
	if def.Description != "" {
		fmt.Fprintf(out, "  %s\n", def.Description)
	}

	fmt.Fprintln(out, "\nFields:")
	for _, sb := range def.SubBlocks {
		line := fmt.Sprintf("  %s (%s)", sb.ID, sb.Kind)
		if sb.Condition != nil {
			line += fmt.Sprintf(" [when %s matches]", sb.Condition.Field())
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, "\nInputs:")
	for _, name := range sortedKeys(def.Inputs) {
		spec := def.Inputs[name]
		required := ""
		if spec.Required {
			required = " (required)"
		}
		fmt.Fprintf(out, "  %s: %s%s\n", name, spec.Type, required)
	}

	fmt.Fprintln(out, "\nOutputs:")
	for _, name := range sortedOutputKeys(def.Outputs) {
		spec := def.Outputs[name]
		if spec.DependsOn != nil {
			fmt.Fprintf(out, "  %s: %s | %s (depends on %s)\n", name,
				spec.DependsOn.WhenEmpty.Type, spec.DependsOn.WhenFilled.Type, spec.DependsOn.SubBlock)
		} else if spec.Static != nil {
			fmt.Fprintf(out, "  %s: %s\n", name, spec.Static.Type)
		}
	}

	fmt.Fprintln(out, "\nTools:")
	for _, toolID := range def.ToolAccess {
		fmt.Fprintf(out, "  %s\n", toolID)
	}
}

func sortedKeys(m map[string]blockflow.InputSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func sortedOutputKeys(m map[string]blockflow.OutputSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
