package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow/blocks"
	"github.com/blockflowhq/blockflow/graph"
	"github.com/blockflowhq/blockflow/loader"
	"github.com/blockflowhq/blockflow/store"
)

// NewWorkflowsCmd creates the "workflows" subcommand group for the local
// saved-workflow store.
func NewWorkflowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflows",
		Short: "Manage locally saved workflows",
	}

	cmd.PersistentFlags().String("db", "", "Path to the workflow database (default ~/.blockflow/blockflow.db)")

	cmd.AddCommand(newWorkflowsSaveCmd())
	cmd.AddCommand(newWorkflowsListCmd())
	cmd.AddCommand(newWorkflowsShowCmd())
	cmd.AddCommand(newWorkflowsRmCmd())

	return cmd
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path)
}

func newWorkflowsSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Validate a workflow file and save it under a name",
		Args:  cobra.ExactArgs(2),
		RunE:  runWorkflowsSave,
	}
	cmd.Flags().Bool("force", false, "Save even when validation reports errors")
	return cmd
}

func runWorkflowsSave(cmd *cobra.Command, args []string) error {
	name, filePath := args[0], args[1]
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	wf, err := loadWorkflowFile(filePath)
	if err != nil {
		return err
	}

	diags := wf.Validate(blocks.Builtin())
	if graph.HasErrors(diags) && !force {
		printDiagnostics(out, diags, "text")
		return exitError(exitValidation, "%v; use --force to save anyway",
			&loader.DiagnosticError{Diagnostics: diags})
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(cmd.Context(), name, wf); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved %q (%d nodes)\n", name, len(wf.Nodes))
	return nil
}

func newWorkflowsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved workflows",
		Args:  cobra.NoArgs,
		RunE:  runWorkflowsList,
	}
}

func runWorkflowsList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.List(cmd.Context())
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tNODES\tUPDATED")
	for _, sw := range saved {
		fmt.Fprintf(writer, "%s\t%d\t%s\n", sw.Name, len(sw.Workflow.Nodes), sw.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return writer.Flush()
}

func newWorkflowsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved workflow as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runWorkflowsShow,
	}
}

func runWorkflowsShow(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, found, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !found {
		return exitError(exitNotFound, "no saved workflow named %q", args[0])
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(saved.Workflow)
}

func newWorkflowsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a saved workflow",
		Args:  cobra.ExactArgs(1),
		RunE:  runWorkflowsRm,
	}
}

func runWorkflowsRm(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
	return nil
}
