package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockflowhq/blockflow"
	"github.com/blockflowhq/blockflow/blocks"
	"github.com/blockflowhq/blockflow/graph"
)

// NewResolveCmd creates the "resolve" subcommand. With a node ID it
// resolves that one node; with just a file it resolves every node in the
// workflow.
func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file> [node-id]",
		Short: "Resolve nodes to their tool, arguments, and output shape",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	out := cmd.OutOrStdout()

	wf, err := loadWorkflowFile(filePath)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return resolveAllNodes(cmd, wf)
	}

	nodeID := args[1]
	node := wf.NodeByID(nodeID)
	if node == nil {
		return exitError(exitNotFound, "node %q not found in %s", nodeID, filePath)
	}

	cat := blocks.Builtin()
	snap := blockflow.NewParamSnapshot(node.Params)

	res, err := cat.Resolve(node.Block, snap)
	if err != nil {
		def, defErr := cat.Get(node.Block)
		if defErr == nil {
			fmt.Fprintf(out, "state: %s\n", blockflow.EvaluateState(def, snap))
		}
		return exitError(exitValidation, "node %q: %v", nodeID, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding resolution: %w", err)
	}
	return nil
}

// resolveAllNodes prints the resolutions for every node that resolves,
// keyed by node ID, then fails when any node could not.
func resolveAllNodes(cmd *cobra.Command, wf *graph.Workflow) error {
	out := cmd.OutOrStdout()
	resolutions, _ := wf.Resolutions(blocks.Builtin())

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resolutions); err != nil {
		return fmt.Errorf("encoding resolutions: %w", err)
	}

	if failed := len(wf.Nodes) - len(resolutions); failed > 0 {
		return exitError(exitValidation, "%d of %d %s did not resolve",
			failed, len(wf.Nodes), pluralize("node", len(wf.Nodes)))
	}
	return nil
}
