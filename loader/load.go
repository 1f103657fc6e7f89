// Package loader reads workflow files in JSON or YAML form into the
// serializable graph.Workflow representation. YAML is canonicalized through
// JSON bytes so both formats decode through the same struct tags.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blockflowhq/blockflow/graph"
)

// LoadWorkflow reads and decodes a workflow file. The format is detected
// from the file extension and content. Nodes without IDs get generated
// ones; no validation is performed here.
func LoadWorkflow(path string) (*graph.Workflow, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from caller
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return LoadWorkflowBytes(data, path)
}

// LoadWorkflowBytes decodes workflow bytes; path is used only for format
// detection.
func LoadWorkflowBytes(data []byte, path string) (*graph.Workflow, error) {
	jsonData, err := toJSON(data, path)
	if err != nil {
		return nil, err
	}

	var wf graph.Workflow
	if err := json.Unmarshal(jsonData, &wf); err != nil {
		return nil, fmt.Errorf("parsing workflow: %w", err)
	}

	if len(wf.Nodes) == 0 {
		return nil, fmt.Errorf("workflow %q has no nodes", wf.Name)
	}

	return wf.EnsureNodeIDs(), nil
}

// toJSON converts data to JSON bytes, handling YAML conversion if the path
// indicates a YAML file.
func toJSON(data []byte, path string) ([]byte, error) {
	if isYAML(path) {
		return yamlToJSON(data)
	}
	return data, nil
}

// DiagnosticError wraps validation diagnostics as an error for callers that
// want load-and-validate in one step.
type DiagnosticError struct {
	Diagnostics []graph.Diagnostic
}

func (e *DiagnosticError) Error() string {
	errs := graph.Errors(e.Diagnostics)
	switch len(errs) {
	case 0:
		return fmt.Sprintf("%d validation findings, none fatal", len(e.Diagnostics))
	case 1:
		return fmt.Sprintf("validation error: %s", errs[0].Message)
	default:
		return fmt.Sprintf("%d validation errors (first: %s)", len(errs), errs[0].Message)
	}
}
