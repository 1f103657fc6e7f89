package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DetectFormat reports whether the file parses as a workflow document at
// all, before typed decoding. Useful for CLI error messages that should
// distinguish "not YAML/JSON" from "not a workflow".
func DetectFormat(data []byte, filePath string) error {
	var raw map[string]any
	if isYAML(filePath) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
	}

	if _, ok := raw["nodes"]; !ok {
		return fmt.Errorf("file does not look like a workflow: missing \"nodes\"")
	}
	return nil
}

// isYAML returns true if the file path has a YAML extension.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// yamlToJSON converts raw bytes from YAML format to JSON bytes.
// YAML -> map[string]any -> JSON bytes -> typed struct, so both formats
// share one set of struct tags.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	// yaml.v3 uses map[string]any by default, which is JSON-compatible
	return json.Marshal(raw)
}
