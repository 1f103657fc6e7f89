package blockflow

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// TransformParams turns the raw snapshot into the validated, typed argument
// object for the resolved tool. The steps run in a fixed order:
//
//  1. coerce raw strings to the declared scalar type
//  2. parse JSON/code fields from their string representation; a parse
//     failure aborts the whole transform with *MalformedInputError
//  3. apply declared defaults to missing optional fields; record every
//     missing required field
//  4. rename internal fields to their tool-facing argument name and strip
//     editor-only fields
//  5. if any field failed in steps 1-3, return one *ValidationError listing
//     all of them
//
// Either a fully valid argument object or an error is returned, never both
// and never a partial result. Snapshot keys that are not declared inputs are
// dropped: downstream consumers only ever see declared, typed arguments.
//
// Inputs backed by a sub-block that is currently hidden by its visibility
// condition are skipped entirely: a stale value from a previously selected
// operation is neither validated nor forwarded.
func TransformParams(def *BlockDefinition, toolID string, snap ParamSnapshot) (map[string]any, error) {
	_ = toolID // all current blocks share one input set across their tools

	visible := VisibleSubBlocks(def.SubBlocks, snap)

	args := make(map[string]any, len(def.Inputs))
	var fieldErrs []FieldError

	for _, name := range sortedInputNames(def.Inputs) {
		spec := def.Inputs[name]
		sb := def.SubBlockByID(name)
		if sb != nil && !visible[name] {
			continue
		}

		raw, present := snap.Value(name)
		if !present || IsEmptyValue(raw) {
			if spec.Required {
				fieldErrs = append(fieldErrs, FieldError{Field: name, Reason: ReasonMissing})
				continue
			}
			if spec.Default == nil {
				continue
			}
			storeArg(args, sb, name, clampIfSlider(sb, spec.Default))
			continue
		}

		value, fieldErr, err := coerceValue(def.Type, name, spec.Type, raw)
		if err != nil {
			return nil, err
		}
		if fieldErr != nil {
			fieldErrs = append(fieldErrs, *fieldErr)
			continue
		}

		storeArg(args, sb, name, clampIfSlider(sb, value))
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{BlockType: def.Type, Fields: fieldErrs}
	}

	return args, nil
}

// storeArg writes a transformed value under its tool-facing name. Internal
// sub-blocks are never forwarded.
func storeArg(args map[string]any, sb *SubBlock, name string, value any) {
	if sb != nil {
		if sb.Internal {
			return
		}
		if sb.ArgName != "" {
			name = sb.ArgName
		}
	}
	args[name] = value
}

// clampIfSlider re-clamps slider values into their declared [min, max],
// defending against stale or tampered snapshots.
func clampIfSlider(sb *SubBlock, value any) any {
	if sb == nil || sb.Kind != FieldSlider {
		return value
	}
	n, ok := toFloat(value)
	if !ok {
		return value
	}
	if sb.Min != nil && n < *sb.Min {
		n = *sb.Min
	}
	if sb.Max != nil && n > *sb.Max {
		n = *sb.Max
	}
	return n
}

// coerceValue converts a raw snapshot value to the declared input type.
// It returns either the typed value, a field-level validation failure (to be
// aggregated), or a fatal *MalformedInputError for unparseable JSON.
func coerceValue(blockType, field string, typ ValueType, raw any) (any, *FieldError, error) {
	switch typ {
	case TypeString:
		return coerceString(raw), nil, nil

	case TypeNumber:
		switch v := raw.(type) {
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not a number"}, nil
			}
			return n, nil, nil
		default:
			if n, ok := toFloat(raw); ok {
				return n, nil, nil
			}
			return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not a number"}, nil
		}

	case TypeBoolean:
		switch v := raw.(type) {
		case bool:
			return v, nil, nil
		case string:
			b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
			if err != nil {
				return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not a boolean"}, nil
			}
			return b, nil, nil
		default:
			return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not a boolean"}, nil
		}

	case TypeJSON:
		if s, ok := raw.(string); ok {
			var parsed any
			if err := json.Unmarshal([]byte(s), &parsed); err != nil {
				return nil, nil, &MalformedInputError{BlockType: blockType, Field: field, Err: err}
			}
			return parsed, nil, nil
		}
		// Already structured (loaded from a workflow file).
		return raw, nil, nil

	case TypeArray:
		value, fieldErr, err := parseStructured(blockType, field, raw)
		if fieldErr != nil || err != nil {
			return nil, fieldErr, err
		}
		if _, ok := value.([]any); !ok {
			if _, ok := value.([]TableRow); !ok {
				return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not an array"}, nil
			}
		}
		return value, nil, nil

	case TypeObject:
		value, fieldErr, err := parseStructured(blockType, field, raw)
		if fieldErr != nil || err != nil {
			return nil, fieldErr, err
		}
		if _, ok := value.(map[string]any); !ok {
			return nil, &FieldError{Field: field, Reason: ReasonInvalid, Detail: "not an object"}, nil
		}
		return value, nil, nil

	default: // TypeAny and unknown declared types pass through
		return raw, nil, nil
	}
}

// parseStructured decodes string-held JSON for array/object inputs and
// passes structured values through.
func parseStructured(blockType, field string, raw any) (any, *FieldError, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, nil, nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, nil, &MalformedInputError{BlockType: blockType, Field: field, Err: err}
	}
	return parsed, nil, nil
}

func coerceString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func sortedInputNames(inputs map[string]InputSpec) []string {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
