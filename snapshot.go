package blockflow

import (
	"slices"
	"strings"
)

// ParamSnapshot is the immutable map of sub-block ID to current raw value for
// one node instance. The editor owns one snapshot per node; every edit
// produces a new snapshot via With, so a resolution in flight never observes
// a concurrent mutation.
//
// Raw values are what the editor stores: strings for text/dropdown/code
// fields, numbers, bools, []TableRow for table fields, or already-decoded
// JSON structures when a workflow file was loaded from disk.
type ParamSnapshot struct {
	values map[string]any
}

// NewParamSnapshot creates a snapshot from the given values. The map is
// copied; the caller may keep mutating its own map afterwards.
func NewParamSnapshot(values map[string]any) ParamSnapshot {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return ParamSnapshot{values: copied}
}

// Value returns the raw value for a sub-block ID and whether it is present.
func (s ParamSnapshot) Value(id string) (any, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Has reports whether the sub-block ID is present in the snapshot.
func (s ParamSnapshot) Has(id string) bool {
	_, ok := s.values[id]
	return ok
}

// Len returns the number of stored values.
func (s ParamSnapshot) Len() int {
	return len(s.values)
}

// Keys returns the stored sub-block IDs in sorted order.
func (s ParamSnapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// With returns a new snapshot with one value replaced or added. The receiver
// is unchanged.
func (s ParamSnapshot) With(id string, value any) ParamSnapshot {
	copied := make(map[string]any, len(s.values)+1)
	for k, v := range s.values {
		copied[k] = v
	}
	copied[id] = value
	return ParamSnapshot{values: copied}
}

// Without returns a new snapshot with one value removed.
func (s ParamSnapshot) Without(id string) ParamSnapshot {
	copied := make(map[string]any, len(s.values))
	for k, v := range s.values {
		if k != id {
			copied[k] = v
		}
	}
	return ParamSnapshot{values: copied}
}

// TableRow is one line of a table sub-block value: an ordered record of
// named cells.
type TableRow struct {
	ID    string            `json:"id,omitempty"`
	Cells map[string]string `json:"cells"`
}

// IsEmptyValue is the canonical emptiness predicate used by dependent
// outputs and required-field checks:
//
//   - nil (or absent) is empty
//   - a string is empty iff it is blank after trimming
//   - a table value is empty iff every row's cells are all blank
//   - an empty list is empty
//   - anything else (number, bool, object, non-empty list) is not empty
//
// Note that 0 and false are deliberately not empty: a slider at zero or a
// toggle switched off is still a configured value.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []TableRow:
		for _, row := range val {
			if !rowBlank(row.Cells) {
				return false
			}
		}
		return true
	case []any:
		if len(val) == 0 {
			return true
		}
		// A decoded table value is a list of {id, cells} records.
		for _, item := range val {
			cells, ok := tableRowCells(item)
			if !ok {
				return false
			}
			if !rowBlank(cells) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func rowBlank(cells map[string]string) bool {
	for _, v := range cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// tableRowCells extracts the cells of a JSON-decoded table row. Returns
// ok=false when the item is not row-shaped.
func tableRowCells(item any) (map[string]string, bool) {
	switch row := item.(type) {
	case TableRow:
		return row.Cells, true
	case map[string]any:
		raw, ok := row["cells"].(map[string]any)
		if !ok {
			return nil, false
		}
		cells := make(map[string]string, len(raw))
		for k, v := range raw {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			cells[k] = s
		}
		return cells, true
	default:
		return nil, false
	}
}
