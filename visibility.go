package blockflow

// VisibleSubBlocks returns the set of sub-block IDs currently active for the
// given snapshot. A sub-block without a condition is always active; one with
// a condition is active iff the condition matches the referenced field's
// current value. A condition on a field absent from the snapshot simply does
// not match.
//
// The result depends only on the arguments: no hidden state, safe to call
// concurrently for many nodes.
func VisibleSubBlocks(subBlocks []SubBlock, snap ParamSnapshot) map[string]bool {
	visible := make(map[string]bool, len(subBlocks))
	for _, sb := range subBlocks {
		if sb.Condition == nil {
			visible[sb.ID] = true
			continue
		}
		value, present := snap.Value(sb.Condition.Field())
		if sb.Condition.Matches(value, present) {
			visible[sb.ID] = true
		}
	}
	return visible
}
