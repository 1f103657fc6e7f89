package blockflow

import "strings"

// ResolveTool computes which concrete tool the block currently dispatches to.
//
// Blocks with a single declared tool and no routes always resolve to that
// tool. Otherwise the router's discriminant parameter is read from the
// snapshot and looked up in the closed route table; an unrecognized or
// missing discriminant resolves to the declared default tool when one is
// set, and is an *UnresolvedToolError otherwise.
//
// The result is always a member of the block's ToolAccess list. This runs
// speculatively on every edit, so it performs no I/O and fails only for
// genuinely unresolved dispatch.
func ResolveTool(def *BlockDefinition, snap ParamSnapshot) (string, error) {
	router := def.Tools

	if len(router.Routes) == 0 {
		if router.Default != "" {
			return checkedTool(def, router.Default, router.DiscriminantParam(), nil)
		}
		if len(def.ToolAccess) == 1 {
			return def.ToolAccess[0], nil
		}
		return "", &UnresolvedToolError{BlockType: def.Type, Param: router.DiscriminantParam()}
	}

	param := router.DiscriminantParam()
	raw, present := snap.Value(param)
	if !present {
		if router.Default != "" {
			return checkedTool(def, router.Default, param, nil)
		}
		return "", &UnresolvedToolError{BlockType: def.Type, Param: param}
	}

	key, ok := raw.(string)
	if !ok || strings.TrimSpace(key) == "" {
		if router.Default != "" {
			return checkedTool(def, router.Default, param, raw)
		}
		return "", &UnresolvedToolError{BlockType: def.Type, Param: param, Value: raw}
	}

	toolID, ok := router.Routes[key]
	if !ok {
		if router.Default != "" {
			return checkedTool(def, router.Default, param, raw)
		}
		return "", &UnresolvedToolError{BlockType: def.Type, Param: param, Value: raw}
	}

	return checkedTool(def, toolID, param, raw)
}

// checkedTool guards the ToolAccess invariant. The registry validates routes
// at registration, so this only fires for definitions that bypassed it.
func checkedTool(def *BlockDefinition, toolID, param string, value any) (string, error) {
	if !def.HasToolAccess(toolID) {
		return "", &UnresolvedToolError{BlockType: def.Type, Param: param, Value: value}
	}
	return toolID, nil
}
