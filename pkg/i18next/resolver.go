package i18next

import "strings"

// resolve walks tree along the dotted key. The terminal segment is replaced by
// its context and plural variants when those siblings exist. Any missing
// segment, empty segment, or a scalar met before the last segment yields the
// zero Value.
func resolve(tree Tree, key string, o *resolveOptions) Value {
	if tree == nil || key == "" {
		return Value{}
	}

	segments := strings.Split(key, ".")
	node := tree
	last := len(segments) - 1

	for i, seg := range segments {
		if seg == "" {
			return Value{}
		}
		raw, ok := node[seg]
		if !ok {
			return Value{}
		}
		if i < last {
			sub, ok := raw.(Tree)
			if !ok {
				return Value{}
			}
			node = sub
			continue
		}
		return shape(node[selectVariant(node, seg, o)], o)
	}

	return Value{}
}

// selectVariant picks the sibling key to read for the terminal segment.
// Context runs first; pluralization then operates on whichever key context chose.
func selectVariant(node Tree, key string, o *resolveOptions) string {
	has := func(k string) bool {
		_, ok := node[k]
		return ok
	}

	if o.hasContext && has(key+"_"+o.context) {
		key = key + "_" + o.context
	}

	if !o.hasCount {
		return key
	}

	switch {
	case o.count == 0 && has(key+"_0"):
		return key + "_0"
	case o.count != 1 && has(key+"_plural_"+o.countLabel):
		return key + "_plural_" + o.countLabel
	case o.count != 1 && has(key+"_plural"):
		return key + "_plural"
	}
	return key
}

// shape applies the output policy: strings pass through, lists are joined
// with newlines unless object trees were requested, trees are returned only
// on request (or flattened when they are dense "0".."n-1" string lists).
func shape(raw any, o *resolveOptions) Value {
	switch v := raw.(type) {
	case string:
		return StringValue(v)
	case []string:
		if len(v) == 0 {
			return Value{}
		}
		if o.returnObjectTrees {
			return ListValue(v)
		}
		return StringValue(strings.Join(v, "\n"))
	case Tree:
		if o.returnObjectTrees {
			return TreeValue(v)
		}
		if list, ok := denseList(v); ok {
			return StringValue(strings.Join(list, "\n"))
		}
	}
	return Value{}
}
