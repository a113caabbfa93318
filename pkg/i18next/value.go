package i18next

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Tree is a nested translation structure. Values are string, []string or Tree.
// Use NormalizeTree to convert generic decoded data (JSON, YAML, TOML) into a Tree.
type Tree map[string]any

// Kind identifies the shape held by a Value.
type Kind uint8

const (
	// KindNone marks an unresolved value.
	KindNone Kind = iota
	KindString
	KindList
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTree:
		return "tree"
	default:
		return "none"
	}
}

// Value is the result of a key lookup: a string, a list of strings, or a subtree.
// The zero Value means "not found".
type Value struct {
	tree Tree
	str  string
	list []string
	kind Kind
}

// StringValue wraps s into a Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue wraps l into a Value.
func ListValue(l []string) Value { return Value{kind: KindList, list: l} }

// TreeValue wraps t into a Value.
func TreeValue(t Tree) Value { return Value{kind: KindTree, tree: t} }

// Kind returns the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Found reports whether the value was resolved.
func (v Value) Found() bool { return v.kind != KindNone }

// List returns the list payload, or nil for other kinds.
func (v Value) List() []string { return v.list }

// Tree returns the subtree payload, or nil for other kinds.
func (v Value) Tree() Tree { return v.tree }

// String returns the string payload. Lists are joined with newlines;
// trees and unresolved values yield an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		return strings.Join(v.list, "\n")
	default:
		return ""
	}
}

// NormalizeTree converts generic decoded data into a Tree.
// Nested maps become Trees, lists of scalars become []string and lists holding
// maps or lists become Trees keyed by index. Numbers and booleans are stored in
// their string form; nil entries are dropped.
func NormalizeTree(data map[string]any) (Tree, error) {
	out := make(Tree, len(data))
	for key, raw := range data {
		v, ok, err := normalizeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if ok {
			out[key] = v
		}
	}
	return out, nil
}

func normalizeValue(raw any) (any, bool, error) {
	switch v := raw.(type) {
	case nil:
		return nil, false, nil
	case string:
		return v, true, nil
	case Tree:
		t, err := NormalizeTree(v)
		return t, err == nil, err
	case map[string]any:
		t, err := NormalizeTree(v)
		return t, err == nil, err
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		t, err := NormalizeTree(m)
		return t, err == nil, err
	case map[string]string:
		t := make(Tree, len(v))
		for k, s := range v {
			t[k] = s
		}
		return t, true, nil
	case []string:
		return append([]string(nil), v...), true, nil
	case []any:
		return normalizeList(v)
	default:
		s, ok := scalarString(v)
		if !ok {
			return nil, false, fmt.Errorf("%w: unsupported value type %T", ErrInvalidSource, raw)
		}
		return s, true, nil
	}
}

func normalizeList(items []any) (any, bool, error) {
	list := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			list = append(list, "")
			continue
		}
		s, ok := scalarString(item)
		if !ok {
			return listAsTree(items)
		}
		list = append(list, s)
	}
	return list, true, nil
}

func listAsTree(items []any) (any, bool, error) {
	t := make(Tree, len(items))
	for i, item := range items {
		v, ok, err := normalizeValue(item)
		if err != nil {
			return nil, false, fmt.Errorf("[%d]: %w", i, err)
		}
		if ok {
			t[strconv.Itoa(i)] = v
		}
	}
	return t, true, nil
}

// scalarString formats strings, numbers and booleans. Other types report false.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(s), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

// denseList returns the tree's values in index order when its keys are exactly
// "0".."n-1" and every value is a string.
func denseList(t Tree) ([]string, bool) {
	if len(t) == 0 {
		return nil, false
	}
	list := make([]string, len(t))
	for i := range list {
		v, ok := t[strconv.Itoa(i)]
		if !ok {
			return nil, false
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		list[i] = s
	}
	return list, true
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
