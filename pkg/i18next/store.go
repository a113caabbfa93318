package i18next

import "maps"

// Bundle is one loaded translation source: a tree for a language and,
// optionally, a namespace.
type Bundle struct {
	Tree      Tree
	Language  string
	Namespace string
	// Source names where the bundle came from (file path, object key). Informational.
	Source string
}

// Store holds translation trees per language. Namespaces are top-level keys
// of a language tree, so "common.buttons.save" addresses key "buttons.save"
// in namespace "common".
//
// Store is not synchronized; I18n guards it.
type Store struct {
	languages map[string]Tree
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{languages: make(map[string]Tree)}
}

// Merge adds tree under language (and namespace when non-empty).
// An empty slot gets the tree installed directly; otherwise the tree's
// top-level keys overwrite the existing ones at that level. Deeper levels
// are replaced, not merged.
//
// Installed trees are never modified in place: the merged level and the
// language root are copied, so Values returned earlier stay valid.
func (s *Store) Merge(language, namespace string, tree Tree) {
	root := maps.Clone(s.languages[language])
	if root == nil {
		root = make(Tree, len(tree))
	}

	if namespace == "" {
		maps.Copy(root, tree)
	} else {
		ns, _ := root[namespace].(Tree)
		ns = maps.Clone(ns)
		if ns == nil {
			ns = make(Tree, len(tree))
		}
		maps.Copy(ns, tree)
		root[namespace] = ns
	}

	s.languages[language] = root
}

// Lookup returns the tree for language.
func (s *Store) Lookup(language string) (Tree, bool) {
	t, ok := s.languages[language]
	return t, ok
}

// Languages returns the loaded language codes in lexical order.
func (s *Store) Languages() []string {
	return sortedKeys(s.languages)
}
