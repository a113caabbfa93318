package i18next

// Translator is a view of an I18n instance with its own current language and
// an optional namespace prefix. It shares the store, fallback language,
// nesting limit and missing-translation log with the parent, so one
// Translator per request lets handlers translate without touching the
// instance-wide current language.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
}

// NewTranslator creates a Translator for language and namespace.
// If language is empty, the instance's current language is used.
// Keys passed to the Translator are prefixed with "namespace." when namespace
// is non-empty; $t(...) references inside translations are not.
func NewTranslator(i18n *I18n, language, namespace string) *Translator {
	if i18n == nil {
		panic("i18next: service is not provided")
	}
	if language == "" {
		language = i18n.Language()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
	}
}

// T translates key in the translator's language and namespace.
func (t *Translator) T(key string, vars ...M) string {
	return t.GetTranslation(key, vars...).String()
}

// GetTranslation is I18n.GetTranslation with the translator's language as the current language.
func (t *Translator) GetTranslation(key string, vars ...M) Value {
	return t.i18n.translate(t.language, t.qualify(key), mergeVars(vars), &nesting{limit: t.i18n.RecursionLimit()})
}

// Exists reports whether key resolves in the translator's language.
func (t *Translator) Exists(key string) bool {
	return t.i18n.resolveIn(t.language, t.qualify(key), &resolveOptions{}).Found()
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

func (t *Translator) qualify(key string) string {
	if t.namespace == "" {
		return key
	}
	return t.namespace + "." + key
}

// Translator returns a view of i bound to language and namespace.
func (i *I18n) Translator(language, namespace string) *Translator {
	return NewTranslator(i, language, namespace)
}
