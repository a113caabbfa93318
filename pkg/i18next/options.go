package i18next

import (
	"maps"
	"strconv"
)

// M holds the variables and options of a translation call.
// Entries with string or number values are interpolated into the result;
// the keys below are additionally read as options.
type M map[string]any

// Recognized option keys.
const (
	OptLanguage          = "lng"
	OptContext           = "context"
	OptCount             = "count"
	OptDefaultValue      = "defaultValue"
	OptReturnObjectTrees = "returnObjectTrees"
	OptPostProcess       = "postProcess"
	OptSprintf           = "sprintf"
)

// resolveOptions is the per-call view of the options found in M.
type resolveOptions struct {
	sprintf           any
	language          string
	context           string
	countLabel        string
	defaultValue      string
	postProcess       string
	count             float64
	hasLanguage       bool
	hasContext        bool
	hasCount          bool
	hasDefault        bool
	hasSprintf        bool
	returnObjectTrees bool
}

func parseOptions(vars M) *resolveOptions {
	o := &resolveOptions{}
	if len(vars) == 0 {
		return o
	}

	if v, ok := vars[OptLanguage]; ok && v != nil {
		if s, ok := scalarString(v); ok {
			o.language, o.hasLanguage = s, true
		}
	}

	if v, ok := vars[OptContext]; ok && v != nil {
		if s, ok := scalarString(v); ok {
			o.context, o.hasContext = s, true
		}
	}

	if v, ok := vars[OptCount]; ok && v != nil {
		if n, label, ok := parseCount(v); ok {
			o.count, o.countLabel, o.hasCount = n, label, true
		}
	}

	if v, ok := vars[OptDefaultValue]; ok && v != nil {
		if s, ok := scalarString(v); ok {
			o.defaultValue, o.hasDefault = s, true
		}
	}

	if v, ok := vars[OptReturnObjectTrees].(bool); ok {
		o.returnObjectTrees = v
	}

	if v, ok := vars[OptPostProcess].(string); ok {
		o.postProcess = v
	}

	if v, ok := vars[OptSprintf]; ok && v != nil {
		o.sprintf, o.hasSprintf = v, true
	}

	return o
}

// parseCount accepts integers, floats and numeric strings. The label is the
// literal form used for "_plural_<count>" keys.
func parseCount(v any) (float64, string, bool) {
	label, ok := scalarString(v)
	if !ok {
		return 0, "", false
	}
	if _, isBool := v.(bool); isBool {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0, "", false
	}
	return n, label, true
}

// mergeVars flattens variadic variable maps; later maps win.
func mergeVars(vars []M) M {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		return vars[0]
	}
	merged := make(M)
	for _, v := range vars {
		maps.Copy(merged, v)
	}
	return merged
}
