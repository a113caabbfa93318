package i18next

import (
	"fmt"
	"strconv"
	"strings"
)

// PostProcessSprintf selects SprintfPostProcessor via the "postProcess" option.
const PostProcessSprintf = "sprintf"

// PostProcessor transforms a translated string before interpolation.
type PostProcessor func(s string, vars M) string

// SprintfPostProcessor formats s with the "sprintf" option. A slice supplies
// positional arguments; any other value is the single argument.
// Without a "sprintf" option s is returned unchanged.
func SprintfPostProcessor(s string, vars M) string {
	arg, ok := vars[OptSprintf]
	if !ok || arg == nil {
		return s
	}

	var args []any
	switch a := arg.(type) {
	case []any:
		args = a
	case []string:
		args = make([]any, len(a))
		for i, v := range a {
			args[i] = v
		}
	case []int:
		args = make([]any, len(a))
		for i, v := range a {
			args[i] = v
		}
	case []float64:
		args = make([]any, len(a))
		for i, v := range a {
			args[i] = v
		}
	default:
		args = []any{a}
	}

	return Sprintf(s, args...)
}

// Sprintf formats printf-style directives: %s %d %u %f %F %e %E %x %X %o %b %c
// and %%, with optional "N$" argument indexes, flags, width and precision
// ("%2$s", "%05.2f"). Arguments are coerced to the directive's type, so "5"
// prints with %d. Directives without a matching argument, or with an unknown
// verb, are kept verbatim.
func Sprintf(format string, args ...any) string {
	var b strings.Builder
	b.Grow(len(format))
	next := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}

		d, ok := parseDirective(format[i+1:])
		if !ok {
			b.WriteByte(c)
			continue
		}

		argIndex := next
		if d.position > 0 {
			argIndex = d.position - 1
		} else {
			next++
		}

		if argIndex >= len(args) {
			b.WriteString(format[i : i+1+d.length])
		} else {
			b.WriteString(formatArg(d, args[argIndex]))
		}
		i += d.length
	}

	return b.String()
}

// directive is one parsed "%[N$][flags][width][.precision]verb".
type directive struct {
	spec     string
	length   int
	position int
	verb     byte
}

func parseDirective(s string) (directive, bool) {
	var d directive
	j := 0

	// Argument index: digits followed by '$'.
	k := j
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}
	if k > j && k < len(s) && s[k] == '$' {
		pos, err := strconv.Atoi(s[j:k])
		if err != nil || pos == 0 {
			return d, false
		}
		d.position = pos
		j = k + 1
	}

	start := j
	for j < len(s) && strings.IndexByte("-+ 0#", s[j]) >= 0 {
		j++
	}
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
	}
	if j >= len(s) {
		return d, false
	}

	switch s[j] {
	case 's', 'd', 'u', 'f', 'F', 'e', 'E', 'x', 'X', 'o', 'b', 'c':
	default:
		return d, false
	}

	d.spec = s[start:j]
	d.verb = s[j]
	d.length = j + 1
	return d, true
}

func formatArg(d directive, arg any) string {
	switch d.verb {
	case 's':
		s, ok := scalarString(arg)
		if !ok {
			s = fmt.Sprint(arg)
		}
		return fmt.Sprintf("%"+d.spec+"s", s)
	case 'd', 'u':
		return fmt.Sprintf("%"+d.spec+"d", toInt(arg))
	case 'x', 'X', 'o', 'b', 'c':
		return fmt.Sprintf("%"+d.spec+string(d.verb), toInt(arg))
	case 'F':
		return fmt.Sprintf("%"+d.spec+"f", toFloat(arg))
	default:
		return fmt.Sprintf("%"+d.spec+string(d.verb), toFloat(arg))
	}
}

func toInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	}
	s, _ := scalarString(v)
	return int64(toFloat(s))
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	}
	s, ok := scalarString(v)
	if !ok {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
