package attr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// SanitizeName strips every character outside [a-zA-Z0-9-] from an attribute name.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, name)
}

// Render returns the attribute list as ` name="value"` pairs.
// Attributes with nil or false values, or with names that sanitize to nothing,
// are dropped.
func Render(attrs Attrs) string {
	var b strings.Builder
	for _, at := range attrs {
		name := SanitizeName(at.Key)
		if name == "" {
			continue
		}
		switch v := at.Value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			b.WriteByte(' ')
			b.WriteString(name)
			continue
		}
		val, _ := textValue(at.Value)
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(val))
		b.WriteByte('"')
	}
	return b.String()
}

// Tag returns an opening tag. No closing tag is written.
func Tag(name string, attrs Attrs) string {
	return "<" + name + Render(attrs) + ">"
}

// Close returns the closing tag for name.
func Close(name string) string {
	return "</" + name + ">"
}

// textValue converts an attribute value to its textual form.
// The boolean reports whether the value was a scalar.
func textValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case fmt.Stringer:
		return t.String(), true
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), false
	}
	return string(data), false
}
