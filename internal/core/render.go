package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// nullToken is the literal rendering of a nil value.
const nullToken = "null"

// spewConfig renders pointers and maps deterministically: pointers are
// followed instead of printed as addresses and map keys are sorted.
//
//nolint:gochecknoglobals // Read-only rendering configuration
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// IsNil reports whether value is nil or a nil pointer, func, chan, or interface.
// Nil slices and maps are not nil here: they behave as empty values.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // Only nilable kinds that cannot be used when nil
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Render returns the canonical text for value used by Description.AppendValue.
func Render(value any) string {
	if IsNil(value) {
		return nullToken
	}

	switch typed := value.(type) {
	case fmt.Stringer:
		return "<" + typed.String() + ">"
	case error:
		return "<" + typed.Error() + ">"
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // Everything else renders through %v
	case reflect.String:
		return quote(rv.String())
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range rv.Len() {
			values[i] = rv.Index(i).Interface()
		}

		return renderList("[", ", ", "]", values)
	case reflect.Map:
		if rv.IsNil() {
			return "<map[]>"
		}

		return "<" + spewConfig.Sprintf("%v", value) + ">"
	case reflect.Pointer:
		return "<" + spewConfig.Sprintf("%v", value) + ">"
	case reflect.Struct:
		return fmt.Sprintf("<%+v>", value)
	default:
		return fmt.Sprintf("<%v>", value)
	}
}

// TypeName returns the name used for value's dynamic type in mismatch text.
func TypeName(value any) string {
	return reflect.TypeOf(value).String()
}

func quote(text string) string {
	var builder strings.Builder

	builder.WriteByte('"')

	for _, r := range text {
		switch r {
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(r)
		}
	}

	builder.WriteByte('"')

	return builder.String()
}

func renderList(start, separator, end string, values []any) string {
	rendered := make([]string, len(values))
	for i, value := range values {
		rendered[i] = Render(value)
	}

	return start + strings.Join(rendered, separator) + end
}
