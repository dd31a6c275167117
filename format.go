package try

import (
	"fmt"
	"reflect"
)

const cantPrint = "[Can't print]"

// formatArg renders one argument value as `"<value>" (<type>)`. Values that
// cannot safely be turned into text keep their type tag but get a
// placeholder in place of the rendered value. A nil value has its own fixed
// rendering.
func formatArg(v any) string {
	if v == nil {
		return `"<nil>" (nil)`
	}
	tag := reflect.TypeOf(v).String()
	if text, ok := renderText(v); ok {
		return fmt.Sprintf("\"%s\" (%s)", text, tag)
	}
	return fmt.Sprintf("%s (%s)", cantPrint, tag)
}

// renderText reports whether v can be rendered as text. Caller-supplied
// Error/String methods run under a recover guard; a panic inside them makes
// the value non-renderable rather than escaping.
func renderText(v any) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	switch t := v.(type) {
	case error:
		return t.Error(), true
	case fmt.Stringer:
		return t.String(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}
