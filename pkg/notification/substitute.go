package notification

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
)

// Substitute replaces every {FieldName} token in the template with the
// stringified value of the matching exported field on data. Tokens are
// matched case-insensitively. Fields without a token are ignored and
// tokens without a field are left in place, so template authors can mix
// tokens for several projections in one template.
//
// Dates render as short dates (01/02/2006), nil pointers render as the
// empty string. The function is pure: no I/O, deterministic for a given
// template and data.
func Substitute(template string, data any) string {
	if template == "" || data == nil {
		return template
	}

	for name, value := range tokenValues(data) {
		pattern := regexp.MustCompile(`(?i)\{` + regexp.QuoteMeta(name) + `\}`)
		template = pattern.ReplaceAllLiteralString(template, value)
	}
	return template
}

// tokenValues flattens data into token name -> rendered value.
// Supports structs, pointers to structs and string-keyed maps.
func tokenValues(data any) map[string]string {
	values := map[string]string{}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return values
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			values[field.Name] = formatValue(v.Field(i))
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return values
		}
		for _, key := range v.MapKeys() {
			values[key.String()] = formatValue(v.MapIndex(key))
		}
	}
	return values
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		return formatValue(v.Elem())
	}

	if v.Type() == reflect.TypeOf(time.Time{}) {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format("01/02/2006")
	}

	return fmt.Sprintf("%v", v.Interface())
}
