package helper

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
)

// BindJSON decodes raw into the struct pointed to by dst field by field, then runs
// its validate tags. A field with the wrong JSON type is reported as invalid_type
// and the remaining fields are still decoded and validated. Only a body that is
// not a JSON object yields the single "body" violation. An empty body counts as {}.
func BindJSON(raw []byte, dst any) ValidationErrors {
	fields := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
		if err := sonic.Unmarshal(trimmed, &fields); err != nil {
			return BodyViolation()
		}
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	typeErrs := map[string]FieldViolation{}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}
		val, ok := fields[name]
		if !ok {
			continue
		}
		if err := sonic.Unmarshal(val, rv.Field(i).Addr().Interface()); err != nil {
			rv.Field(i).Set(reflect.Zero(sf.Type))
			typeErrs[name] = FieldViolation{
				Field:   name,
				Code:    "invalid_type",
				Message: name + " must be a " + jsonKind(sf.Type),
			}
		}
	}

	validated := map[string]FieldViolation{}
	for _, fv := range ValidateStruct(dst) {
		validated[fv.Field] = fv
	}

	var out ValidationErrors
	for i := 0; i < rt.NumField(); i++ {
		name := jsonName(rt.Field(i))
		if fv, ok := typeErrs[name]; ok {
			out = append(out, fv)
		} else if fv, ok := validated[name]; ok {
			out = append(out, fv)
		}
	}
	return out
}

func jsonName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
