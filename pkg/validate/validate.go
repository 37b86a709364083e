// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	url                 valid http/https URL
//	in=a;b;c            value must be one of the listed items
//	                    (semicolon-separated; commas delimit rules)
//
// Example:
//
//	type Input struct {
//	    Name     string `json:"name"     validate:"required,min=1,max=255"`
//	    Category string `json:"category" validate:"required"`
//	    ImageURL string `json:"image_url" validate:"nullable,url"`
//	}
package validate

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v carrying a `validate` tag.
// The result maps json field name → first failing rule's message; an
// empty map means v is valid.
func Struct(v any) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		value := rv.Field(i)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break
			}
		}
	}

	return errs
}

// HasErrors reports whether errs contains any entry.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("%s is required", field)
		}
	case "min":
		if n, ok := numeric(v); ok {
			if limit, _ := strconv.ParseFloat(param, 64); n < limit {
				return fmt.Sprintf("%s must be at least %s", field, param)
			}
		} else if limit, _ := strconv.Atoi(param); strLen(v) < limit {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
	case "max":
		if n, ok := numeric(v); ok {
			if limit, _ := strconv.ParseFloat(param, 64); n > limit {
				return fmt.Sprintf("%s must be at most %s", field, param)
			}
		} else if limit, _ := strconv.Atoi(param); strLen(v) > limit {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
	case "gte":
		if n, ok := numeric(v); ok {
			if limit, _ := strconv.ParseFloat(param, 64); n < limit {
				return fmt.Sprintf("%s must be >= %s", field, param)
			}
		}
	case "lte":
		if n, ok := numeric(v); ok {
			if limit, _ := strconv.ParseFloat(param, 64); n > limit {
				return fmt.Sprintf("%s must be <= %s", field, param)
			}
		}
	case "url":
		raw := fmt.Sprintf("%v", v.Interface())
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("%s must be a valid URL", field)
		}
	case "in":
		raw := fmt.Sprintf("%v", v.Interface())
		for _, item := range strings.Split(param, ";") {
			if raw == item {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, ";", ", "))
	}

	return ""
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if r == want {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func numeric(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func strLen(v reflect.Value) int {
	if v.Kind() == reflect.String {
		return len([]rune(v.String()))
	}
	return v.Len()
}
