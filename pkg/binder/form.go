package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds urlencoded and multipart form values to fields tagged with `form`.
//
// Example:
//
//	type ContactRequest struct {
//		FullName string `form:"fullName"`
//		Consent  bool   `form:"consent"`
//		Internal string `form:"-"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)

		var values map[string][]string

		switch mt {
		case mediaTypeForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case mediaTypeMultipart:
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || params["boundary"] == "" {
				return fmt.Errorf("%w: missing or malformed multipart boundary", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return notApplicable(mt, mediaTypeForm, mediaTypeMultipart)
		}

		return bindValues(v, "form", values, ErrFailedToParseForm)
	}
}

// bindValues copies values into the struct pointed to by v using tagName.
// Fields without a tag or tagged "-" are skipped; absent keys keep their zero value.
func bindValues(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		name, ok := tagValue(fieldType, tagName)
		if !ok {
			continue
		}

		fieldValues, exists := values[name]
		if !exists || len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}

	return nil
}
