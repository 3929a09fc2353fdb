package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/go-playground/validator/v10"
)

// newValidator reports field names by their JSON keys so a failure reads
// like the body it came from.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	return validate
}

// decode unmarshals data into out, then checks required fields. Both steps
// fail with a *congress.DecodeError naming the first field that diverged.
func (c *Client) decode(data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err != nil {
		decodeErr := congress.NewDecodeError(err)
		decodeErr.Path = indexedPath(data, reflect.TypeOf(out), decodeErr.Path)

		return decodeErr
	}

	if !isStructPointer(out) {
		return nil
	}

	err = c.validate.Struct(out)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return fieldError(validationErrs[0])
	}

	return congress.NewDecodeError(err)
}

func fieldError(fieldErr validator.FieldError) *congress.DecodeError {
	path := fieldErr.Namespace()

	// Drop the root type name, "BillsResponse.bills[0].congress".
	if _, rest, found := strings.Cut(path, "."); found {
		path = rest
	}

	if fieldErr.Tag() == "required" {
		return &congress.DecodeError{Path: path, Err: congress.ErrMissingField}
	}

	return &congress.DecodeError{
		Path: path,
		Err:  fmt.Errorf("%w: failed %q check", congress.ErrInvalidField, fieldErr.Tag()),
	}
}

func isStructPointer(out any) bool {
	value := reflect.ValueOf(out)

	return value.Kind() == reflect.Pointer && !value.IsNil() && value.Elem().Kind() == reflect.Struct
}

// indexedPath adds slice indexes to a field path reported by encoding/json,
// turning "bills.congress" into "bills[3].congress". Each array on the path
// is re-decoded element by element and the first element that fails is
// taken. The path is returned unchanged if it cannot be followed.
func indexedPath(data []byte, typ reflect.Type, field string) string {
	if field == "" || typ == nil {
		return field
	}

	path, ok := locate(data, typ, strings.Split(field, "."))
	if !ok {
		return field
	}

	return strings.TrimPrefix(path, ".")
}

func locate(data []byte, typ reflect.Type, segments []string) (string, bool) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	switch typ.Kind() {
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage

		err := json.Unmarshal(data, &items)
		if err != nil {
			return "", len(segments) == 0
		}

		for i, item := range items {
			if json.Unmarshal(item, reflect.New(typ.Elem()).Interface()) == nil {
				continue
			}

			rest, ok := locate(item, typ.Elem(), segments)

			return fmt.Sprintf("[%d]", i) + rest, ok
		}

		return "", len(segments) == 0
	case reflect.Struct:
		if len(segments) == 0 {
			return "", true
		}

		fieldType, found := jsonField(typ, segments[0])
		if !found {
			return "", false
		}

		var object map[string]json.RawMessage

		err := json.Unmarshal(data, &object)
		if err != nil {
			return "", false
		}

		rest, ok := locate(objectMember(object, segments[0]), fieldType, segments[1:])

		return "." + segments[0] + rest, ok
	default:
		return "", len(segments) == 0
	}
}

// jsonField finds the type of the field encoded under name, looking through
// embedded structs the way encoding/json flattens them.
func jsonField(typ reflect.Type, name string) (reflect.Type, bool) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tag == "-" {
			continue
		}

		if field.Anonymous && tag == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}

			if embedded.Kind() == reflect.Struct {
				if found, ok := jsonField(embedded, name); ok {
					return found, true
				}
			}

			continue
		}

		if tag == "" {
			tag = field.Name
		}

		if tag == name {
			return field.Type, true
		}
	}

	return nil, false
}

// objectMember matches keys case-insensitively, as encoding/json does.
func objectMember(object map[string]json.RawMessage, name string) json.RawMessage {
	if member, ok := object[name]; ok {
		return member
	}

	for key, member := range object {
		if strings.EqualFold(key, name) {
			return member
		}
	}

	return nil
}
