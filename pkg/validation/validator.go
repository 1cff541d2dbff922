package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/oksasatya/go-social-network/pkg/response"
)

var once sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers notblank and the password alias.
func Init() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterAlias("pwd", "min=6")
	})
}

// ToErrors converts binding errors into failure entries. obj is the struct that
// was bound; its `label` tags name fields in messages ("Bio is Required").
func ToErrors(err error, obj any) []response.ErrorItem {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return []response.ErrorItem{{Msg: "Invalid JSON payload"}}
	}
	if errors.As(err, &ute) {
		return []response.ErrorItem{{Msg: "Invalid value for " + ute.Field, Param: ute.Field}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.ErrorItem{
				Msg:   formatFieldError(labelOf(obj, fe), fe),
				Param: fe.Field(),
			})
		}
		return out
	}

	return []response.ErrorItem{{Msg: "Invalid payload"}}
}

// labelOf reads the label tag of the failing field, falling back to its Go name.
func labelOf(obj any, fe validator.FieldError) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
		}
	}
	return fe.StructField()
}

func formatFieldError(label string, fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return label + " is Required"
	case "email":
		return "Please include a valid email"
	case "pwd":
		return "Please enter a password with 6 or more characters"
	case "url", "http_url":
		return label + " must be a valid URL"
	case "min":
		if isNumberKind(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s", label, param)
		}
		return fmt.Sprintf("%s must be at least %s characters long", label, param)
	case "max":
		if isNumberKind(fe.Kind()) {
			return fmt.Sprintf("%s must be at most %s", label, param)
		}
		return fmt.Sprintf("%s must be at most %s characters long", label, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", label, param)
	case "oneof":
		return label + " must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "boolean":
		return label + " must be a boolean value"
	default:
		if param != "" {
			return fmt.Sprintf("%s failed '%s' with parameter '%s'", label, fe.Tag(), param)
		}
		return fmt.Sprintf("%s failed '%s'", label, fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
