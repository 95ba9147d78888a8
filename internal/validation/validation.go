// Package validation checks form structs against their `validate` tags and
// turns failures into per-field messages.
//
// Besides the go-playground built-ins, two rules are registered:
//
//	profilename  letters, digits and underscore only
//	notblank     not empty after trimming white space
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var profileNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("profilename", func(fl validator.FieldLevel) bool {
		return profileNameRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("notblank", validators.NotBlank))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Errors maps a top-level JSON field name to what is wrong with it.
type Errors map[string]string

// Messages returns the messages ordered by field name.
func (e Errors) Messages() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return msgs
}

func (e Errors) Error() string { return strings.Join(e.Messages(), " ") }

// Struct validates v and returns nil when it passes. Each failing field gets
// messages[field]; a field missing from messages keeps the validator's text.
// Only the first failure per field is kept, and failures inside slices or
// nested structs are attributed to their top-level field.
func Struct(v any, messages map[string]string) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		// Only reachable when v is not a struct.
		panic(err)
	}
	errs := Errors{}
	for _, f := range fails {
		field := topField(f.Namespace())
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field]; ok {
			errs[field] = msg
		} else {
			errs[field] = f.Error()
		}
	}
	return errs
}

// topField turns "VenueInput.media[0].url" into "media".
func topField(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	if i := strings.IndexAny(rest, ".["); i >= 0 {
		return rest[:i]
	}
	return rest
}
