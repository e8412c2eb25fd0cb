// Package drafts holds the local form drafts edited before a usecase runs.
//
// A draft is plain data plus validation. Nothing touches the domain store
// until Commit hands the draft to the matching interactor.
package drafts

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// PhoneRegion is the default region customer phone numbers are parsed in.
const PhoneRegion = "IN"

var tenDigits = regexp.MustCompile(`^\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(domain.Money); ok {
			return m.Float64()
		}
		return nil
	}, domain.Money{})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidPhone accepts a 10-digit number that libphonenumber considers valid in PhoneRegion.
func ValidPhone(phone string) bool {
	if !tenDigits.MatchString(phone) {
		return false
	}
	p, err := libphonenumber.Parse(phone, PhoneRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(p)
}

// ValidationError maps each failing field to the rule it failed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%s)", name, e.Fields[name]))
	}
	return "invalid draft: " + strings.Join(parts, ", ")
}

// check runs the struct tags of v and converts the result into a ValidationError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe)] = fe.Tag()
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace: "lines[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
