package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError names a reading field that is outside its domain.
type FieldError struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
	Rule  string  `json:"rule"`
}

// MarshalJSON omits value when it is NaN or infinite, which JSON cannot carry.
func (e FieldError) MarshalJSON() ([]byte, error) {
	out := struct {
		Field string   `json:"field"`
		Value *float64 `json:"value,omitempty"`
		Rule  string   `json:"rule"`
	}{Field: e.Field, Rule: e.Rule}
	if !math.IsNaN(e.Value) && !math.IsInf(e.Value, 0) {
		v := e.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s=%v violates %s", e.Field, e.Value, e.Rule)
}

// ErrOutOfRange is wrapped by Validate when any field is outside its domain.
var ErrOutOfRange = errors.New("reading out of range")

// ValidationError lists every failing field of a reading.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%v: %s", ErrOutOfRange, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrOutOfRange }

// Validate checks the numeric fields against their domain bounds.
// NaN and infinities fail every bound.
func (r Reading) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		v, _ := fe.Value().(float64)
		out.Fields = append(out.Fields, FieldError{
			Field: jsonName(fe.Field()),
			Value: v,
			Rule:  fe.Tag() + "=" + fe.Param(),
		})
	}
	return out
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
