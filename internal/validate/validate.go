// Package validate holds the pure field validators used by the persistence
// gateway and the business layer. Each validator takes the value and the name
// of the field being checked and returns nil on success or an *Error naming
// the field and the violated constraint. Validators never touch storage, so
// business rules can be unit-tested without a database.
package validate

import (
	"fmt"
	"math"
	"reflect"
)

// Error reports a single failed constraint on a named field. It is the only
// error type this package returns.
type Error struct {
	Field      string
	Constraint string
	Value      any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s must be %s (got %v)", e.Field, e.Constraint, e.Value)
}

// Is makes every *Error match every other *Error target, so callers can write
// errors.Is(err, &validate.Error{}) without caring which constraint failed.
func (e *Error) Is(target error) bool {
	_, ok := target.(*Error)
	return ok
}

func fail(field, constraint string, value any) error {
	return &Error{Field: field, Constraint: constraint, Value: value}
}

// Number checks that value is an actual number, rejecting NaN and infinities.
func Number(value float64, field string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fail(field, "a number", value)
	}
	return nil
}

// NonEmptyString checks that value has non-zero length.
func NonEmptyString(value string, field string) error {
	if len(value) == 0 {
		return fail(field, "a non-empty string", value)
	}
	return nil
}

// AlnumString checks that value is non-empty and contains only ASCII letters
// and digits.
func AlnumString(value string, field string) error {
	if err := NonEmptyString(value, field); err != nil {
		return err
	}
	for _, r := range value {
		if !isAlnum(r) {
			return fail(field, "an alphanumeric string", value)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// PositiveInt checks that value is strictly greater than zero.
func PositiveInt(value int64, field string) error {
	if value <= 0 {
		return fail(field, "a positive integer", value)
	}
	return nil
}

// IntBetween checks that value lies in [lower, upper], inclusive.
func IntBetween(value, lower, upper int64, field string) error {
	if value < lower || value > upper {
		return fail(field, fmt.Sprintf("an integer between %d and %d", lower, upper), value)
	}
	return nil
}

// Required checks that value is a usable instance: not nil, and not a typed
// nil hiding inside an interface (a nil *models.User passed as any).
func Required(value any, field string) error {
	if value == nil {
		return fail(field, "present", value)
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return fail(field, "present", value)
		}
	}
	return nil
}

// Optional accepts an absent value; a present one must pass Required.
func Optional(value any, field string) error {
	if value == nil {
		return nil
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return Required(value, field)
}
