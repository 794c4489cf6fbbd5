package responder

import (
	"context"
	"reflect"

	"github.com/oortega14/jsonapi-responses/api/serialize"
)

// Saver is the persistence capability the create default relies on. A false
// return signals a validation failure, reported through ValidationErrors.
type Saver interface {
	Save(ctx context.Context) bool
}

// Deleter is the capability the destroy default relies on.
type Deleter interface {
	Delete(ctx context.Context) bool
}

// Validatable exposes a record's human-readable validation messages.
type Validatable interface {
	ValidationErrors() []string
}

// IsCollection reports whether the record is list-like: a serialize.Lister,
// a slice or an array, but never a plain key-value map or a byte slice.
func IsCollection(record any) bool {
	if record == nil {
		return false
	}
	if _, ok := record.(serialize.Lister); ok {
		return true
	}
	if _, ok := record.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(record).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func validationMessages(record any) []string {
	if v, ok := record.(Validatable); ok {
		if messages := v.ValidationErrors(); len(messages) > 0 {
			return messages
		}
	}
	return []string{"Record is invalid"}
}
