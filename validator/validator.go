package validator

import (
	"reflect"
	"sync"

	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/source"
	"github.com/NethermindEth/bsonbridge/utils"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Custom validation function for GUID representations. Unspecified cannot
// encode GUIDs, so it is rejected.
func validateGUIDRepresentation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case bsonw.Standard.String(), bsonw.CSharpLegacy.String(),
		bsonw.JavaLegacy.String(), bsonw.PythonLegacy.String():
		return true
	default:
		return false
	}
}

// Validator returns a singleton that can be used to validate various objects
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()

		if err := v.RegisterValidation("guid_representation", validateGUIDRepresentation); err != nil {
			panic("failed to register validation: " + err.Error())
		}

		// Register these types to use their string representation for validation
		// purposes
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if r, ok := field.Interface().(bsonw.GUIDRepresentation); ok {
				return r.String()
			}
			panic("not a GUIDRepresentation")
		}, bsonw.GUIDRepresentation(0))
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if f, ok := field.Interface().(source.Format); ok {
				return f.String()
			}
			panic("not a source.Format")
		}, source.Format(0))
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if l, ok := field.Interface().(utils.LogLevel); ok {
				return l.String()
			}
			panic("not a utils.LogLevel")
		}, utils.LogLevel(0))
	})
	return v
}
