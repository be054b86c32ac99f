package token

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrCycle           = errors.New("cyclic value")
)

// Converter maps one domain type to and from the values a Writer understands.
// Converters are registered with an Encoder, which consults them before
// falling back to the built-in dispatch.
type Converter interface {
	CanConvert(t reflect.Type) bool
	// WriteValue writes value to w. e can be used to encode nested values.
	WriteValue(w Writer, value any, e *Encoder) error
	// ReadValue builds the domain value from its written representation.
	// A nil value yields nil.
	ReadValue(value any) (any, error)
}

// Property is one name/value pair of a Document.
type Property struct {
	Name  string
	Value any
}

// Document is an object whose properties are written in order. Maps are
// written with sorted keys.
type Document []Property

var (
	valueType    = reflect.TypeOf(Value{})
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	urlType      = reflect.TypeOf(url.URL{})
	decimalType  = reflect.TypeOf(decimal.Decimal{})
	documentType = reflect.TypeOf(Document(nil))
	bytesType    = reflect.TypeOf([]byte(nil))
)

// Encoder writes Go values to a Writer. It handles primitives, maps with
// string keys, slices, arrays, Documents, pointers and whatever the
// registered converters accept. Structs are not mapped. Values that contain
// themselves are rejected with ErrCycle.
type Encoder struct {
	w          Writer
	converters []Converter
	// visiting holds the maps, slices and pointers on the current path.
	visiting map[reference]struct{}
}

// reference identifies a map, slice or pointer. Slices sharing a backing
// array with different lengths are different values.
type reference struct {
	ptr uintptr
	len int
}

func NewEncoder(w Writer, converters ...Converter) *Encoder {
	return &Encoder{w: w, converters: converters}
}

// Writer returns the writer the encoder writes to.
func (e *Encoder) Writer() Writer { return e.w }

// Converter returns the first registered converter accepting t, or nil.
func (e *Encoder) Converter(t reflect.Type) Converter {
	for _, c := range e.converters {
		if c.CanConvert(t) {
			return c
		}
	}
	return nil
}

// Encode writes v as a single value.
func (e *Encoder) Encode(v any) error {
	if v == nil {
		return e.w.WriteNull()
	}
	return e.encode(reflect.ValueOf(v))
}

func (e *Encoder) encode(rv reflect.Value) error {
	if !rv.IsValid() {
		return e.w.WriteNull()
	}
	t := rv.Type()
	if c := e.Converter(t); c != nil {
		var value any
		if !isNil(rv) {
			value = rv.Interface()
		}
		return c.WriteValue(e.w, value, e)
	}

	if ref, ok := referenceOf(rv); ok {
		if _, seen := e.visiting[ref]; seen {
			return fmt.Errorf("%w: %s", ErrCycle, t)
		}
		if e.visiting == nil {
			e.visiting = make(map[reference]struct{})
		}
		e.visiting[ref] = struct{}{}
		defer delete(e.visiting, ref)
	}

	switch t {
	case valueType:
		return e.w.WriteValue(rv.Interface().(Value))
	case timeType:
		return e.w.WriteValue(Time(rv.Interface().(time.Time)))
	case durationType:
		return e.w.WriteValue(Duration(time.Duration(rv.Int())))
	case uuidType:
		return e.w.WriteValue(GUID(rv.Interface().(uuid.UUID)))
	case urlType:
		u := rv.Interface().(url.URL)
		return e.w.WriteValue(URI(&u))
	case decimalType:
		return e.w.WriteValue(Decimal(rv.Interface().(decimal.Decimal)))
	case documentType:
		return e.encodeDocument(rv.Interface().(Document))
	}

	switch t.Kind() {
	case reflect.Bool:
		return e.w.WriteValue(Bool(rv.Bool()))
	case reflect.Int8:
		return e.w.WriteValue(Int8(int8(rv.Int())))
	case reflect.Int16:
		return e.w.WriteValue(Int16(int16(rv.Int())))
	case reflect.Int32:
		return e.w.WriteValue(Int32(int32(rv.Int())))
	case reflect.Int64:
		return e.w.WriteValue(Int64(rv.Int()))
	case reflect.Int:
		i := rv.Int()
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return e.w.WriteValue(Int32(int32(i)))
		}
		return e.w.WriteValue(Int64(i))
	case reflect.Uint8:
		return e.w.WriteValue(Uint8(uint8(rv.Uint())))
	case reflect.Uint16:
		return e.w.WriteValue(Uint16(uint16(rv.Uint())))
	case reflect.Uint32:
		return e.w.WriteValue(Uint32(uint32(rv.Uint())))
	case reflect.Uint64, reflect.Uintptr:
		return e.w.WriteValue(Uint64(rv.Uint()))
	case reflect.Uint:
		u := rv.Uint()
		if u <= math.MaxInt32 {
			return e.w.WriteValue(Int32(int32(u)))
		}
		return e.w.WriteValue(Uint64(u))
	case reflect.Float32:
		return e.w.WriteValue(Float32(float32(rv.Float())))
	case reflect.Float64:
		return e.w.WriteValue(Float64(rv.Float()))
	case reflect.String:
		return e.w.WriteValue(String(rv.String()))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return e.w.WriteNull()
		}
		return e.encode(rv.Elem())
	case reflect.Map:
		if rv.IsNil() {
			return e.w.WriteNull()
		}
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map key %s", ErrUnsupportedType, t.Key())
		}
		return e.encodeMap(rv)
	case reflect.Slice:
		if rv.IsNil() {
			// nil []byte reaches the writer as a null, not as absent bytes.
			return e.w.WriteNull()
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return e.w.WriteValue(Bytes(rv.Convert(bytesType).Interface().([]byte)))
		}
		return e.encodeArray(rv)
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return e.w.WriteValue(Bytes(b))
		}
		return e.encodeArray(rv)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func (e *Encoder) encodeDocument(doc Document) error {
	if doc == nil {
		return e.w.WriteNull()
	}
	if err := e.w.WriteStartObject(); err != nil {
		return err
	}
	for _, p := range doc {
		if err := e.w.WritePropertyName(p.Name); err != nil {
			return err
		}
		if err := e.Encode(p.Value); err != nil {
			return err
		}
	}
	return e.w.WriteEndObject()
}

func (e *Encoder) encodeMap(rv reflect.Value) error {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	if err := e.w.WriteStartObject(); err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.w.WritePropertyName(k.String()); err != nil {
			return err
		}
		if err := e.encode(rv.MapIndex(k)); err != nil {
			return err
		}
	}
	return e.w.WriteEndObject()
}

func (e *Encoder) encodeArray(rv reflect.Value) error {
	if err := e.w.WriteStartArray(); err != nil {
		return err
	}
	for i := range rv.Len() {
		if err := e.encode(rv.Index(i)); err != nil {
			return err
		}
	}
	return e.w.WriteEndArray()
}

func referenceOf(rv reflect.Value) (reference, bool) {
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return reference{}, false
		}
		return reference{ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return reference{}, false
		}
		return reference{ptr: rv.Pointer(), len: rv.Len()}, true
	default:
		return reference{}, false
	}
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
