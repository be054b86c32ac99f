// Package converters holds the token.Converter implementations for
// identifier types the generic value model does not know about.
package converters

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/NethermindEth/bsonbridge/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotObjectID = errors.New("value is not an ObjectID")

// BSONObjectID wraps a primitive.ObjectID as a standalone value. It is
// immutable once built.
type BSONObjectID struct {
	id primitive.ObjectID
}

func NewBSONObjectID(id primitive.ObjectID) *BSONObjectID {
	return &BSONObjectID{id: id}
}

func (b *BSONObjectID) Value() primitive.ObjectID { return b.id }

func (b *BSONObjectID) String() string { return b.id.Hex() }

func (b *BSONObjectID) Equal(other *BSONObjectID) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.id == other.id
}

// ObjectIDWriter is implemented by writers that can emit an ObjectID
// natively, such as adapter.WriteAdapter.
type ObjectIDWriter interface {
	WriteObjectID(id primitive.ObjectID) error
}

var (
	objectIDType     = reflect.TypeOf(primitive.ObjectID{})
	bsonObjectIDType = reflect.TypeOf((*BSONObjectID)(nil))
)

type objectIDConverter struct{}

type bsonObjectIDConverter struct{}

var (
	ObjectIDConverter     token.Converter = objectIDConverter{}
	BSONObjectIDConverter token.Converter = bsonObjectIDConverter{}
)

// Default returns the converters to register with a token.Encoder. The
// wrapper converter comes first so that it wins over any converter a caller
// appends.
func Default() []token.Converter {
	return []token.Converter{BSONObjectIDConverter, ObjectIDConverter}
}

func (objectIDConverter) CanConvert(t reflect.Type) bool {
	return t == objectIDType
}

func (objectIDConverter) WriteValue(w token.Writer, value any, _ *token.Encoder) error {
	id, ok := value.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotObjectID, value)
	}
	if ow, ok := w.(ObjectIDWriter); ok {
		return ow.WriteObjectID(id)
	}
	return w.WriteValue(token.String(id.Hex()))
}

// ReadValue accepts an ObjectID or its 24 character hex form.
func (objectIDConverter) ReadValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case primitive.ObjectID:
		return v, nil
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotObjectID, err)
		}
		return id, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotObjectID, value)
	}
}

func (bsonObjectIDConverter) CanConvert(t reflect.Type) bool {
	return t == bsonObjectIDType
}

func (bsonObjectIDConverter) WriteValue(w token.Writer, value any, e *token.Encoder) error {
	b, ok := value.(*BSONObjectID)
	if value == nil || (ok && b == nil) {
		return w.WriteNull()
	}
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotObjectID, value)
	}
	return e.Encode(b.id)
}

func (bsonObjectIDConverter) ReadValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if b, ok := value.(*BSONObjectID); ok {
		if b == nil {
			return nil, nil
		}
		return b, nil
	}
	id, err := ObjectIDConverter.ReadValue(value)
	if err != nil {
		return nil, err
	}
	return NewBSONObjectID(id.(primitive.ObjectID)), nil
}
