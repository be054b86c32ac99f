package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/token"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnsupportedBSONType = errors.New("unsupported BSON type")

// Replay walks doc and writes it to w as one object, the reverse of what
// WriteAdapter does. Binary values with a UUID subtype and 16 bytes are
// decoded as GUIDs: subtype 4 always, subtype 3 only when representation is
// one of the legacy layouts.
//
// BSON-only values go to the ExtendedWriter methods when w has them.
// Otherwise ObjectIDs become their hex string, regular expressions
// "/pattern/options", symbols and code their text, timestamps an int64 with
// the seconds in the high 32 bits, and min-key/max-key undefined.
func Replay(w token.Writer, doc bson.Raw, representation bsonw.GUIDRepresentation) error {
	r := replayer{w: w, representation: representation}
	r.ext, _ = w.(ExtendedWriter)
	return r.document(doc)
}

type replayer struct {
	w              token.Writer
	ext            ExtendedWriter
	representation bsonw.GUIDRepresentation
}

func (r *replayer) document(doc bson.Raw) error {
	elements, err := doc.Elements()
	if err != nil {
		return err
	}
	if err = r.w.WriteStartObject(); err != nil {
		return err
	}
	for _, e := range elements {
		if err = r.w.WritePropertyName(e.Key()); err != nil {
			return err
		}
		if err = r.value(e.Value()); err != nil {
			return fmt.Errorf("%s: %w", e.Key(), err)
		}
	}
	return r.w.WriteEndObject()
}

func (r *replayer) array(arr bson.Raw) error {
	values, err := arr.Values()
	if err != nil {
		return err
	}
	if err = r.w.WriteStartArray(); err != nil {
		return err
	}
	for i, v := range values {
		if err = r.value(v); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return r.w.WriteEndArray()
}

//nolint:gocyclo
func (r *replayer) value(v bson.RawValue) error {
	switch v.Type {
	case bsontype.Double:
		return r.w.WriteValue(token.Float64(v.Double()))
	case bsontype.String:
		return r.w.WriteValue(token.String(v.StringValue()))
	case bsontype.EmbeddedDocument:
		return r.document(v.Document())
	case bsontype.Array:
		return r.array(v.Array())
	case bsontype.Binary:
		subtype, data := v.Binary()
		return r.binary(subtype, data)
	case bsontype.Undefined:
		return r.w.WriteUndefined()
	case bsontype.ObjectID:
		id := v.ObjectID()
		if r.ext != nil {
			return r.ext.WriteObjectID(id)
		}
		return r.w.WriteValue(token.String(id.Hex()))
	case bsontype.Boolean:
		return r.w.WriteValue(token.Bool(v.Boolean()))
	case bsontype.DateTime:
		return r.w.WriteValue(token.Time(time.UnixMilli(v.DateTime()).UTC()))
	case bsontype.Null:
		return r.w.WriteNull()
	case bsontype.Regex:
		pattern, options := v.Regex()
		if r.ext != nil {
			return r.ext.WriteRegularExpression(primitive.Regex{Pattern: pattern, Options: options})
		}
		return r.w.WriteValue(token.String("/" + pattern + "/" + options))
	case bsontype.JavaScript:
		code := v.JavaScript()
		if r.ext != nil {
			return r.ext.WriteJavaScript(code)
		}
		return r.w.WriteValue(token.String(code))
	case bsontype.Symbol:
		symbol := v.Symbol()
		if r.ext != nil {
			return r.ext.WriteSymbol(symbol)
		}
		return r.w.WriteValue(token.String(symbol))
	case bsontype.CodeWithScope:
		code, scope := v.CodeWithScope()
		if r.ext != nil {
			return r.ext.WriteJavaScriptWithScope(code, scope)
		}
		return r.w.WriteValue(token.String(code))
	case bsontype.Int32:
		return r.w.WriteValue(token.Int32(v.Int32()))
	case bsontype.Timestamp:
		t, i := v.Timestamp()
		if r.ext != nil {
			return r.ext.WriteTimestamp(primitive.Timestamp{T: t, I: i})
		}
		return r.w.WriteValue(token.Int64(int64(t)<<32 | int64(i)))
	case bsontype.Int64:
		return r.w.WriteValue(token.Int64(v.Int64()))
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(v.Decimal128().String())
		if err != nil {
			return fmt.Errorf("%w: decimal128 %s", ErrUnsupportedBSONType, v.Decimal128())
		}
		return r.w.WriteValue(token.Decimal(d))
	case bsontype.MinKey:
		if r.ext != nil {
			return r.ext.WriteMinKey()
		}
		return r.w.WriteUndefined()
	case bsontype.MaxKey:
		if r.ext != nil {
			return r.ext.WriteMaxKey()
		}
		return r.w.WriteUndefined()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBSONType, v.Type)
	}
}

func (r *replayer) binary(subtype byte, data []byte) error {
	if len(data) == 16 {
		representation := bsonw.Unspecified
		switch {
		case subtype == bsontype.BinaryUUID:
			representation = bsonw.Standard
		case subtype == bsontype.BinaryUUIDOld && isLegacy(r.representation):
			representation = r.representation
		}
		if representation != bsonw.Unspecified {
			g, err := bsonw.BytesToGUID(data, representation)
			if err != nil {
				return err
			}
			return r.w.WriteValue(token.GUID(g))
		}
	}
	if subtype != bsontype.BinaryGeneric && r.ext != nil {
		return r.ext.WriteBinaryData(primitive.Binary{Subtype: subtype, Data: data})
	}
	if data == nil {
		data = []byte{}
	}
	return r.w.WriteValue(token.Bytes(data))
}

func isLegacy(r bsonw.GUIDRepresentation) bool {
	switch r {
	case bsonw.CSharpLegacy, bsonw.JavaLegacy, bsonw.PythonLegacy:
		return true
	default:
		return false
	}
}
