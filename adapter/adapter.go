// Package adapter lets code written against the generic token.Writer produce
// BSON. WriteAdapter validates each call with a token.State, coerces the
// value to the closest BSON type and forwards it to a bsonw.Writer, which
// owns the encoding.
package adapter

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/token"
	"github.com/NethermindEth/bsonbridge/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnsupportedOperation is returned for token.Writer operations BSON has no
// equivalent for. Nothing is forwarded when it is returned.
var ErrUnsupportedOperation = errors.New("operation not supported by BSON")

// ExtendedWriter is a token.Writer that can also write the BSON types the
// generic model has no vocabulary for.
type ExtendedWriter interface {
	token.Writer

	WriteBinaryData(b primitive.Binary) error
	WriteDateTime(ms int64) error
	WriteInt32(i int32) error
	WriteObjectID(id primitive.ObjectID) error
	WriteRegularExpression(re primitive.Regex) error
	WriteSymbol(s string) error
	WriteJavaScript(code string) error
	WriteJavaScriptWithScope(code string, scope bson.Raw) error
	WriteTimestamp(ts primitive.Timestamp) error
	WriteMinKey() error
	WriteMaxKey() error
}

// WriteAdapter implements token.Writer on top of a bsonw.Writer. It is bound
// to one binary writer for its whole life and is not safe for concurrent
// use.
type WriteAdapter struct {
	state  token.State
	writer bsonw.Writer
	log    utils.SimpleLogger
}

var _ ExtendedWriter = (*WriteAdapter)(nil)

type Option func(*WriteAdapter)

// WithCloseOutput makes Close also close the wrapped writer.
func WithCloseOutput(closeOutput bool) Option {
	return func(a *WriteAdapter) {
		a.state.CloseOutput = closeOutput
	}
}

func WithLogger(log utils.SimpleLogger) Option {
	return func(a *WriteAdapter) {
		a.log = log
	}
}

func New(w bsonw.Writer, opts ...Option) *WriteAdapter {
	a := &WriteAdapter{
		writer: w,
		log:    utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WrappedWriter returns the binary writer the adapter forwards to.
func (a *WriteAdapter) WrappedWriter() bsonw.Writer { return a.writer }

// CloseOutput reports whether Close propagates to the wrapped writer.
func (a *WriteAdapter) CloseOutput() bool { return a.state.CloseOutput }

func (a *WriteAdapter) SetCloseOutput(closeOutput bool) { a.state.CloseOutput = closeOutput }

// State exposes the ordering bookkeeping, mainly for its Path in error
// reports.
func (a *WriteAdapter) State() *token.State { return &a.state }

func (a *WriteAdapter) Flush() error {
	return a.writer.Flush()
}

// Close closes the adapter. The wrapped writer is closed as well only when
// CloseOutput is set; otherwise it stays usable by its owner.
func (a *WriteAdapter) Close() error {
	if !a.state.Close() {
		return nil
	}
	if !a.state.CloseOutput {
		a.log.Debugw("Adapter closed, wrapped writer left open")
		return nil
	}
	a.log.Debugw("Adapter closed, closing wrapped writer")
	return a.writer.Close()
}

func (a *WriteAdapter) WriteStartObject() error {
	if err := a.state.StartObject(); err != nil {
		return err
	}
	return a.writer.WriteStartDocument()
}

func (a *WriteAdapter) WriteEndObject() error {
	if err := a.state.EndObject(); err != nil {
		return err
	}
	return a.writer.WriteEndDocument()
}

func (a *WriteAdapter) WriteStartArray() error {
	if err := a.state.StartArray(); err != nil {
		return err
	}
	return a.writer.WriteStartArray()
}

func (a *WriteAdapter) WriteEndArray() error {
	if err := a.state.EndArray(); err != nil {
		return err
	}
	return a.writer.WriteEndArray()
}

func (a *WriteAdapter) WritePropertyName(name string) error {
	if err := a.state.PropertyName(name); err != nil {
		return err
	}
	return a.writer.WriteName(name)
}

func (a *WriteAdapter) WriteNull() error {
	if err := a.state.Value(token.TokenNull); err != nil {
		return err
	}
	return a.writer.WriteNull()
}

func (a *WriteAdapter) WriteUndefined() error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteUndefined()
}

func (a *WriteAdapter) WriteStartConstructor(name string) error {
	return a.unsupported("WriteStartConstructor")
}

func (a *WriteAdapter) WriteEndConstructor() error {
	return a.unsupported("WriteEndConstructor")
}

func (a *WriteAdapter) WriteRaw(raw string) error {
	return a.unsupported("WriteRaw")
}

func (a *WriteAdapter) WriteRawValue(raw string) error {
	return a.unsupported("WriteRawValue")
}

// WriteWhitespace does nothing: BSON carries no whitespace.
func (a *WriteAdapter) WriteWhitespace(ws string) error {
	return nil
}

func (a *WriteAdapter) unsupported(op string) error {
	a.log.Debugw("Rejected unsupported operation", "op", op, "path", a.state.Path())
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
}

// The following write BSON-only values. The generic model has no token for
// them, so they are recorded as undefined.

func (a *WriteAdapter) WriteBinaryData(b primitive.Binary) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteBinaryData(b)
}

func (a *WriteAdapter) WriteObjectID(id primitive.ObjectID) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteObjectID(id)
}

func (a *WriteAdapter) WriteRegularExpression(re primitive.Regex) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteRegularExpression(re)
}

func (a *WriteAdapter) WriteSymbol(s string) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteSymbol(s)
}

func (a *WriteAdapter) WriteJavaScript(code string) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteJavaScript(code)
}

func (a *WriteAdapter) WriteJavaScriptWithScope(code string, scope bson.Raw) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteJavaScriptWithScope(code, scope)
}

func (a *WriteAdapter) WriteTimestamp(ts primitive.Timestamp) error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteTimestamp(ts)
}

func (a *WriteAdapter) WriteMinKey() error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteMinKey()
}

func (a *WriteAdapter) WriteMaxKey() error {
	if err := a.state.Value(token.TokenUndefined); err != nil {
		return err
	}
	return a.writer.WriteMaxKey()
}

// WriteDateTime writes a BSON datetime given in milliseconds since the Unix
// epoch.
func (a *WriteAdapter) WriteDateTime(ms int64) error {
	if err := a.state.Value(token.TokenDate); err != nil {
		return err
	}
	return a.writer.WriteDateTime(ms)
}

func (a *WriteAdapter) WriteInt32(i int32) error {
	if err := a.state.Value(token.TokenInteger); err != nil {
		return err
	}
	return a.writer.WriteInt32(i)
}

// WriteValue writes v converted to the closest BSON type. See emit for the
// conversions.
func (a *WriteAdapter) WriteValue(v token.Value) error {
	if err := a.state.Value(v.Token()); err != nil {
		return err
	}
	return a.emit(v)
}

func (a *WriteAdapter) emit(v token.Value) error {
	if v.IsNull() {
		switch v.Kind() {
		case token.KindBytes, token.KindURI:
			// Absent, not null.
			return nil
		default:
			return a.writer.WriteNull()
		}
	}

	switch k := v.Kind(); k {
	case token.KindBool:
		return a.writer.WriteBoolean(v.Bool())
	case token.KindInt8:
		return a.writer.WriteInt32(int32(v.Int8()))
	case token.KindInt16:
		return a.writer.WriteInt32(int32(v.Int16()))
	case token.KindInt32:
		return a.writer.WriteInt32(v.Int32())
	case token.KindUint8:
		return a.writer.WriteInt32(int32(v.Uint8()))
	case token.KindUint16:
		return a.writer.WriteInt32(int32(v.Uint16()))
	case token.KindUint32:
		return a.writer.WriteInt32(int32(v.Uint32()))
	case token.KindInt64:
		return a.writer.WriteInt64(v.Int64())
	case token.KindUint64:
		return a.writer.WriteInt64(int64(v.Uint64()))
	case token.KindFloat32:
		return a.writer.WriteDouble(float64(v.Float32()))
	case token.KindFloat64:
		return a.writer.WriteDouble(v.Float64())
	case token.KindDecimal:
		return a.writer.WriteDouble(v.Decimal().InexactFloat64())
	case token.KindChar:
		return a.writer.WriteString(string(v.Char()))
	case token.KindString:
		return a.writer.WriteString(v.Str())
	case token.KindBytes:
		return a.writer.WriteBinaryData(primitive.Binary{Subtype: bsontype.BinaryGeneric, Data: v.Bytes()})
	case token.KindTime, token.KindTimeOffset:
		return a.writer.WriteDateTime(int64(primitive.NewDateTimeFromTime(v.Time())))
	case token.KindGUID:
		return a.writeGUID(v)
	case token.KindDuration:
		return a.writer.WriteString(v.Duration().String())
	case token.KindURI:
		return a.writer.WriteString(v.URI().String())
	default:
		return fmt.Errorf("%w: value of kind %s", ErrUnsupportedOperation, k)
	}
}

// writeGUID reads the representation from the wrapped writer's settings on
// every call; it is never cached.
func (a *WriteAdapter) writeGUID(v token.Value) error {
	representation := a.writer.Settings().GUIDRepresentation
	data, err := bsonw.GUIDToBytes(v.GUID(), representation)
	if err != nil {
		return err
	}
	return a.writer.WriteBinaryData(primitive.Binary{Subtype: representation.Subtype(), Data: data})
}
