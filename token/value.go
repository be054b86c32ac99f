package token

import (
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the native type of a Value. There is one kind per Go width so that
// writers can decide for themselves how to collapse them.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindChar
	KindString
	KindBytes
	KindTime
	KindTimeOffset
	KindGUID
	KindDuration
	KindURI
)

var kindNames = [...]string{
	KindBool:       "bool",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindDecimal:    "decimal",
	KindChar:       "char",
	KindString:     "string",
	KindBytes:      "bytes",
	KindTime:       "time",
	KindTimeOffset: "time-offset",
	KindGUID:       "guid",
	KindDuration:   "duration",
	KindURI:        "uri",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token returns the bookkeeping token recorded when a value of this kind is
// written.
func (k Kind) Token() Token {
	switch k {
	case KindBool:
		return TokenBoolean
	case KindInt8, KindInt16, KindInt32, KindInt64, KindUint8, KindUint16, KindUint32, KindUint64:
		return TokenInteger
	case KindFloat32, KindFloat64, KindDecimal:
		return TokenFloat
	case KindTime, KindTimeOffset:
		return TokenDate
	case KindBytes:
		return TokenBytes
	default:
		return TokenString
	}
}

// Value is a single primitive passed to Writer.WriteValue. The zero Value is
// a null bool; use the constructors below.
type Value struct {
	kind Kind
	null bool
	x    any
}

func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a typed null.
func (v Value) IsNull() bool { return v.null }

// Token returns the bookkeeping token for v. Typed nulls record Null.
func (v Value) Token() Token {
	if v.null {
		return TokenNull
	}
	return v.kind.Token()
}

// Null returns a typed null of kind k.
func Null(k Kind) Value { return Value{kind: k, null: true} }

func Bool(b bool) Value { return Value{kind: KindBool, x: b} }
func Int8(i int8) Value { return Value{kind: KindInt8, x: i} }
func Int16(i int16) Value { return Value{kind: KindInt16, x: i} }
func Int32(i int32) Value { return Value{kind: KindInt32, x: i} }
func Int64(i int64) Value { return Value{kind: KindInt64, x: i} }
func Uint8(u uint8) Value { return Value{kind: KindUint8, x: u} }
func Uint16(u uint16) Value { return Value{kind: KindUint16, x: u} }
func Uint32(u uint32) Value { return Value{kind: KindUint32, x: u} }
func Uint64(u uint64) Value { return Value{kind: KindUint64, x: u} }
func Float32(f float32) Value { return Value{kind: KindFloat32, x: f} }
func Float64(f float64) Value { return Value{kind: KindFloat64, x: f} }
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, x: d} }
func Char(r rune) Value { return Value{kind: KindChar, x: r} }
func String(s string) Value { return Value{kind: KindString, x: s} }
func Time(t time.Time) Value { return Value{kind: KindTime, x: t} }
func TimeOffset(t time.Time) Value { return Value{kind: KindTimeOffset, x: t} }
func GUID(g uuid.UUID) Value { return Value{kind: KindGUID, x: g} }
func Duration(d time.Duration) Value { return Value{kind: KindDuration, x: d} }

// StringPtr returns a null string for a nil s.
func StringPtr(s *string) Value {
	if s == nil {
		return Null(KindString)
	}
	return String(*s)
}

// Bytes returns a null bytes value for a nil b.
func Bytes(b []byte) Value {
	if b == nil {
		return Null(KindBytes)
	}
	return Value{kind: KindBytes, x: b}
}

// URI returns a null URI for a nil u.
func URI(u *url.URL) Value {
	if u == nil {
		return Null(KindURI)
	}
	return Value{kind: KindURI, x: u}
}

// Accessors panic when called on a Value of another kind or on a null, in
// the same way reflect.Value does.

func (v Value) Bool() bool { return v.x.(bool) }
func (v Value) Int8() int8 { return v.x.(int8) }
func (v Value) Int16() int16 { return v.x.(int16) }
func (v Value) Int32() int32 { return v.x.(int32) }
func (v Value) Int64() int64 { return v.x.(int64) }
func (v Value) Uint8() uint8 { return v.x.(uint8) }
func (v Value) Uint16() uint16 { return v.x.(uint16) }
func (v Value) Uint32() uint32 { return v.x.(uint32) }
func (v Value) Uint64() uint64 { return v.x.(uint64) }
func (v Value) Float32() float32 { return v.x.(float32) }
func (v Value) Float64() float64 { return v.x.(float64) }
func (v Value) Decimal() decimal.Decimal { return v.x.(decimal.Decimal) }
func (v Value) Char() rune { return v.x.(rune) }
func (v Value) Str() string { return v.x.(string) }
func (v Value) Bytes() []byte { return v.x.([]byte) }
func (v Value) Time() time.Time { return v.x.(time.Time) }
func (v Value) GUID() uuid.UUID { return v.x.(uuid.UUID) }
func (v Value) Duration() time.Duration { return v.x.(time.Duration) }
func (v Value) URI() *url.URL { return v.x.(*url.URL) }

// Interface returns the Go value held by v, or nil for a typed null.
func (v Value) Interface() any {
	if v.null {
		return nil
	}
	return v.x
}
