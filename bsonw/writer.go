// Package bsonw defines the binary document writer contract and a streaming
// implementation producing BSON.
//
// A Writer receives one call per event: documents and arrays are opened and
// closed explicitly, and inside a document every value is preceded by
// WriteName. Array element keys are generated by the writer.
package bsonw

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidState     = errors.New("invalid binary writer state")
	ErrClosed           = errors.New("binary writer is closed")
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
	ErrInvalidName      = errors.New("invalid element name")
	ErrInvalidRegex     = errors.New("invalid regular expression")
)

// DefaultMaxDocumentSize is the largest document MongoDB accepts.
const DefaultMaxDocumentSize = 16 * 1024 * 1024

// Settings configure a Writer.
type Settings struct {
	// GUIDRepresentation decides the subtype and byte order used for GUIDs.
	GUIDRepresentation GUIDRepresentation
	// MaxDocumentSize bounds each top-level document, in bytes.
	MaxDocumentSize int
}

func DefaultSettings() Settings {
	return Settings{
		GUIDRepresentation: Standard,
		MaxDocumentSize:    DefaultMaxDocumentSize,
	}
}

//go:generate mockgen -destination=../mocks/mock_writer.go -package=mocks github.com/NethermindEth/bsonbridge/bsonw Writer
type Writer interface {
	Settings() Settings

	WriteStartDocument() error
	WriteEndDocument() error
	WriteStartArray() error
	WriteEndArray() error
	WriteName(name string) error

	WriteNull() error
	WriteUndefined() error
	WriteBoolean(b bool) error
	WriteInt32(i int32) error
	WriteInt64(i int64) error
	WriteDouble(f float64) error
	WriteString(s string) error
	WriteBinaryData(b primitive.Binary) error
	WriteDateTime(ms int64) error
	WriteObjectID(id primitive.ObjectID) error
	WriteRegularExpression(re primitive.Regex) error
	WriteSymbol(s string) error
	WriteJavaScript(code string) error
	WriteJavaScriptWithScope(code string, scope bson.Raw) error
	WriteTimestamp(ts primitive.Timestamp) error
	WriteMinKey() error
	WriteMaxKey() error

	Flush() error
	Close() error
}
