// Package token defines a generic hierarchical token-stream writer: objects,
// arrays, property names and primitive values, independent of any output
// format.
//
// Writers embed a State to validate call ordering and accept every primitive
// through a single WriteValue call taking a tagged Value, so each writer
// handles the whole set of kinds in one switch.
//
//	w.WriteStartObject()
//	w.WritePropertyName("a")
//	w.WriteValue(token.Int32(1))
//	w.WriteEndObject()
//
// Encoder drives a Writer from ordinary Go values and is where Converter
// implementations for domain types are registered.
package token

// Writer is the generic token-stream writer contract.
//
//go:generate mockgen -destination=../mocks/mock_token_writer.go -package=mocks -mock_names Writer=MockTokenWriter github.com/NethermindEth/bsonbridge/token Writer
type Writer interface {
	WriteStartObject() error
	WriteEndObject() error
	WriteStartArray() error
	WriteEndArray() error
	// WriteStartConstructor and WriteEndConstructor write a named
	// constructor call such as new Date(0). Formats without an
	// equivalent return an error.
	WriteStartConstructor(name string) error
	WriteEndConstructor() error
	WritePropertyName(name string) error

	WriteNull() error
	WriteUndefined() error
	WriteValue(v Value) error

	// WriteRaw writes pre-formatted text without changing the writer state;
	// WriteRawValue writes it as a value.
	WriteRaw(raw string) error
	WriteRawValue(raw string) error
	WriteWhitespace(ws string) error

	Flush() error
	Close() error
}
