package bsonw

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// emptyDocument is the scope written for code with a nil scope.
var emptyDocument = []byte{0x05, 0x00, 0x00, 0x00, 0x00}

type frameKind uint8

const (
	documentFrame frameKind = iota
	arrayFrame
)

type frame struct {
	kind  frameKind
	start int32
	// next is the key of the next array element.
	next int
}

// StreamWriter writes a sequence of BSON documents to an io.Writer. Each
// document is assembled in memory and written out once its top-level
// WriteEndDocument succeeds.
//
// StreamWriter is not safe for concurrent use.
type StreamWriter struct {
	out      *bufio.Writer
	settings Settings

	buf     []byte
	stack   []frame
	name    string
	hasName bool
	closed  bool

	documents int
	written   int64
}

var _ Writer = (*StreamWriter)(nil)

// NewStreamWriter returns a writer emitting documents to w. A non-positive
// MaxDocumentSize is replaced by DefaultMaxDocumentSize.
func NewStreamWriter(w io.Writer, settings Settings) *StreamWriter {
	if settings.MaxDocumentSize <= 0 {
		settings.MaxDocumentSize = DefaultMaxDocumentSize
	}
	return &StreamWriter{
		out:      bufio.NewWriter(w),
		settings: settings,
	}
}

func (s *StreamWriter) Settings() Settings { return s.settings }

// Documents returns the number of top-level documents written.
func (s *StreamWriter) Documents() int { return s.documents }

// Written returns the number of bytes handed to the output.
func (s *StreamWriter) Written() int64 { return s.written }

func (s *StreamWriter) WriteStartDocument() error {
	if s.closed {
		return ErrClosed
	}
	if len(s.stack) == 0 {
		if s.hasName {
			return s.invalid("start document")
		}
		s.buf = s.buf[:0]
	} else if err := s.header(bsontype.EmbeddedDocument); err != nil {
		return err
	}
	var start int32
	start, s.buf = bsoncore.AppendDocumentStart(s.buf)
	s.stack = append(s.stack, frame{kind: documentFrame, start: start})
	return nil
}

func (s *StreamWriter) WriteEndDocument() error {
	if s.closed {
		return ErrClosed
	}
	top, err := s.top(documentFrame, "end document")
	if err != nil {
		return err
	}
	if s.hasName {
		return s.invalid("end document")
	}
	if s.buf, err = bsoncore.AppendDocumentEnd(s.buf, top.start); err != nil {
		return err
	}
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) > 0 {
		return nil
	}

	if size := len(s.buf); size > s.settings.MaxDocumentSize {
		s.buf = s.buf[:0]
		return fmt.Errorf("%w: %d bytes, limit %d", ErrDocumentTooLarge, size, s.settings.MaxDocumentSize)
	}
	n, err := s.out.Write(s.buf)
	s.written += int64(n)
	s.buf = s.buf[:0]
	if err != nil {
		return err
	}
	s.documents++
	return nil
}

func (s *StreamWriter) WriteStartArray() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.header(bsontype.Array); err != nil {
		return err
	}
	var start int32
	start, s.buf = bsoncore.AppendArrayStart(s.buf)
	s.stack = append(s.stack, frame{kind: arrayFrame, start: start})
	return nil
}

func (s *StreamWriter) WriteEndArray() error {
	if s.closed {
		return ErrClosed
	}
	top, err := s.top(arrayFrame, "end array")
	if err != nil {
		return err
	}
	if s.buf, err = bsoncore.AppendArrayEnd(s.buf, top.start); err != nil {
		return err
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *StreamWriter) WriteName(name string) error {
	if s.closed {
		return ErrClosed
	}
	if _, err := s.top(documentFrame, "name"); err != nil {
		return err
	}
	if s.hasName {
		return s.invalid("name")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: %q contains a null byte", ErrInvalidName, name)
	}
	s.name, s.hasName = name, true
	return nil
}

func (s *StreamWriter) WriteNull() error {
	return s.header(bsontype.Null)
}

func (s *StreamWriter) WriteUndefined() error {
	return s.header(bsontype.Undefined)
}

func (s *StreamWriter) WriteMinKey() error {
	return s.header(bsontype.MinKey)
}

func (s *StreamWriter) WriteMaxKey() error {
	return s.header(bsontype.MaxKey)
}

func (s *StreamWriter) WriteBoolean(b bool) error {
	return s.value(bsontype.Boolean, func(dst []byte) []byte { return bsoncore.AppendBoolean(dst, b) })
}

func (s *StreamWriter) WriteInt32(i int32) error {
	return s.value(bsontype.Int32, func(dst []byte) []byte { return bsoncore.AppendInt32(dst, i) })
}

func (s *StreamWriter) WriteInt64(i int64) error {
	return s.value(bsontype.Int64, func(dst []byte) []byte { return bsoncore.AppendInt64(dst, i) })
}

func (s *StreamWriter) WriteDouble(f float64) error {
	return s.value(bsontype.Double, func(dst []byte) []byte { return bsoncore.AppendDouble(dst, f) })
}

func (s *StreamWriter) WriteString(str string) error {
	return s.value(bsontype.String, func(dst []byte) []byte { return bsoncore.AppendString(dst, str) })
}

func (s *StreamWriter) WriteBinaryData(b primitive.Binary) error {
	return s.value(bsontype.Binary, func(dst []byte) []byte { return bsoncore.AppendBinary(dst, b.Subtype, b.Data) })
}

func (s *StreamWriter) WriteDateTime(ms int64) error {
	return s.value(bsontype.DateTime, func(dst []byte) []byte { return bsoncore.AppendDateTime(dst, ms) })
}

func (s *StreamWriter) WriteObjectID(id primitive.ObjectID) error {
	return s.value(bsontype.ObjectID, func(dst []byte) []byte { return bsoncore.AppendObjectID(dst, id) })
}

func (s *StreamWriter) WriteRegularExpression(re primitive.Regex) error {
	if strings.IndexByte(re.Pattern, 0) >= 0 || strings.IndexByte(re.Options, 0) >= 0 {
		return fmt.Errorf("%w: pattern or options contain a null byte", ErrInvalidRegex)
	}
	// Options are stored sorted.
	options := []byte(re.Options)
	sort.Slice(options, func(i, j int) bool { return options[i] < options[j] })
	return s.value(bsontype.Regex, func(dst []byte) []byte {
		return bsoncore.AppendRegex(dst, re.Pattern, string(options))
	})
}

func (s *StreamWriter) WriteSymbol(symbol string) error {
	return s.value(bsontype.Symbol, func(dst []byte) []byte { return bsoncore.AppendSymbol(dst, symbol) })
}

func (s *StreamWriter) WriteJavaScript(code string) error {
	return s.value(bsontype.JavaScript, func(dst []byte) []byte { return bsoncore.AppendJavaScript(dst, code) })
}

func (s *StreamWriter) WriteJavaScriptWithScope(code string, scope bson.Raw) error {
	if scope == nil {
		scope = emptyDocument
	} else if err := scope.Validate(); err != nil {
		return err
	}
	return s.value(bsontype.CodeWithScope, func(dst []byte) []byte {
		return bsoncore.AppendCodeWithScope(dst, code, []byte(scope))
	})
}

func (s *StreamWriter) WriteTimestamp(ts primitive.Timestamp) error {
	return s.value(bsontype.Timestamp, func(dst []byte) []byte { return bsoncore.AppendTimestamp(dst, ts.T, ts.I) })
}

// Flush writes buffered documents to the output. Documents still being
// assembled are not affected.
func (s *StreamWriter) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return s.out.Flush()
}

// Close flushes completed documents and discards any partial one. Closing a
// closed writer does nothing.
func (s *StreamWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.stack = s.stack[:0]
	s.buf = s.buf[:0]
	s.hasName = false
	return s.out.Flush()
}

func (s *StreamWriter) value(t bsontype.Type, appendValue func([]byte) []byte) error {
	if err := s.header(t); err != nil {
		return err
	}
	s.buf = appendValue(s.buf)
	return nil
}

// header appends the element type and key for the next value, consuming the
// pending name in a document or the next index in an array.
func (s *StreamWriter) header(t bsontype.Type) error {
	if s.closed {
		return ErrClosed
	}
	if len(s.stack) == 0 {
		return s.invalid(t.String())
	}
	top := &s.stack[len(s.stack)-1]
	switch top.kind {
	case documentFrame:
		if !s.hasName {
			return s.invalid(t.String())
		}
		s.buf = bsoncore.AppendHeader(s.buf, t, s.name)
		s.name, s.hasName = "", false
	case arrayFrame:
		s.buf = bsoncore.AppendHeader(s.buf, t, strconv.Itoa(top.next))
		top.next++
	}
	return nil
}

func (s *StreamWriter) top(kind frameKind, what string) (frame, error) {
	if len(s.stack) == 0 || s.stack[len(s.stack)-1].kind != kind {
		return frame{}, s.invalid(what)
	}
	return s.stack[len(s.stack)-1], nil
}

func (s *StreamWriter) invalid(what string) error {
	context := "top level"
	if n := len(s.stack); n > 0 {
		if s.stack[n-1].kind == arrayFrame {
			context = "array"
		} else if s.hasName {
			context = "document after name " + strconv.Quote(s.name)
		} else {
			context = "document"
		}
	}
	return fmt.Errorf("%w: cannot write %s in %s", ErrInvalidState, what, context)
}
