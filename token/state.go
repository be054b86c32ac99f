package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidState = errors.New("invalid writer state")
	ErrClosed       = errors.New("writer is closed")
)

// WriteState is the position of a State within the token stream.
type WriteState uint8

const (
	// StateStart is the top level, between documents.
	StateStart WriteState = iota
	// StateObject expects a property name or the end of the object.
	StateObject
	// StateProperty expects the value of the last property name.
	StateProperty
	StateArray
	StateClosed
)

func (s WriteState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateObject:
		return "object"
	case StateProperty:
		return "property"
	case StateArray:
		return "array"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type containerKind uint8

const (
	objectContainer containerKind = iota
	arrayContainer
)

type container struct {
	kind containerKind
	// name is the last property name written in an object.
	name        string
	expectValue bool
	// count is the number of elements started in an array.
	count int
}

// State validates the ordering of calls made on a Writer: property names only
// inside objects, exactly one value after each name, balanced starts and
// ends. Writers call the matching State method before emitting anything, so a
// rejected call never reaches the output.
//
// The zero State is ready to use. A State is not safe for concurrent use.
type State struct {
	// CloseOutput controls whether closing the writer also closes the
	// underlying output.
	CloseOutput bool

	stack  []container
	last   Token
	closed bool
}

// WriteState returns the current position in the stream.
func (s *State) WriteState() WriteState {
	if s.closed {
		return StateClosed
	}
	if len(s.stack) == 0 {
		return StateStart
	}
	top := s.stack[len(s.stack)-1]
	switch {
	case top.kind == arrayContainer:
		return StateArray
	case top.expectValue:
		return StateProperty
	default:
		return StateObject
	}
}

// Last returns the token recorded by the last successful call.
func (s *State) Last() Token { return s.last }

// Depth returns the number of open objects and arrays.
func (s *State) Depth() int { return len(s.stack) }

// Closed reports whether Close has been called.
func (s *State) Closed() bool { return s.closed }

// Path returns the location of the last written token, e.g. "a.b[2]".
func (s *State) Path() string {
	var sb strings.Builder
	for i, c := range s.stack {
		switch c.kind {
		case objectContainer:
			if c.name == "" && !c.expectValue {
				continue
			}
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(c.name)
		case arrayContainer:
			if c.count == 0 {
				continue
			}
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(c.count - 1))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func (s *State) StartObject() error {
	if err := s.beforeValue(TokenStartObject); err != nil {
		return err
	}
	s.stack = append(s.stack, container{kind: objectContainer})
	s.last = TokenStartObject
	return nil
}

func (s *State) EndObject() error {
	if err := s.end(objectContainer, TokenEndObject); err != nil {
		return err
	}
	s.last = TokenEndObject
	return nil
}

func (s *State) StartArray() error {
	if err := s.beforeValue(TokenStartArray); err != nil {
		return err
	}
	s.stack = append(s.stack, container{kind: arrayContainer})
	s.last = TokenStartArray
	return nil
}

func (s *State) EndArray() error {
	if err := s.end(arrayContainer, TokenEndArray); err != nil {
		return err
	}
	s.last = TokenEndArray
	return nil
}

// PropertyName records name; the next call must produce a value.
func (s *State) PropertyName(name string) error {
	if s.closed {
		return ErrClosed
	}
	if s.WriteState() != StateObject {
		return s.invalid(TokenPropertyName)
	}
	top := &s.stack[len(s.stack)-1]
	top.name = name
	top.expectValue = true
	s.last = TokenPropertyName
	return nil
}

// Value records a single primitive value of token t.
func (s *State) Value(t Token) error {
	if err := s.beforeValue(t); err != nil {
		return err
	}
	s.last = t
	return nil
}

// Close marks the state closed. Open containers are left as they are. It
// returns false if the state was already closed.
func (s *State) Close() bool {
	if s.closed {
		return false
	}
	s.closed = true
	return true
}

func (s *State) beforeValue(t Token) error {
	if s.closed {
		return ErrClosed
	}
	if len(s.stack) == 0 {
		return nil
	}
	top := &s.stack[len(s.stack)-1]
	switch top.kind {
	case objectContainer:
		if !top.expectValue {
			return s.invalid(t)
		}
		top.expectValue = false
	case arrayContainer:
		top.count++
	}
	return nil
}

func (s *State) end(kind containerKind, t Token) error {
	if s.closed {
		return ErrClosed
	}
	if len(s.stack) == 0 {
		return s.invalid(t)
	}
	top := s.stack[len(s.stack)-1]
	if top.kind != kind || top.expectValue {
		return s.invalid(t)
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *State) invalid(t Token) error {
	return fmt.Errorf("%w: cannot write %s in state %s (path %q)", ErrInvalidState, t, s.WriteState(), s.Path())
}
