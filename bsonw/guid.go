package bsonw

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	ErrUnspecifiedGUIDRepresentation = errors.New("guid representation is unspecified")
	ErrUnknownGUIDRepresentation     = errors.New("unknown guid representation (known: unspecified, standard, csharp-legacy, java-legacy, python-legacy)")
	ErrInvalidGUIDLength             = errors.New("guid must be 16 bytes")
)

// GUIDRepresentation is the byte layout used to store a GUID as binary data.
type GUIDRepresentation uint8

// The following are necessary for Cobra and Viper, respectively, to unmarshal
// representation CLI/config parameters properly.
var (
	_ pflag.Value              = (*GUIDRepresentation)(nil)
	_ encoding.TextUnmarshaler = (*GUIDRepresentation)(nil)
)

const (
	// Unspecified refuses to write GUIDs.
	Unspecified GUIDRepresentation = iota
	// Standard is RFC 4122 byte order with subtype 4.
	Standard
	// CSharpLegacy is the .NET Guid.ToByteArray order with subtype 3.
	CSharpLegacy
	// JavaLegacy reverses each 8 byte half, with subtype 3.
	JavaLegacy
	// PythonLegacy is RFC 4122 byte order with subtype 3.
	PythonLegacy
)

func (r GUIDRepresentation) String() string {
	switch r {
	case Unspecified:
		return "unspecified"
	case Standard:
		return "standard"
	case CSharpLegacy:
		return "csharp-legacy"
	case JavaLegacy:
		return "java-legacy"
	case PythonLegacy:
		return "python-legacy"
	default:
		return fmt.Sprintf("GUIDRepresentation(%d)", uint8(r))
	}
}

func (r *GUIDRepresentation) Set(s string) error {
	switch s {
	case "UNSPECIFIED", "unspecified":
		*r = Unspecified
	case "STANDARD", "standard":
		*r = Standard
	case "CSHARP-LEGACY", "csharp-legacy", "csharplegacy":
		*r = CSharpLegacy
	case "JAVA-LEGACY", "java-legacy", "javalegacy":
		*r = JavaLegacy
	case "PYTHON-LEGACY", "python-legacy", "pythonlegacy":
		*r = PythonLegacy
	default:
		return ErrUnknownGUIDRepresentation
	}
	return nil
}

func (r *GUIDRepresentation) Type() string {
	return "GUIDRepresentation"
}

func (r GUIDRepresentation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *GUIDRepresentation) UnmarshalText(text []byte) error {
	return r.Set(string(text))
}

// Subtype returns the binary subtype GUIDs are written with.
func (r GUIDRepresentation) Subtype() byte {
	if r == Standard {
		return bsontype.BinaryUUID
	}
	return bsontype.BinaryUUIDOld
}

// GUIDToBytes lays out g according to r.
func GUIDToBytes(g uuid.UUID, r GUIDRepresentation) ([]byte, error) {
	b := make([]byte, len(g))
	copy(b, g[:])
	return b, reorder(b, r)
}

// BytesToGUID is the inverse of GUIDToBytes.
func BytesToGUID(b []byte, r GUIDRepresentation) (uuid.UUID, error) {
	var g uuid.UUID
	if len(b) != len(g) {
		return g, fmt.Errorf("%w: got %d", ErrInvalidGUIDLength, len(b))
	}
	copy(g[:], b)
	// Every layout is its own inverse.
	return g, reorder(g[:], r)
}

func reorder(b []byte, r GUIDRepresentation) error {
	switch r {
	case Standard, PythonLegacy:
	case CSharpLegacy:
		reverse(b[0:4])
		reverse(b[4:6])
		reverse(b[6:8])
	case JavaLegacy:
		reverse(b[0:8])
		reverse(b[8:16])
	case Unspecified:
		return ErrUnspecifiedGUIDRepresentation
	default:
		return fmt.Errorf("%w: %d", ErrUnknownGUIDRepresentation, uint8(r))
	}
	return nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
