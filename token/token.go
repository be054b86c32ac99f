package token

// Token is the kind of the last event recorded by a State. It is coarser than
// Kind: every integer width records TokenInteger and every text-like value
// records TokenString.
type Token uint8

const (
	TokenNone Token = iota
	TokenStartObject
	TokenPropertyName
	TokenEndObject
	TokenStartArray
	TokenEndArray
	TokenInteger
	TokenFloat
	TokenString
	TokenBoolean
	TokenNull
	TokenUndefined
	TokenDate
	TokenBytes
)

func (t Token) String() string {
	switch t {
	case TokenNone:
		return "none"
	case TokenStartObject:
		return "start-object"
	case TokenPropertyName:
		return "property-name"
	case TokenEndObject:
		return "end-object"
	case TokenStartArray:
		return "start-array"
	case TokenEndArray:
		return "end-array"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenBoolean:
		return "boolean"
	case TokenNull:
		return "null"
	case TokenUndefined:
		return "undefined"
	case TokenDate:
		return "date"
	case TokenBytes:
		return "bytes"
	default:
		return "unknown"
	}
}
