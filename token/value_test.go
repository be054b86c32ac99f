package token_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/NethermindEth/bsonbridge/token"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueTokens(t *testing.T) {
	u, _ := url.Parse("https://example.com")
	tests := []struct {
		value token.Value
		kind  token.Kind
		token token.Token
	}{
		{token.Bool(true), token.KindBool, token.TokenBoolean},
		{token.Int8(1), token.KindInt8, token.TokenInteger},
		{token.Uint64(1), token.KindUint64, token.TokenInteger},
		{token.Float32(1), token.KindFloat32, token.TokenFloat},
		{token.Decimal(decimal.NewFromInt(1)), token.KindDecimal, token.TokenFloat},
		{token.Char('x'), token.KindChar, token.TokenString},
		{token.String("x"), token.KindString, token.TokenString},
		{token.Bytes([]byte{}), token.KindBytes, token.TokenBytes},
		{token.Time(time.Unix(0, 0)), token.KindTime, token.TokenDate},
		{token.TimeOffset(time.Unix(0, 0)), token.KindTimeOffset, token.TokenDate},
		{token.GUID(uuid.Nil), token.KindGUID, token.TokenString},
		{token.Duration(time.Second), token.KindDuration, token.TokenString},
		{token.URI(u), token.KindURI, token.TokenString},
		{token.Null(token.KindInt32), token.KindInt32, token.TokenNull},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			assert.Equal(t, test.kind, test.value.Kind())
			assert.Equal(t, test.token, test.value.Token())
		})
	}
}

func TestNullableConstructors(t *testing.T) {
	assert.True(t, token.Bytes(nil).IsNull())
	assert.Equal(t, token.KindBytes, token.Bytes(nil).Kind())
	assert.False(t, token.Bytes([]byte{}).IsNull())

	assert.True(t, token.URI(nil).IsNull())
	assert.Equal(t, token.KindURI, token.URI(nil).Kind())

	assert.True(t, token.StringPtr(nil).IsNull())
	s := "x"
	assert.Equal(t, token.String("x"), token.StringPtr(&s))

	assert.Nil(t, token.Null(token.KindGUID).Interface())
	assert.Equal(t, int32(3), token.Int32(3).Interface())
}

func TestValueAccessorPanicsOnWrongKind(t *testing.T) {
	assert.Panics(t, func() { token.String("x").Int32() })
	assert.Equal(t, "unknown", token.Kind(100).String())
}
