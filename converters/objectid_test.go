package converters_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/NethermindEth/bsonbridge/adapter"
	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/converters"
	"github.com/NethermindEth/bsonbridge/mocks"
	"github.com/NethermindEth/bsonbridge/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

var testID = primitive.ObjectID{0x5f, 0x1d, 0x7a, 0x3c, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}

func TestCanConvert(t *testing.T) {
	assert.True(t, converters.ObjectIDConverter.CanConvert(reflect.TypeOf(primitive.ObjectID{})))
	assert.False(t, converters.ObjectIDConverter.CanConvert(reflect.TypeOf(&primitive.ObjectID{})))
	assert.False(t, converters.ObjectIDConverter.CanConvert(reflect.TypeOf("")))

	assert.True(t, converters.BSONObjectIDConverter.CanConvert(reflect.TypeOf(&converters.BSONObjectID{})))
	assert.False(t, converters.BSONObjectIDConverter.CanConvert(reflect.TypeOf(converters.BSONObjectID{})))
	assert.False(t, converters.BSONObjectIDConverter.CanConvert(reflect.TypeOf(primitive.ObjectID{})))
}

func TestBSONObjectID(t *testing.T) {
	a := converters.NewBSONObjectID(testID)
	b := converters.NewBSONObjectID(testID)

	assert.Equal(t, testID, a.Value())
	assert.Equal(t, testID.Hex(), a.String())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(converters.NewBSONObjectID(primitive.NilObjectID)))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*converters.BSONObjectID)(nil).Equal(nil))
}

func TestWriteObjectID(t *testing.T) {
	t.Run("native identifier on an ObjectID writer", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		w := mocks.NewMockWriter(mockCtrl)
		a := adapter.New(w)

		gomock.InOrder(
			w.EXPECT().WriteStartDocument().Return(nil),
			w.EXPECT().WriteName("_id").Return(nil),
			w.EXPECT().WriteObjectID(testID).Return(nil),
			w.EXPECT().WriteEndDocument().Return(nil),
		)

		e := token.NewEncoder(a, converters.Default()...)
		require.NoError(t, e.Encode(token.Document{{Name: "_id", Value: testID}}))
	})

	t.Run("hex string on a generic writer", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		w := mocks.NewMockTokenWriter(mockCtrl)

		w.EXPECT().WriteValue(token.String(testID.Hex())).Return(nil)

		e := token.NewEncoder(w, converters.Default()...)
		require.NoError(t, e.Encode(testID))
	})

	t.Run("wrong type", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		w := mocks.NewMockTokenWriter(mockCtrl)

		err := converters.ObjectIDConverter.WriteValue(w, "not an id", nil)
		require.ErrorIs(t, err, converters.ErrNotObjectID)
	})
}

func TestWriteBSONObjectID(t *testing.T) {
	t.Run("nil emits exactly one null", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		w := mocks.NewMockTokenWriter(mockCtrl)

		w.EXPECT().WriteNull().Return(nil).Times(1)

		e := token.NewEncoder(w, converters.Default()...)
		require.NoError(t, e.Encode((*converters.BSONObjectID)(nil)))
	})

	t.Run("wrapped identifier is re-encoded", func(t *testing.T) {
		var buf bytes.Buffer
		sw := bsonw.NewStreamWriter(&buf, bsonw.DefaultSettings())
		a := adapter.New(sw)

		e := token.NewEncoder(a, converters.Default()...)
		require.NoError(t, e.Encode(token.Document{
			{Name: "id", Value: converters.NewBSONObjectID(testID)},
			{Name: "missing", Value: (*converters.BSONObjectID)(nil)},
		}))
		require.NoError(t, sw.Flush())

		doc := bson.Raw(buf.Bytes())
		require.NoError(t, doc.Validate())
		assert.Equal(t, testID, doc.Lookup("id").ObjectID())
		assert.Equal(t, bson.TypeNull, doc.Lookup("missing").Type)
	})
}

func TestReadObjectID(t *testing.T) {
	tests := map[string]struct {
		in   any
		want any
		err  bool
	}{
		"nil":        {in: nil, want: nil},
		"object id":  {in: testID, want: testID},
		"hex string": {in: testID.Hex(), want: testID},
		"bad hex":    {in: "zz", err: true},
		"wrong type": {in: 42, err: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := converters.ObjectIDConverter.ReadValue(test.in)
			if test.err {
				require.ErrorIs(t, err, converters.ErrNotObjectID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestReadBSONObjectID(t *testing.T) {
	t.Run("nil is not wrapped", func(t *testing.T) {
		got, err := converters.BSONObjectIDConverter.ReadValue(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("identifier is wrapped", func(t *testing.T) {
		got, err := converters.BSONObjectIDConverter.ReadValue(testID)
		require.NoError(t, err)
		require.IsType(t, &converters.BSONObjectID{}, got)
		assert.True(t, converters.NewBSONObjectID(testID).Equal(got.(*converters.BSONObjectID)))
	})

	t.Run("hex string is wrapped", func(t *testing.T) {
		got, err := converters.BSONObjectIDConverter.ReadValue(testID.Hex())
		require.NoError(t, err)
		assert.Equal(t, testID, got.(*converters.BSONObjectID).Value())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := converters.BSONObjectIDConverter.ReadValue(3.5)
		require.ErrorIs(t, err, converters.ErrNotObjectID)
	})
}
