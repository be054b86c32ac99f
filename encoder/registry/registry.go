// Package registry registers the BSON value types that CBOR input may carry
// as tagged items. Import it for its side effect.
package registry

import (
	"reflect"
	"sync"

	"github.com/NethermindEth/bsonbridge/encoder"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var once sync.Once

//nolint:gochecknoinits
func init() {
	once.Do(func() {
		types := []reflect.Type{
			// Tag 65536.
			reflect.TypeOf(primitive.ObjectID{}),
		}

		for _, t := range types {
			err := encoder.RegisterType(t)
			if err != nil {
				panic(err)
			}
		}
	})
}
