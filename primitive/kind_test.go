package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"type-parser/primitive"
)

func Example() {
	type Celsius float64
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeFor[int]()))
	fmt.Println(primitive.FromReflectType(reflect.TypeFor[time.Duration]()))
	fmt.Println(primitive.FromReflectType(reflect.TypeFor[Celsius]()))
	fmt.Println(primitive.FromReflectType(reflect.TypeFor[Empty]()))
	fmt.Println(primitive.FromReflectKind(reflect.TypeFor[Celsius]().Kind()))
	fmt.Println(primitive.KindUint16.Type())
	// Output:
	// KindInt
	// KindDuration
	// KindEnum(0)
	// KindEnum(0)
	// KindFloat64 true
	// uint16
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := primitive.Kinds()
	assert.Len(t, kinds, primitive.KindTotal-1)

	for _, k := range kinds {
		assert.Equal(t, k, primitive.FromReflectType(k.Type()), "%s", k)
	}

	_, ok := primitive.FromReflectKind(reflect.Struct)
	assert.False(t, ok)

	k, ok := primitive.FromReflectKind(reflect.Uint8)
	assert.True(t, ok)
	assert.Equal(t, primitive.KindUint8, k)
}
