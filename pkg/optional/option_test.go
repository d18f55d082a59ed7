package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_IsNone(t *testing.T) {
	assert.True(t, None[int]().IsNone())
	assert.False(t, Some(123).IsNone())
}

func TestOption_IsSome(t *testing.T) {
	assert.False(t, None[int]().IsSome())
	assert.True(t, Some(123).IsSome())
}

func TestOption_Unwrap(t *testing.T) {
	assert.Equal(t, "foo", Some("foo").Unwrap())
	assert.Equal(t, "", None[string]().Unwrap())
	assert.Nil(t, None[*string]().Unwrap())
}

func TestOption_Take(t *testing.T) {
	v, ok := Some(123).Take()
	assert.True(t, ok)
	assert.Equal(t, 123, v)

	v, ok = None[int]().Take()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestOption_TakeOr(t *testing.T) {
	v := Some(123).TakeOr(666)
	assert.Equal(t, 123, v)

	v = None[int]().TakeOr(666)
	assert.Equal(t, 666, v)
}

func TestOption_TakeOrElse(t *testing.T) {
	v := Some(123).TakeOrElse(func() int {
		return 666
	})
	assert.Equal(t, 123, v)

	v = None[int]().TakeOrElse(func() int {
		return 666
	})
	assert.Equal(t, 666, v)
}

func TestMap(t *testing.T) {
	o := Map(Some(2), func(v int) int { return v * 3 })
	assert.True(t, o.IsSome())
	assert.Equal(t, 6, o.Unwrap())

	o = Map(None[int](), func(v int) int { return v * 3 })
	assert.True(t, o.IsNone())
}
