package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualNumbers(t *testing.T) {
	assert := assert.New(t)

	assert.True(Equal(NumberVal(1), NumberVal(1)))
	assert.True(Equal(NumberVal(1), NumberVal(1.00005)), "difference below epsilon")
	assert.True(Equal(NumberVal(-2.5), NumberVal(-2.5)))

	assert.False(Equal(NumberVal(1), NumberVal(1.001)))
	assert.False(Equal(NumberVal(0), NumberVal(1)))
}

func TestEqualStringsAndBools(t *testing.T) {
	assert := assert.New(t)

	assert.True(Equal(StringVal("abc"), StringVal("abc")))
	assert.False(Equal(StringVal("abc"), StringVal("abd")))
	assert.False(Equal(StringVal(""), StringVal(" ")))

	assert.True(Equal(BoolVal(true), BoolVal(true)))
	assert.False(Equal(BoolVal(true), BoolVal(false)))

	assert.True(Equal(NilVal{}, NilVal{}))
}

func TestEqualCrossTypeNeverEqual(t *testing.T) {
	assert := assert.New(t)

	assert.False(Equal(NumberVal(1), StringVal("1")))
	assert.False(Equal(BoolVal(true), StringVal("true")))
	assert.False(Equal(BoolVal(false), NilVal{}))
	assert.False(Equal(NumberVal(0), NilVal{}))
	assert.False(Equal(NumberVal(0), BoolVal(false)))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1", NumberVal(1).String())
	assert.Equal("2.5", NumberVal(2.5).String())
	assert.Equal("-0.5", NumberVal(-0.5).String())
	assert.Equal("hello", StringVal("hello").String())
	assert.Equal("true", BoolVal(true).String())
	assert.Equal("false", BoolVal(false).String())
	assert.Equal("nil", NilVal{}.String())
}

func TestTypeName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("number", NumberVal(0).TypeName())
	assert.Equal("string", StringVal("").TypeName())
	assert.Equal("boolean", BoolVal(false).TypeName())
	assert.Equal("nil", NilVal{}.TypeName())
}
