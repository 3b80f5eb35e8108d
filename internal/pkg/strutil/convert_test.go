//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 42, ConvertToInt("42"))
	assert.Equal(t, -7, ConvertToInt("-7"))
	assert.Equal(t, 0, ConvertToInt("not-a-number"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestConvertToInt64(t *testing.T) {
	assert.Equal(t, int64(9000000000), ConvertToInt64("9000000000"))
	assert.Equal(t, int64(0), ConvertToInt64("4.5"))
}

func TestConvertToBool(t *testing.T) {
	assert.True(t, ConvertToBool("true"))
	assert.True(t, ConvertToBool("1"))
	assert.False(t, ConvertToBool("false"))
	assert.False(t, ConvertToBool("maybe"))
}
