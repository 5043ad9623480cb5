package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(6)
	assert.NoError(t, err)
	assert.Equal(t, 6, len(code))

	code2, err := Generate(6)
	assert.NoError(t, err)
	assert.NotEqual(t, code, code2)

	long, err := Generate(40)
	assert.NoError(t, err)
	assert.Equal(t, 40, len(long))
}
