package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-inetheader/field"
)

func TestName_Equal(t *testing.T) {
	t.Parallel()

	a := field.NewName("Content-Type")
	b := field.NewName("content-type")
	c := field.NewName("Content-Length")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
}

func TestName_PreservesCase(t *testing.T) {
	t.Parallel()

	n := field.NewName("ETag")
	assert.Equal(t, "ETag", n.String())
	assert.Equal(t, []byte("ETag"), n.Bytes())
}

func TestName_ValidBytes(t *testing.T) {
	t.Parallel()

	assert.True(t, field.ValidBytes([]byte("Via")))
	assert.True(t, field.ValidBytes([]byte("")))
	assert.False(t, field.ValidBytes([]byte("Vi a")))
	assert.False(t, field.ValidBytes([]byte("Vi\x00a")))
}

func TestName_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, field.NewName("").IsEmpty())
	assert.False(t, field.NewName("X").IsEmpty())
}
