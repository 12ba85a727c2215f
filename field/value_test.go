package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-inetheader/field"
)

func TestNewValue_TrimsWSP(t *testing.T) {
	t.Parallel()

	v := field.NewValue("  \tHello, World!\t  ")
	assert.Equal(t, "Hello, World!", v.String())
}

func TestSplitValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{}, field.SplitValues(""))
	assert.Equal(t, []string{"en"}, field.SplitValues("en"))
	assert.Equal(t, []string{"en", " mi"}, field.SplitValues("en, mi"))
}

func TestJoinValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a,b,c", field.JoinValues([]string{"a", "b", "c"}))
	assert.Equal(t, "", field.JoinValues(nil))
}
