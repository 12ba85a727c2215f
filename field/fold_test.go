package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-inetheader/field"
)

func TestFoldEncoding_NoLimitPassesThrough(t *testing.T) {
	t.Parallel()

	fe := field.NewFoldEncoding(0)
	line := []byte("X: Hello, World!\r\n")
	parts, err := fe.Fold(line)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{line}, parts)
}

func TestFoldEncoding_BreaksAtLastFittingWSP(t *testing.T) {
	t.Parallel()

	fe := field.NewFoldEncoding(12)
	parts, err := fe.Fold([]byte("X: Hello, World!\r\n"))
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "X: Hello,\r\n", string(parts[0]))
	assert.Equal(t, " World!\r\n", string(parts[1]))
}

func TestFoldEncoding_FailsClosedWithNoWhitespace(t *testing.T) {
	t.Parallel()

	fe := field.NewFoldEncoding(12)
	_, err := fe.Fold([]byte("X: aaadadazdadcvbfdfvdf\r\n"))
	assert.ErrorIs(t, err, field.ErrFoldingImpossible)
}

func TestFoldEncoding_BreaksAtWindowBoundary(t *testing.T) {
	t.Parallel()

	fe := field.NewFoldEncoding(12)
	parts, err := fe.Fold([]byte("X: This is even longer!\r\n"))
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "X: This is\r\n", string(parts[0]))
	assert.Equal(t, " even\r\n", string(parts[1]))
	assert.Equal(t, " longer!\r\n", string(parts[2]))
}

func TestFoldEncoding_FirstPartNeedsASecondWhitespaceToBreak(t *testing.T) {
	t.Parallel()

	// The first window here holds exactly one SP/HT (the one right after
	// the colon): the first part's scan treats that one as sacrificial
	// rather than a usable break point, so folding fails even though a
	// naive "last whitespace in window" search would happily break there.
	fe := field.NewFoldEncoding(12)
	_, err := fe.Fold([]byte("X: aaaaaaaaa bbbbbbbbbb\r\n"))
	assert.ErrorIs(t, err, field.ErrFoldingImpossible)
}

func TestFoldEncoding_RemainderFitsAsIs(t *testing.T) {
	t.Parallel()

	fe := field.NewFoldEncoding(80)
	line := []byte("Host: www.example.com\r\n")
	parts, err := fe.Fold(line)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{line}, parts)
}

func TestUnfold_StripsCRLFOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("This is a test"), field.Unfold([]byte("This\r\n is\r\n a test")))
}
