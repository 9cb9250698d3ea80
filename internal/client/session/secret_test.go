package session

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateSecret_ShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "", truncateSecret(""))
	assert.Equal(t, "hunter2", truncateSecret("hunter2"))

	exact := strings.Repeat("a", maxSecretBytes)
	assert.Equal(t, exact, truncateSecret(exact))
}

func TestTruncateSecret_ASCIICutsAtLimit(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := truncateSecret(long)
	assert.Len(t, got, maxSecretBytes)
}

func TestTruncateSecret_MultiByteNeverSplit(t *testing.T) {
	// 80 four-byte runes: 320 bytes encoded. 72 is divisible by 4, so the
	// cut lands exactly between runes here.
	emoji := strings.Repeat("\U0001F527", 80)
	got := truncateSecret(emoji)
	assert.LessOrEqual(t, len(got), maxSecretBytes)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, 72, len(got))

	// Misaligned case: 2 ASCII bytes then three-byte runes. 72 is not on a
	// rune boundary (2+23*3 = 71, next boundary 74), so the cut must back
	// up to 71.
	s := "ab" + strings.Repeat("€", 30)
	got = truncateSecret(s)
	require.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), maxSecretBytes)
	assert.Equal(t, 71, len(got))
}
