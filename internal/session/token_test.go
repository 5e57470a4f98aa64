package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7Generator_Format(t *testing.T) {
	gen := UUIDv7Generator{}
	token := gen.Generate()

	assert.Len(t, token, 36)
	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	gen := UUIDv7Generator{}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := gen.Generate()
		assert.False(t, seen[token], "duplicate token %s", token)
		seen[token] = true
	}
}

func TestFixedGenerator_SingleTokenRepeats(t *testing.T) {
	gen := NewFixedGenerator("s-1")

	assert.Equal(t, "s-1", gen.Generate())
	assert.Equal(t, "s-1", gen.Generate())
}

func TestFixedGenerator_DefaultToken(t *testing.T) {
	gen := NewFixedGenerator()
	assert.Equal(t, DefaultToken, gen.Generate())
}

func TestFixedGenerator_SequenceThenPanic(t *testing.T) {
	gen := NewFixedGenerator("s-1", "s-2")

	assert.Equal(t, "s-1", gen.Generate())
	assert.Equal(t, "s-2", gen.Generate())
	assert.PanicsWithValue(t, "FixedGenerator: all tokens exhausted", func() {
		gen.Generate()
	})
}

func TestGenerators_ImplementInterface(t *testing.T) {
	var _ TokenGenerator = UUIDv7Generator{}
	var _ TokenGenerator = NewFixedGenerator()
}
