package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		" error ": zerolog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_WritesToFile(t *testing.T) {
	buf := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "staffbook.log")
	l, err := New(Options{Level: "info", Writer: buf, File: path})
	require.NoError(t, err)

	l.Info().Str("id", "E1").Msg("record added")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"E1"`)
	assert.Contains(t, buf.String(), "record added")
}

func TestNew_BadFile(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestWithSession_TagsLines(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	ctx := WithSession(context.Background(), l.Logger, "s-1")
	FromContext(ctx).Debug().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "s-1", line["session"])
	assert.Equal(t, "hello", line["message"])
}

func TestFromContext_Empty(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestClose_WithoutFileIsSafe(t *testing.T) {
	l, err := New(Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.NoError(t, l.Close())

	l = nil
	assert.NoError(t, l.Close())
}
