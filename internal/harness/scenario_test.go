package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_AllTestdataFilesParse(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			s, err := LoadScenario(f)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Name)
			assert.NotEmpty(t, s.Input)
		})
	}
}

func TestLoadScenario_Fields(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/duplicate_ids_legacy.yaml")
	require.NoError(t, err)

	assert.Equal(t, "duplicate_ids_legacy", s.Name)
	assert.True(t, s.AllowDuplicateIDs)
	require.NotNil(t, s.HeaderSpacing)
	assert.Equal(t, 2, *s.HeaderSpacing)
	assert.Len(t, s.Assertions, 3)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertion: []\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			yaml:    "description: b\ninput: [\"5\"]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: a\ninput: [\"5\"]\n",
			wantErr: "description is required",
		},
		{
			name:    "empty input",
			yaml:    "name: a\ndescription: b\ninput: []\n",
			wantErr: "input list is required",
		},
		{
			name:    "negative spacing",
			yaml:    "name: a\ndescription: b\nheader_spacing: -1\ninput: [\"5\"]\n",
			wantErr: "header_spacing must be non-negative",
		},
		{
			name:    "assertion without type",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - text: x\n",
			wantErr: "type is required",
		},
		{
			name:    "unknown assertion type",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: nope\n",
			wantErr: "unknown assertion type",
		},
		{
			name:    "output_contains without text",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: output_contains\n",
			wantErr: "text is required",
		},
		{
			name:    "output_order without texts",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: output_order\n",
			wantErr: "texts list is required",
		},
		{
			name:    "final_state without id",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: final_state\n    expect: {name: x}\n",
			wantErr: "id is required",
		},
		{
			name:    "final_state unknown key",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: final_state\n    id: E1\n    expect: {title: x}\n",
			wantErr: "unknown final_state key",
		},
		{
			name:    "record_absent without id",
			yaml:    "name: a\ndescription: b\ninput: [\"5\"]\nassertions:\n  - type: record_absent\n",
			wantErr: "id is required for record_absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_FromTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	content := "name: quick\ndescription: exit at once\ninput:\n  - \"5\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, s.Input)
	assert.Nil(t, s.HeaderSpacing)
}
