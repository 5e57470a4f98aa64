package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const passingScenario = `name: view_empty
description: "Listing with no records"
input:
  - "2"
  - "5"
assertions:
  - type: output_contains
    text: "No employees found."
  - type: record_count
    count: 0
`

const failingScenario = `name: wrong_count
description: "Expects a record that was never added"
input:
  - "5"
assertions:
  - type: record_count
    count: 1
`

const addScenario = `name: add_one
description: "Adds a single employee"
input:
  - "1"
  - "E1"
  - "Ann"
  - "1000"
  - "5"
assertions:
  - type: final_state
    id: "E1"
    expect:
      name: "Ann"
`

// writeFile writes content under dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
