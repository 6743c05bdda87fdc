package info

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInfo = `
format_version: 1
welcome_message: hi
final_message: bye
exercises:
  - name: intro1
    dir: 00_intro
    hint: just press n
  - name: tests1
    dir: 01_tests
    test: true
    strict_vet: true
    hint: read the failing assertion
`

func TestParse_Valid(t *testing.T) {
	f, err := Parse([]byte(validInfo))
	require.NoError(t, err)

	require.Len(t, f.Exercises, 2)
	assert.Equal(t, "hi", f.WelcomeMessage)
	assert.Equal(t, "bye", f.FinalMessage)
	assert.False(t, f.Official)

	tests1 := f.Exercises[1]
	assert.True(t, tests1.Test)
	assert.True(t, tests1.StrictVet)
	assert.Equal(t, filepath.Join("exercises", "01_tests", "tests1_test.go"), tests1.Path("exercises"))
	assert.Equal(t, filepath.Join("solutions", "00_intro", "intro1.go"), f.Exercises[0].SolutionPath("solutions"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "no exercises",
			input:   "format_version: 1\nexercises: []\n",
			wantErr: ErrNoExercises,
		},
		{
			name:    "newer format",
			input:   "format_version: 2\nexercises:\n  - name: a\n    hint: h\n",
			wantErr: ErrFormatVersion,
		},
		{
			name:  "missing hint",
			input: "format_version: 1\nexercises:\n  - name: a\n",
		},
		{
			name:  "bad name",
			input: "format_version: 1\nexercises:\n  - name: \"a/b\"\n    hint: h\n",
		},
		{
			name:  "unknown field",
			input: "format_version: 1\nexercises:\n  - name: a\n    hint: h\n    timeout: 3\n",
		},
		{
			name:  "duplicate names",
			input: "format_version: 1\nexercises:\n  - name: a\n    hint: h\n  - name: a\n    hint: h\n",
		},
		{
			name:  "not yaml",
			input: "format_version: [1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FallsBackToOfficial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.yaml")

	f, err := Load(path, []byte(validInfo))
	require.NoError(t, err)
	assert.True(t, f.Official)
}

func TestLoad_CommunityFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.yaml")
	community := "format_version: 1\nexercises:\n  - name: only\n    hint: none\n"
	require.NoError(t, os.WriteFile(path, []byte(community), 0o644))

	f, err := Load(path, []byte(validInfo))
	require.NoError(t, err)
	assert.False(t, f.Official)
	require.Len(t, f.Exercises, 1)
	assert.Equal(t, "only", f.Exercises[0].Name)
}
