package undent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Fixture tests run the full pipeline end to end against the cases in
// testdata/format_cases.yaml. Each case holds an input literal, an
// optional configuration, optional substitution values, and the
// expected output.

type fixtureCase struct {
	Name       string `yaml:"name"`
	Input      string `yaml:"input"`
	Indent     int    `yaml:"indent"`
	IndentChar string `yaml:"indent_char"`
	Newline    string `yaml:"newline"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	Values     []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	} `yaml:"values"`
	Want string `yaml:"want"`
}

func TestFormat_Fixtures(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "format_cases.yaml"))
	require.NoError(t, err)

	var cases []fixtureCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			opts := New().WithIndent(tc.Indent)
			if tc.IndentChar != "" {
				opts.WithIndentChar([]rune(tc.IndentChar)[0])
			}
			if tc.Newline != "" {
				opts.WithNewline(tc.Newline)
			}
			if tc.Start != "" || tc.End != "" {
				opts.WithDelimiters(tc.Start, tc.End)
			}

			values := make([]Value, len(tc.Values))
			for i, v := range tc.Values {
				values[i] = Value{Key: v.Key, Value: v.Value}
			}

			assert.Equal(t, tc.Want, opts.FormatValues(tc.Input, values...))
		})
	}
}
