package benv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput []string
		wantErr        bool
		expectedErr    string
	}{
		{
			name: "no argument lists every topic",
			args: []string{"docs"},
			expectedOutput: []string{
				"Available topics:",
				"items",
				"profiles",
				"quoting",
				"theming",
				"variables",
				"Use 'benv docs <topic>' to read one.",
			},
		},
		{
			name: "topic renders its content",
			args: []string{"docs", "variables"},
			expectedOutput: []string{
				"Variables",
				"CPLUS_INCLUDE_PATH",
				"LDFLAGS",
				"GCC_EXEC_PREFIX",
			},
		},
		{
			name:        "unknown topic",
			args:        []string{"docs", "frobnicate"},
			wantErr:     true,
			expectedErr: "unknown topic: frobnicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)

			var cmdErr error
			output, err := captureOutput(func() {
				cmd := NewRootCmd()
				cmd.SetArgs(tt.args)
				cmdErr = cmd.Execute()
			})
			require.NoError(t, err, "Failed to capture output")

			if tt.wantErr {
				require.Error(t, cmdErr)
				assert.Contains(t, fmt.Sprintf("%v", cmdErr), tt.expectedErr)
				return
			}

			require.NoError(t, cmdErr)
			for _, expected := range tt.expectedOutput {
				assert.Contains(t, output, expected,
					"Expected output to contain %q, but got:\n%s", expected, output)
			}
		})
	}
}
