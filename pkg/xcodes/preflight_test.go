package xcodes

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathOf(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/local/bin/" + name, nil
			}
		}
		return "", stderrors.New("executable file not found in $PATH")
	}
}

func TestPreflight(t *testing.T) {
	tests := []struct {
		name         string
		binary       string
		env          Environment
		wantCode     errors.ErrorCode
		wantWarnings int
	}{
		{
			name:   "macOS with everything",
			binary: "xcodes",
			env:    Environment{GOOS: "darwin", LookPath: lookPathOf("xcodes", "aria2c")},
		},
		{
			name:         "missing aria2c warns",
			binary:       "",
			env:          Environment{GOOS: "darwin", LookPath: lookPathOf("xcodes")},
			wantWarnings: 1,
		},
		{
			name:     "missing xcodes fails",
			binary:   "xcodes",
			env:      Environment{GOOS: "darwin", LookPath: lookPathOf("aria2c")},
			wantCode: errors.ErrPreflight,
		},
		{
			name:     "linux fails",
			binary:   "xcodes",
			env:      Environment{GOOS: "linux", LookPath: lookPathOf("xcodes", "aria2c")},
			wantCode: errors.ErrPreflight,
		},
		{
			name:   "explicit path skips platform check",
			binary: "/tmp/fake-xcodes",
			env:    Environment{GOOS: "linux", LookPath: lookPathOf("/tmp/fake-xcodes", "aria2c")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := preflight(tt.binary, tt.env)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}
