package xcodes

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/xcupdate/pkg/errors"
)

// Downloader is the optional accelerator xcodes uses for downloads.
const Downloader = "aria2c"

// Environment is what preflight inspects. The zero value is replaced by
// the running host.
type Environment struct {
	GOOS     string
	LookPath func(string) (string, error)
}

func hostEnvironment() Environment {
	return Environment{GOOS: runtime.GOOS, LookPath: exec.LookPath}
}

// Preflight verifies that an update can run on this host. It fails when
// not on macOS or when the xcodes binary cannot be found, and returns
// warnings for missing optional tools.
//
// An explicit binary path skips the platform check so the client can be
// pointed at a stand-in executable.
func Preflight(binary string) ([]string, error) {
	return preflight(binary, hostEnvironment())
}

func preflight(binary string, env Environment) ([]string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	explicit := filepath.IsAbs(binary)

	if env.GOOS != "darwin" && !explicit {
		return nil, errors.Newf(errors.ErrPreflight, "xcupdate manages Xcode and only runs on macOS (this is %s)", env.GOOS).
			WithDetail("goos", env.GOOS)
	}

	if _, err := env.LookPath(binary); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPreflight,
			"%s was not found; install it with `brew install xcodesorg/made/xcodes`", binary).
			WithDetail("binary", binary)
	}

	var warnings []string
	if _, err := env.LookPath(Downloader); err != nil {
		warnings = append(warnings,
			"aria2c is not installed; downloads will be much slower (brew install aria2)")
	}
	return warnings, nil
}
