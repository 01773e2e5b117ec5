package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/stretchr/testify/require"
)

// fakeXcodes answers xcodes invocations from memory and installs versions
// as empty bundle directories.
type fakeXcodes struct {
	t   *testing.T
	dir string

	available []string
	installed []string

	calls [][]string
	fail  map[string]error
}

func (f *fakeXcodes) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if err := f.fail[args[0]]; err != nil {
		return nil, err
	}
	var b strings.Builder
	switch args[0] {
	case "list":
		for _, id := range f.available {
			b.WriteString(id + "\n")
		}
	case "installed":
		for _, id := range f.installed {
			fmt.Fprintf(&b, "%s\t%s\n", id, f.bundle(id))
		}
	default:
		return nil, fmt.Errorf("unexpected xcodes %s", args[0])
	}
	return []byte(b.String()), nil
}

func (f *fakeXcodes) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, args)
	if err := f.fail[args[0]]; err != nil {
		return err
	}
	switch args[0] {
	case "install":
		for _, id := range f.available {
			if versions.MustParse(id).Identifier() == args[1] {
				f.add(id)
				return nil
			}
		}
		return fmt.Errorf("unknown version %s", args[1])
	case "uninstall":
		for i, id := range f.installed {
			if versions.MustParse(id).Identifier() == args[1] {
				require.NoError(f.t, os.RemoveAll(f.bundle(id)))
				f.installed = append(f.installed[:i], f.installed[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%s is not installed", args[1])
	}
	return fmt.Errorf("unexpected xcodes %s", args[0])
}

func (f *fakeXcodes) add(id string) {
	require.NoError(f.t, os.MkdirAll(f.bundle(id), 0755))
	f.installed = append(f.installed, id)
}

func (f *fakeXcodes) bundle(id string) string {
	return filepath.Join(f.dir, xcodes.BundleName(versions.MustParse(id)))
}

func (f *fakeXcodes) commands(verb string) []string {
	var out []string
	for _, c := range f.calls {
		if c[0] == verb {
			out = append(out, c[1])
		}
	}
	return out
}

// env isolates configuration, state and links under a temporary directory.
type env struct {
	t      *testing.T
	root   string
	apps   string
	xcodes *fakeXcodes

	preflightWarnings []string
	preflightErr      error
}

func newEnv(t *testing.T) *env {
	root := t.TempDir()
	apps := filepath.Join(root, "Applications")
	require.NoError(t, os.MkdirAll(apps, 0755))

	t.Setenv("XCUPDATE_CONFIG_DIR", filepath.Join(root, "config"))
	t.Setenv("XCUPDATE_STATE_DIR", filepath.Join(root, "state"))
	t.Setenv("XCUPDATE_LINKS_DIRECTORY", apps)
	t.Setenv("XCUPDATE_STYLES", "")
	t.Setenv("NO_COLOR", "1")

	return &env{
		t:      t,
		root:   root,
		apps:   apps,
		xcodes: &fakeXcodes{t: t, dir: apps, fail: map[string]error{}},
	}
}

func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	root := newRootCmd(Dependencies{
		Runner: e.xcodes,
		Preflight: func(string) ([]string, error) {
			return e.preflightWarnings, e.preflightErr
		},
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (e *env) link(name string) string {
	e.t.Helper()
	target, err := os.Readlink(filepath.Join(e.apps, name))
	require.NoError(e.t, err)
	return target
}

var _ xcodes.Runner = (*fakeXcodes)(nil)
