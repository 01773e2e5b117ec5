package update

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/filesystem"
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/stretchr/testify/require"
)

// fakeToolchains installs versions as empty bundle directories.
type fakeToolchains struct {
	t   *testing.T
	dir string

	available []string
	installed []xcodes.Installation

	installs   []string
	uninstalls []string

	listAvailableErr error
	listInstalledErr error
	installErr       error
	uninstallErr     error

	// afterUninstall runs once a version is gone, standing in for
	// whatever else touches the links while xcodes works.
	afterUninstall func(v versions.Version)
}

func newFakeToolchains(t *testing.T, dir string) *fakeToolchains {
	return &fakeToolchains{t: t, dir: dir}
}

func (f *fakeToolchains) withAvailable(ids ...string) *fakeToolchains {
	f.available = append(f.available, ids...)
	return f
}

func (f *fakeToolchains) withInstalled(ids ...string) *fakeToolchains {
	for _, id := range ids {
		f.add(versions.MustParse(id))
	}
	return f
}

func (f *fakeToolchains) add(v versions.Version) string {
	path := filepath.Join(f.dir, xcodes.BundleName(v))
	require.NoError(f.t, os.MkdirAll(path, 0755))
	f.installed = append(f.installed, xcodes.Installation{Identifier: v.String(), Path: path})
	return path
}

func (f *fakeToolchains) pathOf(id string) string {
	return filepath.Join(f.dir, xcodes.BundleName(versions.MustParse(id)))
}

func (f *fakeToolchains) ListAvailable(ctx context.Context) ([]string, error) {
	if f.listAvailableErr != nil {
		return nil, f.listAvailableErr
	}
	return f.available, nil
}

func (f *fakeToolchains) ListInstalled(ctx context.Context) ([]xcodes.Installation, error) {
	if f.listInstalledErr != nil {
		return nil, f.listInstalledErr
	}
	return append([]xcodes.Installation(nil), f.installed...), nil
}

func (f *fakeToolchains) Install(ctx context.Context, v versions.Version) error {
	f.installs = append(f.installs, v.Identifier())
	if f.installErr != nil {
		return f.installErr
	}
	f.add(v)
	return nil
}

func (f *fakeToolchains) Uninstall(ctx context.Context, v versions.Version) error {
	f.uninstalls = append(f.uninstalls, v.Identifier())
	if f.uninstallErr != nil {
		return f.uninstallErr
	}
	kept := f.installed[:0]
	for _, inst := range f.installed {
		if versions.MustParse(inst.Identifier).Equal(v) {
			require.NoError(f.t, os.RemoveAll(inst.Path))
			continue
		}
		kept = append(kept, inst)
	}
	f.installed = kept
	if f.afterUninstall != nil {
		f.afterUninstall(v)
	}
	return nil
}

var linkNames = map[links.Name]string{
	links.StableLink: "Xcode.app",
	links.BetaLink:   "Xcode-beta.app",
}

type testEnv struct {
	dir     string
	fake    *fakeToolchains
	store   *links.Store
	updater *Updater
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	fake := newFakeToolchains(t, dir)
	store := links.NewStore(filesystem.NewOS(), dir, linkNames)
	return &testEnv{dir: dir, fake: fake, store: store, updater: New(fake, store)}
}

func (e *testEnv) link(t *testing.T, name links.Name, id string) {
	t.Helper()
	require.NoError(t, e.store.Write(name, e.fake.pathOf(id)))
}

// linked returns the identifier a link resolves to, "" when missing.
func (e *testEnv) linked(t *testing.T, name links.Name) string {
	t.Helper()
	target, err := e.store.Read(name)
	require.NoError(t, err)
	if target == "" {
		return ""
	}
	for _, inst := range e.fake.installed {
		if inst.Path == target {
			return versions.MustParse(inst.Identifier).Identifier()
		}
	}
	return target
}

func identifiers(vs []versions.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Identifier())
	}
	return out
}

func linkedIdentifiers(m map[links.Name]versions.Version) map[links.Name]string {
	out := map[links.Name]string{}
	for name, v := range m {
		out[name] = v.Identifier()
	}
	return out
}
