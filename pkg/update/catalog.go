package update

import (
	"path/filepath"

	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
)

// Catalog indexes installed versions by bundle path. It is the
// links.Locator used while applying links.
type Catalog struct {
	entries []catalogEntry
}

type catalogEntry struct {
	version versions.Version
	path    string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add records v at path. Adding a version twice keeps the first path.
func (c *Catalog) Add(v versions.Version, path string) {
	for _, e := range c.entries {
		if e.version.Equal(v) {
			return
		}
	}
	if path != "" {
		path = filepath.Clean(path)
	}
	c.entries = append(c.entries, catalogEntry{version: v, path: path})
}

// PathOf returns the bundle path of v.
func (c *Catalog) PathOf(v versions.Version) (string, bool) {
	for _, e := range c.entries {
		if e.version.Equal(v) && e.path != "" {
			return e.path, true
		}
	}
	return "", false
}

// VersionAt returns the version installed at path.
func (c *Catalog) VersionAt(path string) (versions.Version, bool) {
	path = filepath.Clean(path)
	for _, e := range c.entries {
		if e.path != "" && e.path == path {
			return e.version, true
		}
	}
	return versions.Version{}, false
}

// Set returns the catalogued versions.
func (c *Catalog) Set() *versions.InstalledSet {
	set := versions.NewInstalledSet()
	for _, e := range c.entries {
		set.Add(e.version)
	}
	return set
}

// CatalogOf indexes the installations xcodes reported. Entries whose
// identifier does not parse are left out and returned as ErrParse errors,
// keyed by the raw identifier.
func CatalogOf(found []xcodes.Installation) (*Catalog, map[string]error) {
	catalog := NewCatalog()
	var skipped map[string]error
	for _, inst := range found {
		v, err := versions.Parse(inst.Identifier)
		if err != nil {
			if skipped == nil {
				skipped = map[string]error{}
			}
			skipped[inst.Identifier] = err
			continue
		}
		catalog.Add(v, inst.Path)
	}
	return catalog, skipped
}
