package display

import (
	"sort"

	"github.com/arthur-debert/xcupdate/pkg/versions"
)

// Installed is an installed version and where it lives.
type Installed struct {
	Version versions.Version
	Path    string
}

// BuildList merges available and installed versions into per-track
// listings. linked maps link names to the version each points at.
func BuildList(available []versions.Version, installed []Installed, linked map[string]versions.Version) *ListResult {
	result := &ListResult{}
	for _, track := range versions.Tracks {
		var all []versions.Version
		paths := map[string]string{}
		for _, inst := range installed {
			if inst.Version.Track() == track {
				all = appendUnique(all, inst.Version)
				paths[inst.Version.String()] = inst.Path
			}
		}
		for _, v := range versions.Filter(available, track) {
			all = appendUnique(all, v)
		}
		versions.SortDescending(all)

		latest := versions.Latest(available, track)
		group := VersionGroup{Track: track.String(), Entries: []VersionEntry{}}
		for _, v := range all {
			entry := VersionEntry{
				Version:   v.String(),
				Track:     track.String(),
				Available: containsVersion(available, v),
				Latest:    latest != nil && latest.Equal(v),
			}
			for _, inst := range installed {
				if inst.Version.Equal(v) {
					entry.Installed = true
					entry.Path = inst.Path
				}
			}
			for _, name := range sortedNames(linked) {
				if linked[name].Equal(v) {
					entry.Links = append(entry.Links, name)
				}
			}
			group.Entries = append(group.Entries, entry)
		}
		result.Groups = append(result.Groups, group)
	}
	return result
}

func appendUnique(vs []versions.Version, v versions.Version) []versions.Version {
	if containsVersion(vs, v) {
		return vs
	}
	return append(vs, v)
}

func containsVersion(vs []versions.Version, v versions.Version) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

func sortedNames(m map[string]versions.Version) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
