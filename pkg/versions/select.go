package versions

// Latest returns the newest version on the given track, or nil when the
// track has no versions.
func Latest(vs []Version, track Track) *Version {
	var best *Version
	for i := range vs {
		if vs[i].Track() != track {
			continue
		}
		if best == nil || Compare(vs[i], *best) > 0 {
			v := vs[i]
			best = &v
		}
	}
	return best
}

// Filter returns the versions on the given track, preserving input order.
func Filter(vs []Version, track Track) []Version {
	var out []Version
	for _, v := range vs {
		if v.Track() == track {
			out = append(out, v)
		}
	}
	return out
}
