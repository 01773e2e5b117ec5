package versions

// InstalledSet holds the versions present on disk, partitioned by track.
// Adding a version that compares equal to a member is a no-op.
type InstalledSet struct {
	byTrack map[Track][]Version
}

// NewInstalledSet builds a set from the given versions, dropping duplicates.
func NewInstalledSet(vs ...Version) *InstalledSet {
	s := &InstalledSet{byTrack: make(map[Track][]Version)}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *InstalledSet) Add(v Version) bool {
	if s.byTrack == nil {
		s.byTrack = make(map[Track][]Version)
	}
	if s.Contains(v) {
		return false
	}
	s.byTrack[v.Track()] = append(s.byTrack[v.Track()], v)
	return true
}

// Contains reports whether a version equal to v is in the set.
func (s *InstalledSet) Contains(v Version) bool {
	for _, member := range s.byTrack[v.Track()] {
		if member.Equal(v) {
			return true
		}
	}
	return false
}

// Track returns the members of one track, newest first.
func (s *InstalledSet) Track(t Track) []Version {
	out := append([]Version(nil), s.byTrack[t]...)
	SortDescending(out)
	return out
}

// Latest returns the newest member of a track, or nil.
func (s *InstalledSet) Latest(t Track) *Version {
	return Latest(s.byTrack[t], t)
}

// All returns every member, newest first.
func (s *InstalledSet) All() []Version {
	var out []Version
	for _, t := range Tracks {
		out = append(out, s.byTrack[t]...)
	}
	SortDescending(out)
	return out
}

// Len returns the number of members.
func (s *InstalledSet) Len() int {
	n := 0
	for _, vs := range s.byTrack {
		n += len(vs)
	}
	return n
}
