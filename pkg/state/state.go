package state

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/types"
	"github.com/arthur-debert/xcupdate/pkg/update"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/pelletier/go-toml/v2"
)

// Record is the persisted summary of a run.
type Record struct {
	StartedAt  time.Time         `toml:"started_at" json:"started_at"`
	FinishedAt time.Time         `toml:"finished_at" json:"finished_at"`
	Stage      string            `toml:"stage" json:"stage"`
	Installed  []string          `toml:"installed" json:"installed"`
	Linked     map[string]string `toml:"linked" json:"linked"`
	Deleted    []string          `toml:"deleted" json:"deleted"`
	Skipped    []string          `toml:"skipped" json:"skipped"`
	Errors     []string          `toml:"errors" json:"errors"`
	Version    string            `toml:"xcupdate_version" json:"xcupdate_version"`
}

// Succeeded reports whether the recorded run finished without errors.
func (r Record) Succeeded() bool {
	return len(r.Errors) == 0
}

// FromReport summarises a report. appVersion is the xcupdate build that
// produced it.
func FromReport(report *update.Report, appVersion string) Record {
	rec := Record{
		StartedAt:  report.StartedAt.UTC().Truncate(time.Second),
		FinishedAt: report.FinishedAt.UTC().Truncate(time.Second),
		Stage:      report.Stage.String(),
		Installed:  strs(report.Installed),
		Linked:     map[string]string{},
		Deleted:    strs(report.Deleted),
		Skipped:    strs(report.Skipped()),
		Errors:     []string{},
		Version:    appVersion,
	}
	for name, v := range report.Linked {
		rec.Linked[string(name)] = v.String()
	}
	for _, err := range report.Errors {
		rec.Errors = append(rec.Errors, err.Error())
	}
	return rec
}

func strs(vs []versions.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}
	return out
}

// Store reads and writes the record file.
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a store for the record at path.
func NewStore(fsys types.FS, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the record location.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the record.
func (s *Store) Save(rec Record) error {
	data, err := toml.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, errors.ErrState, "failed to encode run record")
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrState, "failed to create %s", filepath.Dir(s.path))
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrState, "failed to write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrState, "failed to replace %s", s.path)
	}
	return nil
}

// Load returns the saved record, or nil when no run was recorded yet.
func (s *Store) Load() (*Record, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrState, "failed to read %s", s.path)
	}

	var rec Record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, errors.ErrState, "failed to decode %s", s.path).
			WithDetail("path", s.path)
	}
	return &rec, nil
}
