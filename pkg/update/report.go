package update

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/versions"
)

// Stage is a step of a run.
type Stage int

const (
	StageStart Stage = iota
	StageListed
	StageSelected
	StageInstalled
	StageLinked
	StageRetained
	StageDone
)

var stageNames = map[Stage]string{
	StageStart:     "start",
	StageListed:    "listed",
	StageSelected:  "selected",
	StageInstalled: "installed",
	StageLinked:    "linked",
	StageRetained:  "retained",
	StageDone:      "done",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Report is the outcome of a run. Everything listed happened (or, for a
// dry run, would happen) even when the run failed part way.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool
	// Stage is the last stage completed.
	Stage Stage

	Installed []versions.Version
	Linked    map[links.Name]versions.Version
	Deleted   []versions.Version

	// PendingDeletions is the deletion set computed by retention. With
	// skip-delete it is reported but left on disk.
	PendingDeletions []versions.Version
	// Plan holds the link targets of the run.
	Plan links.Plan

	Warnings []string
	Errors   []error
}

func newReport(dryRun bool, now time.Time) *Report {
	return &Report{
		StartedAt: now,
		DryRun:    dryRun,
		Stage:     StageStart,
		Linked:    map[links.Name]versions.Version{},
	}
}

// Failed reports whether a stage failed.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Err returns the first error of the run, nil on success.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// SkipWarning is the report line for an identifier that failed to parse.
func SkipWarning(err error) string {
	if raw, ok := errors.GetErrorDetails(err)["raw"].(string); ok {
		return "skipped unrecognised version " + strconv.Quote(raw)
	}
	return err.Error()
}

// Changed reports whether the run installed, linked or deleted anything.
func (r *Report) Changed() bool {
	return len(r.Installed) > 0 || len(r.Linked) > 0 || len(r.Deleted) > 0
}

// Skipped returns the deletions computed but not carried out.
func (r *Report) Skipped() []versions.Version {
	if len(r.Deleted) == len(r.PendingDeletions) {
		return nil
	}
	var out []versions.Version
	for _, v := range r.PendingDeletions {
		if !containsVersion(r.Deleted, v) {
			out = append(out, v)
		}
	}
	return out
}

type reportError struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

type reportJSON struct {
	StartedAt        time.Time                       `json:"started_at"`
	FinishedAt       time.Time                       `json:"finished_at"`
	DryRun           bool                            `json:"dry_run"`
	Stage            Stage                           `json:"stage"`
	Installed        []versions.Version              `json:"installed"`
	Linked           map[links.Name]versions.Version `json:"linked"`
	Deleted          []versions.Version              `json:"deleted"`
	PendingDeletions []versions.Version              `json:"pending_deletions"`
	Warnings         []string                        `json:"warnings,omitempty"`
	Errors           []reportError                   `json:"errors,omitempty"`
}

// MarshalJSON encodes the report with errors flattened to code and message.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		DryRun:           r.DryRun,
		Stage:            r.Stage,
		Installed:        nonNil(r.Installed),
		Linked:           r.Linked,
		Deleted:          nonNil(r.Deleted),
		PendingDeletions: nonNil(r.PendingDeletions),
		Warnings:         r.Warnings,
	}
	for _, err := range r.Errors {
		out.Errors = append(out.Errors, reportError{
			Code:    errors.GetErrorCode(err),
			Message: err.Error(),
		})
	}
	return json.Marshal(out)
}

func nonNil(vs []versions.Version) []versions.Version {
	if vs == nil {
		return []versions.Version{}
	}
	return vs
}

func containsVersion(vs []versions.Version, v versions.Version) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}
