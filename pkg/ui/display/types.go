// Package display holds the view models the renderers draw. Commands build
// them from domain values so every output format shows the same facts.
package display

import (
	"github.com/arthur-debert/xcupdate/pkg/state"
	"github.com/arthur-debert/xcupdate/pkg/update"
)

// UpdateResult is the outcome of `update` or `plan`.
type UpdateResult struct {
	Command string         `json:"command"`
	Report  *update.Report `json:"report"`
}

// VersionEntry is one row of a version listing.
type VersionEntry struct {
	Version   string   `json:"version"`
	Track     string   `json:"track"`
	Available bool     `json:"available"`
	Installed bool     `json:"installed"`
	Latest    bool     `json:"latest"`
	Path      string   `json:"path,omitempty"`
	Links     []string `json:"links,omitempty"`
}

// VersionGroup is the listing of one track, newest first.
type VersionGroup struct {
	Track   string         `json:"track"`
	Entries []VersionEntry `json:"versions"`
}

// ListResult is the outcome of `list`.
type ListResult struct {
	Groups   []VersionGroup `json:"tracks"`
	Warnings []string       `json:"warnings,omitempty"`
}

// LinkStatus describes one managed link.
type LinkStatus struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Target  string `json:"target,omitempty"`
	Version string `json:"version,omitempty"`
	// Problem is set when the link is missing, points outside the installed
	// versions, or is blocked by a regular file.
	Problem string `json:"problem,omitempty"`
}

// StatusResult is the outcome of `status`.
type StatusResult struct {
	Links   []LinkStatus  `json:"links"`
	LastRun *state.Record `json:"last_run"`
}
