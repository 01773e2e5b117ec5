package display

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/xcupdate/pkg/links"
)

// Kind tells renderers how to style a section.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
	KindMuted
)

// Section is a titled block of lines.
type Section struct {
	Title string
	Kind  Kind
	Items []string
}

// Summary is the one-line verdict printed after the sections.
type Summary struct {
	Text string
	Kind Kind
}

// UpdateSections lays out a report. Wording switches to the conditional
// for dry runs.
func UpdateSections(res *UpdateResult) ([]Section, Summary) {
	r := res.Report
	verb := func(done, would string) string {
		if r.DryRun {
			return would
		}
		return done
	}

	var sections []Section
	add := func(title string, kind Kind, items []string) {
		if len(items) > 0 {
			sections = append(sections, Section{Title: title, Kind: kind, Items: items})
		}
	}

	var installed []string
	for _, v := range r.Installed {
		installed = append(installed, v.String())
	}
	add(verb("Installed", "Would install"), KindSuccess, installed)

	var linked []string
	for _, name := range links.Names {
		if v, ok := r.Linked[name]; ok {
			linked = append(linked, fmt.Sprintf("%s -> %s", name, v))
		}
	}
	add(verb("Linked", "Would link"), KindSuccess, linked)

	var deleted []string
	for _, v := range r.Deleted {
		deleted = append(deleted, v.String())
	}
	add(verb("Uninstalled", "Would uninstall"), KindSuccess, deleted)

	var kept []string
	for _, v := range r.Skipped() {
		kept = append(kept, v.String())
	}
	if len(r.Errors) == 0 {
		add("Kept (deletion skipped)", KindMuted, kept)
	}

	add("Warnings", KindWarning, r.Warnings)

	var errs []string
	for _, err := range r.Errors {
		errs = append(errs, err.Error())
	}
	add("Errors", KindError, errs)

	return sections, updateSummary(res)
}

func updateSummary(res *UpdateResult) Summary {
	r := res.Report
	switch {
	case r.Failed():
		return Summary{Text: fmt.Sprintf("Update stopped after stage %q.", r.Stage), Kind: KindError}
	case r.DryRun && r.Changed():
		return Summary{Text: "Dry run: nothing was changed.", Kind: KindWarning}
	case r.Changed():
		return Summary{Text: "Update complete.", Kind: KindSuccess}
	default:
		return Summary{Text: "Everything is up to date.", Kind: KindSuccess}
	}
}

// StatusSections lays out link state and the last recorded run.
func StatusSections(res *StatusResult) []Section {
	var linkLines []string
	for _, l := range res.Links {
		switch {
		case l.Problem != "":
			linkLines = append(linkLines, fmt.Sprintf("%s: %s (%s)", l.Name, l.Path, l.Problem))
		default:
			linkLines = append(linkLines, fmt.Sprintf("%s: %s -> %s", l.Name, l.Path, l.Version))
		}
	}
	sections := []Section{{Title: "Links", Kind: KindInfo, Items: linkLines}}

	rec := res.LastRun
	if rec == nil {
		return append(sections, Section{Title: "Last run", Kind: KindMuted, Items: []string{"no update recorded yet"}})
	}

	kind := KindSuccess
	outcome := "succeeded"
	if !rec.Succeeded() {
		kind = KindError
		outcome = fmt.Sprintf("failed after stage %q", rec.Stage)
	}
	items := []string{
		fmt.Sprintf("%s, %s", rec.FinishedAt.Local().Format("2006-01-02 15:04"), outcome),
	}
	items = appendList(items, "installed", rec.Installed)
	var linked []string
	for name, v := range rec.Linked {
		linked = append(linked, fmt.Sprintf("%s -> %s", name, v))
	}
	sort.Strings(linked)
	items = appendList(items, "linked", linked)
	items = appendList(items, "uninstalled", rec.Deleted)
	items = appendList(items, "kept", rec.Skipped)
	for _, e := range rec.Errors {
		items = append(items, "error: "+e)
	}
	return append(sections, Section{Title: "Last run", Kind: kind, Items: items})
}

func appendList(items []string, label string, values []string) []string {
	for _, v := range values {
		items = append(items, label+": "+v)
	}
	return items
}
