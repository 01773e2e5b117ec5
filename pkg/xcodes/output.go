package xcodes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/charmbracelet/x/ansi"
)

// Installation is one line of `xcodes installed`.
type Installation struct {
	// Identifier is the version text with status markers removed,
	// e.g. "15.0 (15A240d)".
	Identifier string
	// Path is the bundle location, empty when xcodes did not print one.
	Path     string
	Selected bool
}

var markerPattern = regexp.MustCompile(`(?i)\s*\(\s*(?:installed|selected)(?:\s*,\s*(?:installed|selected))*\s*\)`)

// parseAvailable splits `xcodes list` output into identifiers. Blank lines
// and status markers are dropped.
func parseAvailable(out []byte) []string {
	var ids []string
	for _, line := range lines(out) {
		if id, _ := stripMarkers(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseInstalled splits `xcodes installed` output. Each line is an
// identifier followed by the bundle path, separated by a tab or by
// whitespace before the leading slash of the path.
func parseInstalled(out []byte) []Installation {
	var found []Installation
	for _, line := range lines(out) {
		text, path := splitPath(line)
		id, selected := stripMarkers(text)
		if id == "" {
			continue
		}
		found = append(found, Installation{Identifier: id, Path: path, Selected: selected})
	}
	return found
}

func lines(out []byte) []string {
	raw := strings.Split(ansi.Strip(string(out)), "\n")
	kept := raw[:0]
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return kept
}

func splitPath(line string) (string, string) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	if i := strings.Index(line, " /"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

func stripMarkers(text string) (string, bool) {
	selected := false
	for _, m := range markerPattern.FindAllString(text, -1) {
		if strings.Contains(strings.ToLower(m), "selected") {
			selected = true
		}
	}
	return strings.TrimSpace(markerPattern.ReplaceAllString(text, "")), selected
}

// BundleName is the application name xcodes gives an installed version,
// e.g. "Xcode-15.1.0-Beta.3.app".
func BundleName(v versions.Version) string {
	name := fmt.Sprintf("Xcode-%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	if v.IsPrerelease() {
		label := strings.ReplaceAll(v.Label(), " ", "-")
		if v.Number() > 0 {
			label = fmt.Sprintf("%s.%d", label, v.Number())
		}
		name += "-" + label
	}
	return name + ".app"
}
