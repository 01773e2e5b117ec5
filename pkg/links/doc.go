// Package links decides and converges the symbolic references that expose
// the current Xcode of each track.
//
// Two references are managed: the stable link (usually
// /Applications/Xcode.app) and the beta link (/Applications/Xcode-beta.app).
// Plan is pure; Applier reads the current targets through a Store and only
// writes a link whose target actually changes.
package links
