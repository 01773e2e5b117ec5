// Package update runs one update of the installed Xcode versions.
//
// A run moves through fixed stages:
//
//	Start -> Listed -> Selected -> Installed -> Linked -> Retained -> Done
//
// Listed: the available and installed versions are read from xcodes.
// Selected: per track, the newest available version is chosen if it is
// newer than everything installed on that track.
// Installed: the chosen versions are installed and the installed list is
// read again.
// Linked: the stable and beta links are pointed at their targets.
// Retained: versions outside the retention window are removed, for the
// tracks that received a new version.
//
// A failing stage stops the run where it is. Nothing already done is
// rolled back; the next run starts again from what is on disk and picks
// up where this one stopped.
package update
