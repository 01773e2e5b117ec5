// Package paths resolves where xcupdate keeps its own files.
//
// Configuration lives under the XDG config directory and run state under
// the XDG state directory, both in an "xcupdate" subdirectory. Each can be
// moved with an environment variable, which tests use to stay out of the
// user's home.
package paths
