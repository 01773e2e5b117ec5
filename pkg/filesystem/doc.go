// Package filesystem implements types.FS on top of afero.
//
// NewOS is the host filesystem used at runtime. NewMemory keeps everything
// in memory; dry runs write their state there and tests use it for link
// and state fixtures.
package filesystem
