// Package types defines the interfaces shared across xcupdate packages.
package types
