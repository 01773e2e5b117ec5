// Package config loads xcupdate's settings.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, config.toml or config.yaml in the xcupdate config
//     directory, or the file given with --config
//  3. XCUPDATE_* environment variables
//  4. command line flags
package config
