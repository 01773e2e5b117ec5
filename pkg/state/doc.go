// Package state records the outcome of the last update so `xcupdate status`
// can show it. The record is informational only: every run derives its
// decisions from what is installed and linked on disk.
package state
