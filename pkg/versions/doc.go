// Package versions models Xcode version identifiers as reported by xcodes.
//
// A Version is parsed once from its identifier ("15.0", "15.1 Beta 3",
// "14.3 Release Candidate 2 (14E222a)") and is immutable afterwards. Its
// Track is derived from the identifier's qualifier and cannot be set on its
// own.
//
// All ordering goes through Compare, a strict total order:
//
//	major, minor, patch        numeric
//	track                      stable above prerelease for the same triple
//	qualifier kind             alpha < beta < release candidate
//	qualifier number           numeric, an absent number counts as 1
//	build identifier           natural order ("15A240d" < "15A5195m")
//	qualifier label            lexical, only separates spellings
//	raw qualifier number       "Beta" before "Beta 1"
//
// Latest (the selector) and InstalledSet are built on top of it.
package versions
