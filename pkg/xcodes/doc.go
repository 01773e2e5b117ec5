// Package xcodes drives the xcodes command line tool
// (https://github.com/XcodesOrg/xcodes), which lists, downloads, installs
// and removes Xcode versions.
//
// The client only runs processes and splits their output into raw
// identifiers; turning identifiers into versions is left to the caller so
// that a single malformed line never aborts a listing.
package xcodes
