// Package lookup resolves executables and command shells.
//
// Binary values refer to files that existed when they were resolved, either by
// explicit path (ResolveByPath) or by searching the PATH directories
// (ResolveByName). Shell values wrap the preferred user shell and know the
// arguments needed to execute a single command line with it.
package lookup
