// Package session loads an Ardour session file into an element tree, guards
// its program version and writes the mutated tree back to the same path.
//
// Nothing is written until the caller asks for Save, and Save renders the
// whole document in memory before it replaces the file through a rename, so
// an interrupted run leaves the original file untouched.
package session
