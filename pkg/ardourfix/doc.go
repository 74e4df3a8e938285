// Package ardourfix holds the public contract shared by the ardourfix tools:
// sentinel errors, exit codes, dialect constants and the Logger interface.
package ardourfix
