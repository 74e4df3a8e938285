// Package logging provides concrete implementations of the ardourfix.Logger interface.
//
// ConsoleLogger writes formatted messages to stderr with thread-safe output.
// Level prefixes are styled when colour is enabled.
package logging
