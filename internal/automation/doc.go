// Package automation decodes Ardour automation event lists and rescales
// MIDI automation when a session's tempo changes.
//
// An event list is the text body of an AutomationList's <events> element:
// one "<sample-position> <value>" pair per line. Values are carried as opaque
// strings and written back exactly as read.
package automation
