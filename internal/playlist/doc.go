// Package playlist finds playlists that no route uses any more and removes
// them from a session, together with the strip objects of the track they
// were created for.
//
// A playlist is used when a route names it as its midi-playlist or
// audio-playlist, or when the route it was created for (orig-track-id) still
// exists. Playlists without an id are always treated as used.
package playlist
