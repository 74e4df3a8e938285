// Package checksum computes SHA-256 digests of project files.
//
// The session saver records the digest of the bytes it loaded and compares it
// with the file on disk right before replacing it, so a project file edited
// by another program in the meantime is never overwritten silently.
package checksum
