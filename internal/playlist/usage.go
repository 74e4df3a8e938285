package playlist

import (
	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// Reason explains a usage verdict.
type Reason int

const (
	// ReasonNoID: the playlist has no id and is never removed.
	ReasonNoID Reason = iota
	// ReasonActive: a route references the playlist.
	ReasonActive
	// ReasonOrigTrack: the route the playlist was created for still exists.
	ReasonOrigTrack
	// ReasonOrphanTrack: the route named by orig-track-id is gone.
	ReasonOrphanTrack
	// ReasonNoOrigTrack: nothing references the playlist and it has no orig-track-id.
	ReasonNoOrigTrack
)

func (r Reason) String() string {
	switch r {
	case ReasonNoID:
		return "no id"
	case ReasonActive:
		return "referenced by a route"
	case ReasonOrigTrack:
		return "original track still exists"
	case ReasonOrphanTrack:
		return "original track no longer exists"
	case ReasonNoOrigTrack:
		return "not referenced and no original track"
	}
	return "unknown"
}

// Usage is the verdict for one playlist.
type Usage struct {
	Used   bool
	Reason Reason
}

// All returns every Playlist element below root in document order.
func All(root *xmltree.Element) []*xmltree.Element {
	return root.Descendants(ardourfix.TagPlaylist)
}

// Classify decides whether playlist is used within the session rooted at root.
// Only a query that matches no element counts as "not referenced".
func Classify(playlist, root *xmltree.Element) Usage {
	id, ok := playlist.Get(ardourfix.AttrID)
	if !ok {
		return Usage{Used: true, Reason: ReasonNoID}
	}

	if root.FindDescendant(ardourfix.TagRoute, ardourfix.AttrMIDIPlaylist, id) != nil ||
		root.FindDescendant(ardourfix.TagRoute, ardourfix.AttrAudioPlaylist, id) != nil {
		return Usage{Used: true, Reason: ReasonActive}
	}

	origTrackID, ok := playlist.Get(ardourfix.AttrOrigTrackID)
	if !ok {
		return Usage{Used: false, Reason: ReasonNoOrigTrack}
	}
	if root.FindDescendant(ardourfix.TagRoute, ardourfix.AttrID, origTrackID) != nil {
		return Usage{Used: true, Reason: ReasonOrigTrack}
	}
	return Usage{Used: false, Reason: ReasonOrphanTrack}
}

// IsUsed reports whether playlist is used within the session rooted at root.
func IsUsed(playlist, root *xmltree.Element) bool {
	return Classify(playlist, root).Used
}

// FindUnused returns the playlists that are not used, in their original order.
func FindUnused(playlists []*xmltree.Element, root *xmltree.Element) []*xmltree.Element {
	var unused []*xmltree.Element
	for _, p := range playlists {
		if !IsUsed(p, root) {
			unused = append(unused, p)
		}
	}
	return unused
}
