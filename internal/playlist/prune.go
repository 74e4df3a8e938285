package playlist

import (
	"fmt"

	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// Removal describes one removed playlist.
type Removal struct {
	PlaylistID    string
	OrigTrackID   string
	StripsRemoved int
}

// PruneResult summarizes a Prune pass.
type PruneResult struct {
	Scanned  int
	Removals []Removal
}

// Remove detaches playlist from the session, then removes every element whose
// id is "strip <orig-track-id>" when the playlist names an original track.
//
// The parent is located by querying for playlists carrying the same id and the
// node is then detached by identity, so a duplicate id never removes a
// different playlist.
func Remove(playlist, root *xmltree.Element) (Removal, error) {
	id, ok := playlist.Get(ardourfix.AttrID)
	if !ok {
		return Removal{}, ardourfix.ErrMissingID
	}

	detached := false
	for _, parent := range root.ParentsOf(ardourfix.TagPlaylist, ardourfix.AttrID, id) {
		if parent.Remove(playlist) {
			detached = true
			break
		}
	}
	if !detached {
		return Removal{}, fmt.Errorf("%w: playlist %q", ardourfix.ErrOrphanNode, id)
	}

	r := Removal{PlaylistID: id}
	origTrackID, ok := playlist.Get(ardourfix.AttrOrigTrackID)
	if !ok {
		return r, nil
	}
	r.OrigTrackID = origTrackID
	r.StripsRemoved = removeByID(root, ardourfix.StripObjectIDPrefix+origTrackID)
	return r, nil
}

// removeByID detaches every element below root whose id equals id.
func removeByID(root *xmltree.Element, id string) int {
	n := 0
	for _, parent := range root.ParentsOf("", ardourfix.AttrID, id) {
		for _, c := range append([]*xmltree.Element(nil), parent.Children...) {
			if v, ok := c.Get(ardourfix.AttrID); ok && v == id && parent.Remove(c) {
				n++
			}
		}
	}
	return n
}

// Prune removes every unused playlist. The unused set is computed once,
// before anything is detached.
func Prune(root *xmltree.Element) (PruneResult, error) {
	playlists := All(root)
	unused := FindUnused(playlists, root)

	res := PruneResult{Scanned: len(playlists)}
	for _, p := range unused {
		r, err := Remove(p, root)
		if err != nil {
			return res, err
		}
		res.Removals = append(res.Removals, r)
	}
	return res, nil
}
