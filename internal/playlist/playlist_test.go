package playlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

const playlistSession = `<Session>
  <ProgramVersion created-with="Ardour 6.9"/>
  <Routes>
    <Route id="r1" default-type="midi" midi-playlist="a"/>
    <Route id="r2" default-type="audio" audio-playlist="c"/>
  </Routes>
  <Playlists>
    <Playlist id="a" orig-track-id="gone"/>
    <Playlist id="b" orig-track-id="t1"/>
    <Playlist id="c"/>
    <Playlist id="d" orig-track-id="r2"/>
    <Playlist name="no id"/>
  </Playlists>
  <UnusedPlaylists>
    <Playlist id="e"/>
  </UnusedPlaylists>
  <Extra>
    <Object id="strip t1"/>
    <Object id="strip r2"/>
    <Processors>
      <Object id="strip t1"/>
      <Processor id="strip t1"/>
    </Processors>
  </Extra>
</Session>`

func parse(t *testing.T, doc string) *xmltree.Element {
	t.Helper()
	root, err := xmltree.ParseString(doc, xmltree.Options{})
	require.NoError(t, err)
	return root
}

func ids(els []*xmltree.Element) []string {
	var out []string
	for _, e := range els {
		out = append(out, e.Attr(ardourfix.AttrID))
	}
	return out
}

func TestClassify(t *testing.T) {
	root := parse(t, playlistSession)
	byID := func(id string) *xmltree.Element {
		el := root.FindDescendant(ardourfix.TagPlaylist, ardourfix.AttrID, id)
		require.NotNil(t, el)
		return el
	}

	tests := []struct {
		name     string
		playlist *xmltree.Element
		want     Usage
	}{
		{"midi reference wins over missing orig track", byID("a"), Usage{true, ReasonActive}},
		{"orig track gone", byID("b"), Usage{false, ReasonOrphanTrack}},
		{"audio reference", byID("c"), Usage{true, ReasonActive}},
		{"orig track exists", byID("d"), Usage{true, ReasonOrigTrack}},
		{"no id", root.Descendants(ardourfix.TagPlaylist)[4], Usage{true, ReasonNoID}},
		{"no reference no orig track", byID("e"), Usage{false, ReasonNoOrigTrack}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.playlist, root))
			assert.Equal(t, tt.want.Used, IsUsed(tt.playlist, root))
		})
	}
}

func TestClassify_ChildlessRouteCountsAsMatch(t *testing.T) {
	root := parse(t, `<Session><Route id="r" midi-playlist="p"/><Playlist id="p"/></Session>`)
	assert.True(t, IsUsed(root.Find(ardourfix.TagPlaylist), root))
}

func TestFindUnused_KeepsOrder(t *testing.T) {
	root := parse(t, playlistSession)

	unused := FindUnused(All(root), root)
	assert.Equal(t, []string{"b", "e"}, ids(unused))
}

func TestFindUnused_TwoPlaylistScenario(t *testing.T) {
	root := parse(t, `<Session>
  <Route id="r" midi-playlist="a"/>
  <Playlist id="a"/>
  <Playlist id="b" orig-track-id="t1"/>
  <Object id="strip t1"/>
</Session>`)

	playlists := All(root)
	unused := FindUnused(playlists, root)
	require.Len(t, unused, 1)
	assert.Same(t, playlists[1], unused[0])

	r, err := Remove(unused[0], root)
	require.NoError(t, err)
	assert.Equal(t, Removal{PlaylistID: "b", OrigTrackID: "t1", StripsRemoved: 1}, r)
	assert.Nil(t, root.FindDescendant("", ardourfix.AttrID, "strip t1"))
	assert.Equal(t, []string{"a"}, ids(All(root)))
}

func TestRemove_StripsEverywhere(t *testing.T) {
	root := parse(t, playlistSession)
	b := root.FindDescendant(ardourfix.TagPlaylist, ardourfix.AttrID, "b")

	r, err := Remove(b, root)
	require.NoError(t, err)
	assert.Equal(t, 3, r.StripsRemoved)
	assert.Nil(t, root.FindDescendant("", ardourfix.AttrID, "strip t1"))
	assert.NotNil(t, root.FindDescendant("Object", ardourfix.AttrID, "strip r2"))
}

func TestRemove_WithoutOrigTrack(t *testing.T) {
	root := parse(t, playlistSession)
	e := root.FindDescendant(ardourfix.TagPlaylist, ardourfix.AttrID, "e")

	r, err := Remove(e, root)
	require.NoError(t, err)
	assert.Equal(t, Removal{PlaylistID: "e"}, r)
	assert.Empty(t, root.Find("UnusedPlaylists").Children)
	assert.Len(t, root.Descendants("Object"), 3)
}

func TestRemove_MissingID(t *testing.T) {
	root := parse(t, playlistSession)
	noID := root.Descendants(ardourfix.TagPlaylist)[4]

	_, err := Remove(noID, root)
	assert.True(t, errors.Is(err, ardourfix.ErrMissingID))
	assert.Len(t, All(root), 6)
}

func TestRemove_OrphanNode(t *testing.T) {
	root := parse(t, playlistSession)
	detached := xmltree.New(ardourfix.TagPlaylist, ardourfix.AttrID, "zzz")

	_, err := Remove(detached, root)
	assert.True(t, errors.Is(err, ardourfix.ErrOrphanNode))
}

func TestRemove_DuplicateIDsDetachExactNode(t *testing.T) {
	root := parse(t, `<Session><A><Playlist id="x" n="1"/></A><B><Playlist id="x" n="2"/></B></Session>`)
	second := root.Find("B").Find(ardourfix.TagPlaylist)

	_, err := Remove(second, root)
	require.NoError(t, err)
	assert.Len(t, root.Find("A").Children, 1)
	assert.Empty(t, root.Find("B").Children)
}

func TestPrune(t *testing.T) {
	root := parse(t, playlistSession)

	res, err := Prune(root)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Scanned)
	require.Len(t, res.Removals, 2)
	assert.Equal(t, "b", res.Removals[0].PlaylistID)
	assert.Equal(t, "e", res.Removals[1].PlaylistID)
	assert.Equal(t, []string{"a", "c", "d", ""}, ids(All(root)))
}

func TestPrune_NothingUnused(t *testing.T) {
	root := parse(t, `<Session><Route id="r" audio-playlist="p"/><Playlist id="p"/></Session>`)
	before, err := root.Bytes()
	require.NoError(t, err)

	res, err := Prune(root)
	require.NoError(t, err)
	assert.Empty(t, res.Removals)

	after, err := root.Bytes()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
