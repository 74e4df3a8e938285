package xmltree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<Session version="6000" name="demo">
  <ProgramVersion created-with="Ardour 6.9" modified-with="Ardour 6.9"/>
  <Routes>
    <Route id="10" default-type="midi" midi-playlist="100">
      <Automation>
        <AutomationList id="500">
          <events>0 0.5
100 0.7
</events>
        </AutomationList>
      </Automation>
    </Route>
  </Routes>
  <Playlists>
    <Playlist id="100" name="a &amp; b"/>
  </Playlists>
</Session>
`

func TestParse_Structure(t *testing.T) {
	root, err := ParseString(sample, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Session", root.Tag)
	assert.Equal(t, "demo", root.Attr("name"))

	pv := root.Find("ProgramVersion")
	require.NotNil(t, pv)
	assert.Equal(t, "Ardour 6.9", pv.Attr("created-with"))

	routes := root.Descendants("Route")
	require.Len(t, routes, 1)
	assert.Equal(t, "midi", routes[0].Attr("default-type"))

	events := root.Descendants("events")
	require.Len(t, events, 1)
	assert.Equal(t, "0 0.5\n100 0.7\n", events[0].Text)

	pl := root.FindDescendant("Playlist", "id", "100")
	require.NotNil(t, pl)
	assert.Equal(t, "a & b", pl.Attr("name"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \n"},
		{"unclosed", "<Session><Route>"},
		{"mismatched", "<Session><Route></Playlist></Session>"},
		{"two roots", "<a/><b/>"},
		{"text outside root", "<a/>junk"},
		{"bad entity", "<a>&nope;</a>"},
		{"garbage", "not xml at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ardourfix.ErrParse), "got %v", err)
		})
	}
}

func TestParse_StrictRejectsEntityDeclarations(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!DOCTYPE Session [<!ENTITY xxe SYSTEM "file:///etc/passwd">]>
<Session/>`

	_, err := ParseString(doc, Options{Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ardourfix.ErrParse))
	assert.Contains(t, err.Error(), "entity declarations")

	root, err := ParseString(doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Session", root.Tag)
}

func TestParse_Latin1Declared(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Session name=\"caf\xe9\"/>"

	root, err := ParseString(doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, "café", root.Attr("name"))
}

func TestParse_UTF8BOM(t *testing.T) {
	doc := "\xef\xbb\xbf<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Session a=\"1\"><x>t</x></Session>"

	root, err := ParseString(doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Session", root.Tag)
	assert.Equal(t, "1", root.Attr("a"))
	assert.Equal(t, "t", root.Find("x").Text)
}

func TestParse_UTF16(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-16"?><Session a="é"><x>t</x></Session>`

	tests := []struct {
		name  string
		order unicode.Endianness
	}{
		{"little endian", unicode.LittleEndian},
		{"big endian", unicode.BigEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := unicode.UTF16(tt.order, unicode.UseBOM).NewEncoder().String(doc)
			require.NoError(t, err)

			root, err := ParseString(encoded, Options{})
			require.NoError(t, err)
			assert.Equal(t, "é", root.Attr("a"))
			assert.Equal(t, "t", root.Find("x").Text)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	root, err := ParseString(sample, Options{})
	require.NoError(t, err)

	out, err := root.Bytes()
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, Declaration))
	assert.Contains(t, s, "<events>0 0.5\n100 0.7\n</events>")
	assert.Contains(t, s, `<Playlist id="100" name="a &amp; b"/>`)
	assert.Contains(t, s, `<ProgramVersion created-with="Ardour 6.9" modified-with="Ardour 6.9"/>`)

	again, err := ParseString(s, Options{})
	require.NoError(t, err)
	out2, err := again.Bytes()
	require.NoError(t, err)
	assert.Equal(t, s, string(out2))
}

func TestWrite_EscapesAttributes(t *testing.T) {
	e := New("Object", "id", "strip 1", "note", "a\"b<c>\nd\te")
	e.Text = "1 < 2 & 3"

	out, err := e.Bytes()
	require.NoError(t, err)
	assert.Equal(t,
		Declaration+`<Object id="strip 1" note="a&quot;b&lt;c&gt;&#10;d&#09;e">1 &lt; 2 &amp; 3</Object>`+"\n",
		string(out))

	back, err := ParseString(string(out), Options{})
	require.NoError(t, err)
	assert.Equal(t, "a\"b<c>\nd\te", back.Attr("note"))
	assert.Equal(t, "1 < 2 & 3", back.Text)
}

func TestQueries(t *testing.T) {
	root := New("Session")
	a := New("Objects")
	b := New("Nested")
	s1 := New("Object", "id", "strip 7")
	s2 := New("Object", "id", "strip 7")
	other := New("Object", "id", "strip 8")
	b.Append(s2)
	a.Append(s1, other, b)
	root.Append(a)

	parents := root.ParentsOf("Object", "id", "strip 7")
	require.Len(t, parents, 2)
	assert.Same(t, a, parents[0])
	assert.Same(t, b, parents[1])

	assert.Same(t, s1, root.FindDescendant("Object", "id", "strip 7"))
	assert.Nil(t, root.FindDescendant("Object", "id", "strip 9"))
	assert.Len(t, root.Descendants(""), 5)
	assert.Len(t, a.FindAll("Object"), 2)

	assert.True(t, a.Remove(s1))
	assert.False(t, a.Remove(s1))
	assert.Len(t, root.Descendants("Object"), 2)
}

func TestSet(t *testing.T) {
	e := New("Route", "id", "1")
	e.Set("id", "2")
	e.Set("name", "Bass")

	assert.Equal(t, []Attr{{"id", "2"}, {"name", "Bass"}}, e.Attrs)
	assert.True(t, e.Has("name"))
	assert.False(t, e.Has("default-type"))
}
