package automation

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

func TestDecode(t *testing.T) {
	events, err := Decode("0 0.5\n100 0.7\n\n200 0.9\n")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		{Position: 0, Value: "0.5"},
		{Position: 100, Value: "0.7"},
		{Position: 200, Value: "0.9"},
	}, events)
}

func TestDecode_KeepsValuesOpaqueAndOrder(t *testing.T) {
	events, err := Decode("300 1e-05\n100 0.70000000000000007\n100 0.70000000000000007\n-5 +1\n")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		{Position: 300, Value: "1e-05"},
		{Position: 100, Value: "0.70000000000000007"},
		{Position: 100, Value: "0.70000000000000007"},
		{Position: -5, Value: "+1"},
	}, events)
}

func TestDecode_ToleratesSurroundingWhitespace(t *testing.T) {
	events, err := Decode("\n  0   0.5\t\r\n")
	require.NoError(t, err)
	assert.Equal(t, []Event{{Position: 0, Value: "0.5"}}, events)
}

func TestDecode_Empty(t *testing.T) {
	events, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		line string
	}{
		{"single token", "abc", "abc"},
		{"three tokens", "0 0.5\n1 2 3\n", "1 2 3"},
		{"non-integer position", "1.5 0.5\n", "1.5 0.5"},
		{"whitespace only line", "0 1\n   \n", "   "},
		{"position overflow", "99999999999999999999 1\n", "99999999999999999999 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ardourfix.ErrMalformedEvent))

			var mErr *ardourfix.MalformedEventError
			require.True(t, errors.As(err, &mErr))
			assert.Equal(t, tt.line, mErr.Line)
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "0 0.5\n200 0.7\n", Encode([]Event{{0, "0.5"}, {200, "0.7"}}))
}

func TestDecodeEncode_ReproducesText(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var b strings.Builder
		n := rng.Intn(20)
		for j := 0; j < n; j++ {
			fmt.Fprintf(&b, "%d %v\n", rng.Int63n(1<<40)-(1<<20), rng.Float64())
		}
		text := b.String()

		events, err := Decode(text)
		require.NoError(t, err)
		assert.Equal(t, text, Encode(events))

		again, err := Decode(Encode(events))
		require.NoError(t, err)
		assert.Equal(t, events, again)
	}
}
