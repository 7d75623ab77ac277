package darkstar

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		X Stat `json:"x"`
		Y Stat `json:"y"`
	}{NumStat(-12.5), TextStat("telling")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":-12.5,"y":"telling"}`, string(b))

	var back struct {
		X Stat `json:"x"`
		Y Stat `json:"y"`
		Z Stat `json:"z"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"x":-12.5,"y":"telling","z":null}`), &back))
	assert.Equal(t, -12.5, back.X.Float())
	assert.True(t, back.Y.IsText())
	assert.Equal(t, "telling", back.Y.String())
	assert.Equal(t, 0, back.Z.Int())
}

func TestItemModText(t *testing.T) {
	assert.Equal(t, "(1): DEF: 10", ItemModText(1, 10))
	assert.Equal(t, "(3): HP +5%", ItemModText(3, 5))
	assert.Equal(t, "(3): HP -5%", ItemModText(3, -5))
	assert.Equal(t, "Unknown Mod (99999) 7", ItemModText(99999, 7))

	assert.Equal(t, "(167): Haste/Slow From Magic +10", ItemModText(167, 10))
	assert.Equal(t, "(406): Regain (Down / Plague) 3", ItemModText(406, 3))
	for id, f := range itemModFormats {
		assert.NotContains(t, f, `\`, "mod %d", id)
	}
}
