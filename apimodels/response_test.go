package apimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimesterNotesMarshalBareString(t *testing.T) {
	out := Outcome{
		Item:           "Thing",
		SafetyLevel:    SafetyLevelSafe,
		TrimesterNotes: &TrimesterNotes{General: "Fine throughout."},
	}
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"trimesterNotes":"Fine throughout."`)
}

func TestTrimesterNotesMarshalStructured(t *testing.T) {
	notes := &TrimesterNotes{T1: "a", T2: "b", T3: "c"}
	encoded, err := json.Marshal(notes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"t1":"a","t2":"b","t3":"c"}`, string(encoded))
}

func TestTrimesterNotesUnmarshalBothShapes(t *testing.T) {
	var bare TrimesterNotes
	require.NoError(t, json.Unmarshal([]byte(`"Fine throughout."`), &bare))
	assert.Equal(t, "Fine throughout.", bare.General)
	assert.False(t, bare.Structured())

	var structured TrimesterNotes
	require.NoError(t, json.Unmarshal([]byte(`{"t1":"a","t3":"c"}`), &structured))
	assert.True(t, structured.Structured())
	assert.Equal(t, "a", structured.ForTrimester(1))
	assert.Equal(t, "", structured.ForTrimester(2))
	assert.Equal(t, "c", structured.ForTrimester(3))
}

func TestSafetyLevelValid(t *testing.T) {
	assert.True(t, SafetyLevelSafe.Valid())
	assert.True(t, SafetyLevelCaution.Valid())
	assert.True(t, SafetyLevelAvoid.Valid())
	assert.False(t, SafetyLevel("mostly-fine").Valid())
	assert.False(t, SafetyLevel("").Valid())
}

func TestOutcomeIsMenu(t *testing.T) {
	assert.False(t, (&Outcome{Item: "x"}).IsMenu())
	assert.True(t, (&Outcome{MenuAnalysis: true}).IsMenu())
	assert.True(t, (&Outcome{Items: []MenuItem{{Item: "x"}}}).IsMenu())
}

func TestNormalizeLists(t *testing.T) {
	var out Outcome
	out.NormalizeLists()
	assert.NotNil(t, out.DirectRisks)
	assert.NotNil(t, out.GeneralRisks)
	assert.NotNil(t, out.Recommendations)
	assert.NotNil(t, out.Sources)
}
