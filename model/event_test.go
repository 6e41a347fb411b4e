package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsSurviveJSON(t *testing.T) {
	events := []Event{
		{Classification: SingleNote{Name: "A4"}, Timestamp: 10.1, RelativeTime: 0.1},
		{Classification: IntervalPair{Notes: []string{"C4", "D4"}}, Timestamp: 11, RelativeTime: 1},
		{Classification: UnclassifiedGroup{Notes: []string{"C4", "C#4", "D4"}}, Timestamp: 12, RelativeTime: 2},
		{Classification: Chord{
			Root:      0,
			RootName:  "C",
			Quality:   "maj",
			Inversion: 1,
			Bass:      4,
			BassName:  "E4",
			Notes:     []string{"G4", "E4", "C5"},
			Display:   "C maj",
			Full:      "C Major",
			Intervals: []int{0, 4, 7},
			MatchKind: "chord",
		}, Timestamp: 13.333333333333334, RelativeTime: 3.333333333333334},
		{Classification: Empty{}},
	}

	data, err := json.Marshal(events)
	require.NoError(t, err)

	var decoded []Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, events, decoded)
}

func TestEventJSONIsTagged(t *testing.T) {
	data, err := json.Marshal(Event{Classification: IntervalPair{Notes: []string{"C4", "D4"}}, RelativeTime: 0.5})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "interval", raw["type"])
	assert.Equal(t, "C4 + D4", raw["display_name"])
	assert.Equal(t, "C4 and D4", raw["full_name"])
	assert.NotContains(t, raw, "chord")
}

func TestUnknownClassificationType(t *testing.T) {
	var e Event
	assert.Error(t, json.Unmarshal([]byte(`{"type":"cluster"}`), &e))

	var tagged Tagged
	assert.Error(t, json.Unmarshal([]byte(`{"type":"chord"}`), &tagged))
}

func TestSectionBounds(t *testing.T) {
	s := Section{Events: []Event{{RelativeTime: 1.5}, {RelativeTime: 2}, {RelativeTime: 3.25}}}
	assert.Equal(t, 1.5, s.Start())
	assert.Equal(t, 3.25, s.End())
	assert.Equal(t, 0.0, Section{}.Start())
}

func TestNewNoteEventDerivesPitchClass(t *testing.T) {
	n := NewNoteEvent("B3", 59, 90, 4, 1)
	assert.Equal(t, 11, n.PitchClass)
	assert.Equal(t, uint8(59), n.MidiNumber)
}
