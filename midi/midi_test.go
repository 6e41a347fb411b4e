package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeSMF(t *testing.T, tracks ...smf.Track) string {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(960)
	s.Tracks = tracks

	path := filepath.Join(t.TempDir(), "take.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = s.WriteTo(f)
	require.NoError(t, err)
	return path
}

func event(delta uint32, msg gomidi.Message) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(msg)}
}

func TestGetOnsetsMergesTracks(t *testing.T) {
	bass := smf.Track{
		event(0, gomidi.NoteOn(0, 48, 90)),
		event(960, gomidi.NoteOff(0, 48)),
	}
	bass.Close(0)
	chords := smf.Track{
		event(0, gomidi.NoteOn(1, 64, 70)),
		event(0, gomidi.NoteOn(1, 67, 70)),
		event(480, gomidi.NoteOff(1, 64)),
		event(0, gomidi.NoteOff(1, 67)),
		// a zero velocity note on ends a note rather than starting one
		event(0, gomidi.NoteOn(1, 69, 0)),
		event(480, gomidi.NoteOn(1, 72, 60)),
	}
	chords.Close(0)

	s, err := ReadMidiFile(writeSMF(t, bass, chords))
	require.NoError(t, err)

	onsets := GetOnsets(s)
	require.Len(t, onsets, 4)

	assert := assert.New(t)
	assert.Equal("C3", onsets[0].Name)
	assert.Equal("E4", onsets[1].Name)
	assert.Equal("G4", onsets[2].Name)
	assert.Equal("C5", onsets[3].Name)
	assert.Equal(uint8(90), onsets[0].Velocity)
	assert.Equal(onsets[0].Time, onsets[1].Time)
	assert.Greater(onsets[3].Time, onsets[2].Time+0.05)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestReadMidiFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a midi file"), 0644))
	_, err := ReadMidiFile(path)
	assert.Error(t, err)
}

func TestFindPort(t *testing.T) {
	ports := []Port{
		{Number: 0, Name: "Midi Through Port-0"},
		{Number: 1, Name: "Digital Piano MIDI 1"},
		{Number: 2, Name: "Digital Piano MIDI 2"},
	}

	cases := map[string]int{
		"0":                    0,
		"2":                    2,
		"Digital Piano MIDI 2": 2,
		"digital piano":        1,
		"through":              0,
	}
	for query, want := range cases {
		t.Run(query, func(t *testing.T) {
			p, err := FindPort(ports, query)
			require.NoError(t, err)
			assert.Equal(t, want, p.Number)
		})
	}

	_, err := FindPort(ports, "3")
	assert.Error(t, err)
	_, err = FindPort(ports, "organ")
	assert.Error(t, err)
	_, err = FindPort(nil, "0")
	assert.Error(t, err)
}
