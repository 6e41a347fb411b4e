package model

import "github.com/jsphweid/noteflow/note"

// NoteEvent is one onset as delivered by the device layer. Times are
// seconds; RelativeTime is measured from the start of the recording.
type NoteEvent struct {
	PitchName    string  `json:"note_name"`
	PitchClass   int     `json:"pitch_class"`
	MidiNumber   uint8   `json:"midi_number"`
	Velocity     uint8   `json:"velocity"`
	Timestamp    float64 `json:"timestamp"`
	RelativeTime float64 `json:"relative_time"`
}

func NewNoteEvent(name string, midi uint8, velocity uint8, timestamp float64, relative float64) NoteEvent {
	return NoteEvent{
		PitchName:    name,
		PitchClass:   note.Class(midi),
		MidiNumber:   midi,
		Velocity:     velocity,
		Timestamp:    timestamp,
		RelativeTime: relative,
	}
}
