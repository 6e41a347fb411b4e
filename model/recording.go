package model

import "time"

// Recording is the persisted form of a session.
type Recording struct {
	ID             string      `json:"id"`
	RecordedAt     time.Time   `json:"recording_date"`
	ChordDetection bool        `json:"chord_detection"`
	NoteCount      int         `json:"note_count"`
	Duration       float64     `json:"duration"`
	Notes          []NoteEvent `json:"notes"`
	Events         []Event     `json:"events"`
}

type RecordingMetadata struct {
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	Year   uint   `json:"year,omitempty"`
}

type RecordingSummary struct {
	ID         string             `json:"id"`
	RecordedAt time.Time          `json:"recording_date"`
	NoteCount  int                `json:"note_count"`
	EventCount int                `json:"event_count"`
	Duration   float64            `json:"duration"`
	Metadata   *RecordingMetadata `json:"metadata"`
}

// ChordOccurrence locates one chord event inside a stored recording.
type ChordOccurrence struct {
	RecordingID  string  `json:"recording_id"`
	Display      string  `json:"display_name"`
	Inversion    int     `json:"inversion"`
	RelativeTime float64 `json:"relative_time"`
}
