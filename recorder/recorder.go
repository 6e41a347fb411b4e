package recorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/section"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "recorder")

// Recorder batches onsets into clusters and keeps the session's raw note
// log and event log. It is not safe for concurrent use; callers feed it
// from a single producer with non-decreasing timestamps.
type Recorder struct {
	classifier     *classify.Classifier
	window         float64
	chordDetection bool

	recording bool
	startTime float64
	id        string

	notes   []model.NoteEvent
	events  []model.Event
	pending []model.NoteEvent
}

func New(classifier *classify.Classifier) *Recorder {
	return &Recorder{
		classifier:     classifier,
		window:         constants.GroupingWindow,
		chordDetection: true,
	}
}

// SetGroupingWindow sets the largest gap in seconds between onsets of one
// cluster.
func (r *Recorder) SetGroupingWindow(seconds float64) {
	r.window = seconds
}

func (r *Recorder) GroupingWindow() float64 {
	return r.window
}

// SetChordDetection turns clustering on or off. A pending cluster is
// flushed first so events stay ordered by first onset.
func (r *Recorder) SetChordDetection(enabled bool) {
	if enabled == r.chordDetection {
		return
	}
	r.flush()
	r.chordDetection = enabled
}

func (r *Recorder) ChordDetection() bool {
	return r.chordDetection
}

func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Start begins a session at now. Logs from earlier sessions are kept until
// Clear.
func (r *Recorder) Start(now float64) {
	r.pending = nil
	r.startTime = now
	r.recording = true
	log.WithField("window", r.window).Debug("recording started")
}

// Ingest records one onset. It does nothing unless recording.
func (r *Recorder) Ingest(pitchName string, midiNumber uint8, velocity uint8, now float64) {
	if !r.recording {
		return
	}

	n := model.NewNoteEvent(pitchName, midiNumber, velocity, now, now-r.startTime)
	r.notes = append(r.notes, n)

	if !r.chordDetection {
		r.events = append(r.events, model.Event{
			Classification: model.SingleNote{Name: pitchName},
			Timestamp:      n.Timestamp,
			RelativeTime:   n.RelativeTime,
		})
		return
	}

	if len(r.pending) > 0 && now-r.pending[len(r.pending)-1].Timestamp > r.window {
		r.flush()
	}
	r.pending = append(r.pending, n)
}

// Stop flushes whatever cluster is pending and ends the session.
func (r *Recorder) Stop() {
	if !r.recording {
		return
	}
	r.flush()
	r.recording = false
	log.WithFields(logrus.Fields{
		"notes":  len(r.notes),
		"events": len(r.events),
	}).Debug("recording stopped")
}

// Clear drops both logs and any pending cluster.
func (r *Recorder) Clear() {
	r.notes = nil
	r.events = nil
	r.pending = nil
	r.startTime = 0
	r.id = ""
}

func (r *Recorder) flush() {
	if len(r.pending) == 0 {
		return
	}
	first := r.pending[0]
	c := r.classifier.Classify(r.pending)
	r.events = append(r.events, model.Event{
		Classification: c,
		Timestamp:      first.Timestamp,
		RelativeTime:   first.RelativeTime,
	})
	log.WithFields(logrus.Fields{
		"size": len(r.pending),
		"type": c.Kind(),
		"name": c.DisplayName(),
	}).Debug("cluster flushed")
	r.pending = nil
}

func (r *Recorder) Notes() []model.NoteEvent {
	return append([]model.NoteEvent(nil), r.notes...)
}

func (r *Recorder) Events() []model.Event {
	return append([]model.Event(nil), r.events...)
}

func (r *Recorder) NoteCount() int {
	return len(r.notes)
}

// Duration is the relative time of the last raw note.
func (r *Recorder) Duration() float64 {
	if len(r.notes) == 0 {
		return 0
	}
	return r.notes[len(r.notes)-1].RelativeTime
}

func (r *Recorder) DetectSections(pause float64) []model.Section {
	return section.Segment(r.events, pause)
}

// Snapshot builds the persisted record of the session. The recording id is
// assigned on first snapshot and kept until Clear.
func (r *Recorder) Snapshot() model.Recording {
	if r.id == "" {
		r.id = uuid.New().String()
	}
	return model.Recording{
		ID:             r.id,
		RecordedAt:     time.Now().UTC(),
		ChordDetection: r.chordDetection,
		NoteCount:      r.NoteCount(),
		Duration:       r.Duration(),
		Notes:          r.Notes(),
		Events:         r.Events(),
	}
}

// Restore replaces both logs with a persisted record and leaves the
// recorder idle.
func (r *Recorder) Restore(rec model.Recording) {
	r.recording = false
	r.pending = nil
	r.startTime = 0
	r.id = rec.ID
	r.chordDetection = rec.ChordDetection
	r.notes = append([]model.NoteEvent(nil), rec.Notes...)
	r.events = append([]model.Event(nil), rec.Events...)
}
