package classify

import (
	"github.com/jsphweid/noteflow/chord"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/note"
)

// Classifier turns a cluster of simultaneous notes into a Classification.
type Classifier struct {
	matcher *chord.Matcher
}

func New(matcher *chord.Matcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Default classifies against the built-in chord library.
func Default() *Classifier {
	return New(chord.NewMatcher(chord.DefaultLibrary()))
}

// Classify expects notes in arrival order.
func (c *Classifier) Classify(notes []model.NoteEvent) model.Classification {
	switch len(notes) {
	case 0:
		return model.Empty{}
	case 1:
		return model.SingleNote{Name: notes[0].PitchName}
	}

	bass := lowest(notes)
	offsets := make([]int, len(notes))
	names := make([]string, len(notes))
	for i, n := range notes {
		offsets[i] = int(n.MidiNumber) - int(bass.MidiNumber)
		names[i] = n.PitchName
	}

	m, ok := c.matcher.Match(chord.Normalize(offsets), bass.PitchClass)
	if ok {
		return model.Chord{
			Root:      m.Root,
			RootName:  note.ClassName(m.Root),
			Quality:   m.Quality,
			Inversion: m.Inversion,
			Bass:      bass.PitchClass,
			BassName:  bass.PitchName,
			Notes:     names,
			Display:   m.DisplayName(),
			Full:      m.LongName(),
			Intervals: m.Intervals,
			MatchKind: string(m.Kind),
		}
	}

	if len(notes) == 2 {
		return model.IntervalPair{Notes: names}
	}
	return model.UnclassifiedGroup{Notes: names}
}

// lowest returns the note with the smallest MIDI number, earliest wins ties.
func lowest(notes []model.NoteEvent) model.NoteEvent {
	bass := notes[0]
	for _, n := range notes[1:] {
		if n.MidiNumber < bass.MidiNumber {
			bass = n
		}
	}
	return bass
}
