package recorder

import (
	"fmt"
	"strings"

	"github.com/jsphweid/noteflow/model"
)

// TextView renders one numbered line per event.
func (r *Recorder) TextView() string {
	return TextView(r.events)
}

// SequenceView renders the events as one arrow-joined line.
func (r *Recorder) SequenceView() string {
	return SequenceView(r.events)
}

func TextView(events []model.Event) string {
	if len(events) == 0 {
		return "No notes recorded"
	}

	lines := make([]string, 0, len(events))
	for i, e := range events {
		n := i + 1
		switch c := e.Classification.(type) {
		case model.Chord:
			lines = append(lines, fmt.Sprintf("%d. [Chord: %s] (%s) (%.2fs)", n, c.Display, InversionPhrase(c.Inversion), e.RelativeTime))
		case model.IntervalPair:
			lines = append(lines, fmt.Sprintf("%d. [Interval: %s] (%.2fs)", n, c.DisplayName(), e.RelativeTime))
		default:
			lines = append(lines, fmt.Sprintf("%d. %s (%.2fs)", n, displayName(e), e.RelativeTime))
		}
	}
	return strings.Join(lines, "\n")
}

func SequenceView(events []model.Event) string {
	parts := make([]string, 0, len(events))
	for _, e := range events {
		if c, ok := e.Classification.(model.Chord); ok {
			parts = append(parts, "["+c.Display+"]")
			continue
		}
		parts = append(parts, displayName(e))
	}
	return strings.Join(parts, " → ")
}

func displayName(e model.Event) string {
	if e.Classification == nil {
		return ""
	}
	return e.Classification.DisplayName()
}

// InversionPhrase spells an inversion number, 0 -> "root position",
// 2 -> "2nd inversion".
func InversionPhrase(inversion int) string {
	if inversion == 0 {
		return "root position"
	}
	return ordinal(inversion) + " inversion"
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
