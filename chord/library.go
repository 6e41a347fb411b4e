package chord

import (
	"github.com/pkg/errors"
)

const PowerChord = "5"

// Template is a named interval pattern measured from an assumed root.
type Template struct {
	Quality  string
	FullName string
	// Symbol is what follows the root in display names. It may differ from
	// Quality, which stays plain ASCII.
	Symbol    string
	Intervals []int
	// Attached symbols are written without a space, "E5" rather than "E 5".
	Attached bool
}

func (t Template) clone() Template {
	t.Intervals = append([]int(nil), t.Intervals...)
	return t
}

// shape is a template voiced with one of its members in the bass.
type shape struct {
	template  int
	rotation  int
	intervals []int
}

// Library is an immutable, ordered set of templates. Declaration order is
// the matching priority.
type Library struct {
	templates  []Template
	index      map[string]int
	roots      []shape
	inversions []shape
}

var defaultTemplates = []Template{
	// triads
	{Quality: "maj", FullName: "Major", Intervals: []int{0, 4, 7}},
	{Quality: "min", FullName: "Minor", Intervals: []int{0, 3, 7}},
	{Quality: "dim", FullName: "Diminished", Intervals: []int{0, 3, 6}},
	{Quality: "aug", FullName: "Augmented", Intervals: []int{0, 4, 8}},
	{Quality: "sus2", FullName: "Suspended 2nd", Intervals: []int{0, 2, 7}},
	{Quality: "sus4", FullName: "Suspended 4th", Intervals: []int{0, 5, 7}},

	// sevenths
	{Quality: "7", FullName: "Dominant 7th", Intervals: []int{0, 4, 7, 10}},
	{Quality: "maj7", FullName: "Major 7th", Intervals: []int{0, 4, 7, 11}},
	{Quality: "min7", FullName: "Minor 7th", Intervals: []int{0, 3, 7, 10}},
	{Quality: "dim7", FullName: "Diminished 7th", Intervals: []int{0, 3, 6, 9}},
	{Quality: "hdim7", FullName: "Half-Diminished 7th", Symbol: "ø7", Intervals: []int{0, 3, 6, 10}},
	{Quality: "mMaj7", FullName: "Minor-Major 7th", Intervals: []int{0, 3, 7, 11}},

	// extended
	{Quality: "9", FullName: "9th", Intervals: []int{0, 4, 7, 10, 14}},
	{Quality: "maj9", FullName: "Major 9th", Intervals: []int{0, 4, 7, 11, 14}},
	{Quality: "min9", FullName: "Minor 9th", Intervals: []int{0, 3, 7, 10, 14}},
	{Quality: "11", FullName: "11th", Intervals: []int{0, 4, 7, 10, 14, 17}},
	{Quality: "13", FullName: "13th", Intervals: []int{0, 4, 7, 10, 14, 17, 21}},
	{Quality: "add9", FullName: "Add 9", Intervals: []int{0, 4, 7, 14}},
	{Quality: "add11", FullName: "Add 11", Intervals: []int{0, 4, 7, 17}},

	{Quality: PowerChord, FullName: "Power Chord", Intervals: []int{0, 7}, Attached: true},
}

var defaultLibrary = MustNewLibrary(defaultTemplates)

// DefaultLibrary is the built-in table, shared and never modified.
func DefaultLibrary() *Library {
	return defaultLibrary
}

// NewLibrary validates and copies templates. Every rotation is
// precomputed here so matching is pure table comparison.
func NewLibrary(templates []Template) (*Library, error) {
	l := &Library{index: make(map[string]int, len(templates))}
	for i, t := range templates {
		if t.Quality == "" {
			return nil, errors.Errorf("template %d has no quality", i)
		}
		if _, ok := l.index[t.Quality]; ok {
			return nil, errors.Errorf("duplicate quality %q", t.Quality)
		}
		if len(t.Intervals) == 0 || t.Intervals[0] != 0 {
			return nil, errors.Errorf("quality %q must start at offset 0", t.Quality)
		}
		for j := 1; j < len(t.Intervals); j++ {
			if t.Intervals[j] <= t.Intervals[j-1] {
				return nil, errors.Errorf("quality %q intervals are not ascending", t.Quality)
			}
		}

		t = t.clone()
		if t.Symbol == "" {
			t.Symbol = t.Quality
		}
		l.index[t.Quality] = i
		l.templates = append(l.templates, t)
		l.roots = append(l.roots, shape{template: i, intervals: Normalize(t.Intervals)})
		for r := 1; r < len(t.Intervals); r++ {
			l.inversions = append(l.inversions, shape{
				template:  i,
				rotation:  r,
				intervals: rotate(t.Intervals, r),
			})
		}
	}
	return l, nil
}

func MustNewLibrary(templates []Template) *Library {
	l, err := NewLibrary(templates)
	if err != nil {
		panic("invalid chord library: " + err.Error())
	}
	return l
}

// rotate voices a template with member r in the bass.
func rotate(intervals []int, r int) []int {
	bass := intervals[r]
	shifted := make([]int, len(intervals))
	for i, d := range intervals {
		shifted[i] = d - bass
	}
	return Normalize(shifted)
}

func (l *Library) Len() int {
	return len(l.templates)
}

func (l *Library) Templates() []Template {
	res := make([]Template, len(l.templates))
	for i, t := range l.templates {
		res[i] = t.clone()
	}
	return res
}

func (l *Library) Lookup(quality string) (Template, bool) {
	i, ok := l.index[quality]
	if !ok {
		return Template{}, false
	}
	return l.templates[i].clone(), true
}
