package chord

import (
	"github.com/jsphweid/noteflow/note"
)

type MatchKind string

const (
	KindChord    MatchKind = "chord"
	KindInterval MatchKind = "interval"
)

type MatchResult struct {
	Root      int
	Quality   string
	FullName  string
	Symbol    string
	Inversion int
	// semitones from the bass up to the root
	RootOffset int
	Intervals  []int
	Kind       MatchKind
	attached   bool
}

// DisplayName is the short label, "C maj" or "E5".
func (m MatchResult) DisplayName() string {
	root := note.ClassName(m.Root)
	if m.attached {
		return root + m.Symbol
	}
	return root + " " + m.Symbol
}

// LongName is the spelled-out label, "C Major".
func (m MatchResult) LongName() string {
	return note.ClassName(m.Root) + " " + m.FullName
}

type Matcher struct {
	lib *Library
}

func NewMatcher(lib *Library) *Matcher {
	return &Matcher{lib: lib}
}

// Match looks up a normalized interval set measured from the bass. Root
// position shapes are tried before any inversion; within each pass the
// first declared template wins.
func (m *Matcher) Match(intervals []int, bass int) (MatchResult, bool) {
	if len(intervals) == 0 {
		panic("chord.Match called with an empty interval set")
	}
	bass = mod12(bass)

	for _, s := range m.lib.roots {
		if sameSet(s.intervals, intervals) {
			return m.result(s, bass, len(intervals)), true
		}
	}
	for _, s := range m.lib.inversions {
		if sameSet(s.intervals, intervals) {
			return m.result(s, bass, len(intervals)), true
		}
	}
	return MatchResult{}, false
}

func (m *Matcher) result(s shape, bass int, size int) MatchResult {
	t := m.lib.templates[s.template]
	offset := mod12(12 - mod12(t.Intervals[s.rotation]))
	kind := KindInterval
	if size >= 3 {
		kind = KindChord
	}
	return MatchResult{
		Root:       mod12(bass + offset),
		Quality:    t.Quality,
		FullName:   t.FullName,
		Symbol:     t.Symbol,
		Inversion:  s.rotation,
		RootOffset: offset,
		Intervals:  append([]int(nil), t.Intervals...),
		Kind:       kind,
		attached:   t.Attached,
	}
}
