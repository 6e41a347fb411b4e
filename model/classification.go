package model

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindEmpty    Kind = "empty"
	KindNote     Kind = "note"
	KindInterval Kind = "interval"
	KindChord    Kind = "chord"
	KindNotes    Kind = "notes"
)

// Classification is one of Empty, SingleNote, IntervalPair, Chord or
// UnclassifiedGroup. The set is closed.
type Classification interface {
	Kind() Kind
	DisplayName() string
	FullName() string
	NoteNames() []string
	isClassification()
}

type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }
func (Empty) DisplayName() string { return "" }
func (Empty) FullName() string { return "" }
func (Empty) NoteNames() []string { return nil }
func (Empty) isClassification() {}

type SingleNote struct {
	Name string `json:"name"`
}

func (SingleNote) Kind() Kind { return KindNote }
func (n SingleNote) DisplayName() string { return n.Name }
func (n SingleNote) FullName() string { return n.Name }
func (n SingleNote) NoteNames() []string { return []string{n.Name} }
func (SingleNote) isClassification() {}

// IntervalPair is two simultaneous notes that matched no template.
type IntervalPair struct {
	Notes []string `json:"notes"`
}

func (IntervalPair) Kind() Kind { return KindInterval }
func (p IntervalPair) DisplayName() string { return strings.Join(p.Notes, " + ") }
func (p IntervalPair) FullName() string { return strings.Join(p.Notes, " and ") }
func (p IntervalPair) NoteNames() []string { return append([]string(nil), p.Notes...) }
func (IntervalPair) isClassification() {}

// UnclassifiedGroup is three or more simultaneous notes that matched no
// template.
type UnclassifiedGroup struct {
	Notes []string `json:"notes"`
}

func (UnclassifiedGroup) Kind() Kind { return KindNotes }
func (g UnclassifiedGroup) DisplayName() string { return strings.Join(g.Notes, " and ") }
func (g UnclassifiedGroup) FullName() string { return strings.Join(g.Notes, " and ") }
func (g UnclassifiedGroup) NoteNames() []string { return append([]string(nil), g.Notes...) }
func (UnclassifiedGroup) isClassification() {}

type Chord struct {
	Root      int    `json:"root"`
	RootName  string `json:"root_name"`
	Quality   string `json:"quality"`
	Inversion int    `json:"inversion"`
	Bass      int    `json:"bass"`
	BassName  string `json:"bass_note"`
	// arrival order
	Notes     []string `json:"notes"`
	Display   string   `json:"display_name"`
	Full      string   `json:"full_name"`
	Intervals []int    `json:"pattern"`
	// "chord" for three or more pitch classes, "interval" for two
	MatchKind string `json:"match_kind"`
}

func (Chord) Kind() Kind { return KindChord }
func (c Chord) DisplayName() string { return c.Display }
func (c Chord) FullName() string { return c.Full }
func (c Chord) NoteNames() []string { return append([]string(nil), c.Notes...) }
func (Chord) isClassification() {}

// classificationJSON is the tagged form every variant is written as.
type classificationJSON struct {
	Type        Kind     `json:"type"`
	DisplayName string   `json:"display_name"`
	FullName    string   `json:"full_name"`
	Notes       []string `json:"notes"`
	Chord       *Chord   `json:"chord,omitempty"`
}

func encodeClassification(c Classification) classificationJSON {
	if c == nil {
		c = Empty{}
	}
	res := classificationJSON{
		Type:        c.Kind(),
		DisplayName: c.DisplayName(),
		FullName:    c.FullName(),
		Notes:       c.NoteNames(),
	}
	if ch, ok := c.(Chord); ok {
		res.Chord = &ch
	}
	return res
}

func (cj classificationJSON) decode() (Classification, error) {
	switch cj.Type {
	case KindEmpty, "":
		return Empty{}, nil
	case KindNote:
		if len(cj.Notes) != 1 {
			return nil, errors.Errorf("note classification has %d notes", len(cj.Notes))
		}
		return SingleNote{Name: cj.Notes[0]}, nil
	case KindInterval:
		return IntervalPair{Notes: cj.Notes}, nil
	case KindNotes:
		return UnclassifiedGroup{Notes: cj.Notes}, nil
	case KindChord:
		if cj.Chord == nil {
			return nil, errors.New("chord classification without chord body")
		}
		return *cj.Chord, nil
	}
	return nil, errors.Errorf("unknown classification type %q", cj.Type)
}

// Tagged wraps a Classification so it can be encoded on its own.
type Tagged struct {
	Classification
}

func (t Tagged) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeClassification(t.Classification))
}

func (t *Tagged) UnmarshalJSON(data []byte) error {
	var cj classificationJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	c, err := cj.decode()
	if err != nil {
		return err
	}
	t.Classification = c
	return nil
}
