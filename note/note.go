package note

import (
	"fmt"
	"strings"
)

// Names holds the sharp spelling of every pitch class, C = 0.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// Class returns the pitch class (0-11) of a MIDI note number.
func Class(midi uint8) int {
	return int(midi % 12)
}

// Name spells a MIDI note number with its octave, 60 -> "C4".
func Name(midi uint8) string {
	return fmt.Sprintf("%s%d", Names[midi%12], int(midi)/12-1)
}

// ClassName spells a pitch class. Values outside 0-11 wrap.
func ClassName(pc int) string {
	pc %= 12
	if pc < 0 {
		pc += 12
	}
	return Names[pc]
}

func StripOctave(name string) string {
	return strings.TrimRight(name, "0123456789-")
}

// ParseClass reads the pitch class out of a name like "C#4" or "Bb3".
func ParseClass(name string) (int, bool) {
	n := StripOctave(name)
	if sharp, ok := flatToSharp[n]; ok {
		n = sharp
	}
	for i, v := range Names {
		if v == n {
			return i, true
		}
	}
	return 0, false
}
