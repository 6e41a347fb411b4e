package midi

import (
	"bytes"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/noteflow/note"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Onset is a note start in a MIDI file, Time in seconds from the start.
type Onset struct {
	Name     string
	Key      uint8
	Velocity uint8
	Time     float64
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = errors.Errorf("panic parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

// GetOnsets collects note starts from every track, ordered by time. Notes
// struck at the same instant keep track order.
func GetOnsets(s *smf.SMF) []Onset {
	var onsets []Onset
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				onsets = append(onsets, Onset{
					Name:     note.Name(key),
					Key:      key,
					Velocity: velocity,
					// TimeAt is in microseconds
					Time: float64(s.TimeAt(absTicks)) / 1e6,
				})
			}
		}
	}

	sort.SliceStable(onsets, func(i, j int) bool {
		return onsets[i].Time < onsets[j].Time
	})
	return onsets
}

// Port is a MIDI input as the driver lists it.
type Port struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// ListInputs returns the input ports of the registered driver.
func ListInputs() []Port {
	var res []Port
	for _, in := range gomidi.GetInPorts() {
		res = append(res, Port{Number: in.Number(), Name: in.String()})
	}
	return res
}

// FindPort resolves a port number or a name. Names match exactly first,
// then as a case-insensitive substring.
func FindPort(ports []Port, query string) (Port, error) {
	if n, err := strconv.Atoi(query); err == nil {
		for _, p := range ports {
			if p.Number == n {
				return p, nil
			}
		}
		return Port{}, errors.Errorf("no midi input with number %d", n)
	}

	for _, p := range ports {
		if p.Name == query {
			return p, nil
		}
	}
	q := strings.ToLower(query)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return p, nil
		}
	}
	return Port{}, errors.Errorf("no midi input named %q", query)
}

// Listen opens the input matching port (a number or a name) and calls
// onNote for every note start until the returned stop func is called.
func Listen(port string, onNote func(key uint8, velocity uint8)) (func(), error) {
	p, err := FindPort(ListInputs(), port)
	if err != nil {
		return nil, err
	}
	in, err := gomidi.InPort(p.Number)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open midi input %d", p.Number)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			onNote(key, vel)
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't listen to %v", in)
	}

	return func() {
		stop()
		gomidi.CloseDriver()
	}, nil
}
