package export

import (
	"math"
	"sort"

	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	tick  uint32
	off   bool
	key   uint8
	vel   uint8
	order int
}

func ticksAt(seconds float64) uint32 {
	perSecond := float64(constants.ExportTicks) * constants.ExportTempo / 60
	return uint32(math.Round(seconds * perSecond))
}

// ToSMF writes the raw note log as a single track at the default tempo.
// Every note is held for ExportNoteLength or until its key is struck again.
func ToSMF(notes []model.NoteEvent) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.ExportTicks)

	var msgs []timedMessage
	for i, n := range notes {
		start := n.RelativeTime
		end := start + constants.ExportNoteLength
		for _, next := range notes[i+1:] {
			if next.MidiNumber == n.MidiNumber && next.RelativeTime < end {
				end = next.RelativeTime
				break
			}
		}
		vel := n.Velocity
		if vel == 0 {
			vel = 1
		}
		msgs = append(msgs,
			timedMessage{tick: ticksAt(start), key: n.MidiNumber, vel: vel, order: i},
			timedMessage{tick: ticksAt(end), off: true, key: n.MidiNumber, order: i},
		)
	}

	// note offs go first when they share a tick with note ons
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		if msgs[i].off != msgs[j].off {
			return msgs[i].off
		}
		return msgs[i].order < msgs[j].order
	})

	var track smf.Track
	var last uint32
	for _, m := range msgs {
		var msg midi.Message
		if m.off {
			msg = midi.NoteOff(0, m.key)
		} else {
			msg = midi.NoteOn(0, m.key, m.vel)
		}
		track = append(track, smf.Event{Delta: m.tick - last, Message: smf.Message(msg)})
		last = m.tick
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}
