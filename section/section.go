package section

import "github.com/jsphweid/noteflow/model"

// Segment cuts events into sections wherever the gap between consecutive
// events is larger than pause seconds.
func Segment(events []model.Event, pause float64) []model.Section {
	var sections []model.Section
	var current []model.Event
	for i, e := range events {
		if i > 0 && e.RelativeTime-events[i-1].RelativeTime > pause {
			sections = append(sections, model.Section{Events: current})
			current = nil
		}
		current = append(current, e)
	}
	if len(current) > 0 {
		sections = append(sections, model.Section{Events: current})
	}
	return sections
}
