package model

import "encoding/json"

// Event is a classified cluster stamped with the time of its first onset.
type Event struct {
	Classification Classification
	Timestamp      float64
	RelativeTime   float64
}

type eventJSON struct {
	classificationJSON
	Timestamp    float64 `json:"timestamp"`
	RelativeTime float64 `json:"relative_time"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		classificationJSON: encodeClassification(e.Classification),
		Timestamp:          e.Timestamp,
		RelativeTime:       e.RelativeTime,
	})
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var ej eventJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	c, err := ej.decode()
	if err != nil {
		return err
	}
	e.Classification = c
	e.Timestamp = ej.Timestamp
	e.RelativeTime = ej.RelativeTime
	return nil
}

// Section is a run of events with no internal gap above the pause
// threshold it was cut with.
type Section struct {
	Events []Event `json:"events"`
}

func (s Section) Start() float64 {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[0].RelativeTime
}

func (s Section) End() float64 {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].RelativeTime
}
