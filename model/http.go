package model

type ClassifyNote struct {
	Name string `json:"name"`
	Midi int    `json:"midi"`
}

type ClassifyRequestBody struct {
	Notes []ClassifyNote `json:"notes"`
}

type ClassifyResponse struct {
	Classification Tagged `json:"classification"`
}

type RecordingResponse struct {
	Recording Recording `json:"recording"`
	Text      string    `json:"text"`
	Sequence  string    `json:"sequence"`
}

type SectionsResponse struct {
	Pause    float64   `json:"pause"`
	Sections []Section `json:"sections"`
}

type SearchResponse struct {
	Key     string            `json:"key"`
	Results []ChordOccurrence `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
