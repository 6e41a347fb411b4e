package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/note"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/jsphweid/noteflow/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalog(t *testing.T) model.Recording {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	catalog = s
	metadata = nil
	t.Cleanup(func() { s.Close() })

	r := recorder.New(classify.Default())
	r.Start(0)
	for _, key := range []uint8{60, 64, 67} {
		r.Ingest(note.Name(key), key, 80, 0)
	}
	r.Ingest("A4", 69, 80, 1)
	r.Ingest("F4", 65, 80, 4)
	r.Stop()
	rec := r.Snapshot()
	require.NoError(t, catalog.Put(rec))
	return rec
}

func do(t *testing.T, method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestClassifyCMajor(t *testing.T) {
	w := do(t, http.MethodPost, "/classify", `{"notes":[{"name":"C4","midi":60},{"name":"E4","midi":64},{"name":"G4","midi":67}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	ch, ok := res.Classification.Classification.(model.Chord)
	require.True(t, ok)
	assert.Equal(t, "C maj", ch.DisplayName())
	assert.Equal(t, 0, ch.Inversion)
}

func TestClassifyEmpty(t *testing.T) {
	w := do(t, http.MethodPost, "/classify", `{"notes":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.Empty{}, res.Classification.Classification)
}

func TestClassifyFillsMissingNames(t *testing.T) {
	w := do(t, http.MethodPost, "/classify", `{"notes":[{"midi":69}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.SingleNote{Name: "A4"}, res.Classification.Classification)
}

func TestClassifyRejectsBadInput(t *testing.T) {
	for _, body := range []string{`{"notes":[{"midi":128}]}`, `{"notes":[{"midi":-1}]}`, `not json`} {
		w := do(t, http.MethodPost, "/classify", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var res model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.NotEmpty(t, res.Error)
	}
}

func TestListAndGetRecording(t *testing.T) {
	rec := setupCatalog(t)

	w := do(t, http.MethodGet, "/recordings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.RecordingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
	assert.Equal(t, 5, list[0].NoteCount)
	assert.Nil(t, list[0].Metadata)

	w = do(t, http.MethodGet, "/recordings/"+rec.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got model.RecordingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, rec.ID, got.Recording.ID)
	assert.Len(t, got.Recording.Events, 3)
	assert.Equal(t, "[C maj] → A4 → F4", got.Sequence)
	assert.Contains(t, got.Text, "1. [Chord: C maj]")
}

func TestGetUnknownRecording(t *testing.T) {
	setupCatalog(t)
	w := do(t, http.MethodGet, "/recordings/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, http.MethodGet, "/recordings/nope/sections", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSections(t *testing.T) {
	rec := setupCatalog(t)

	w := do(t, http.MethodGet, "/recordings/"+rec.ID+"/sections", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res model.SectionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2.0, res.Pause)
	require.Len(t, res.Sections, 2)
	assert.Len(t, res.Sections[0].Events, 2)
	assert.Len(t, res.Sections[1].Events, 1)

	w = do(t, http.MethodGet, "/recordings/"+rec.ID+"/sections?pause=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Sections, 1)

	for _, pause := range []string{"abc", "-1"} {
		w = do(t, http.MethodGet, "/recordings/"+rec.ID+"/sections?pause="+pause, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, pause)
	}
}

func TestSearch(t *testing.T) {
	rec := setupCatalog(t)

	for _, key := range []string{"0:maj", "C:maj"} {
		w := do(t, http.MethodGet, "/search?chord="+key, "")
		require.Equal(t, http.StatusOK, w.Code)
		var res model.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "0:maj", res.Key)
		require.Len(t, res.Results, 1)
		assert.Equal(t, rec.ID, res.Results[0].RecordingID)
	}

	w := do(t, http.MethodGet, "/search?chord=2:min", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res model.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Results)

	w = do(t, http.MethodGet, "/search?chord=garbage", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
