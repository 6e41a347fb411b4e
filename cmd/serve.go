package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/noteflow/chord"
	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/db"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/note"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/jsphweid/noteflow/section"
	"github.com/jsphweid/noteflow/store"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	catalog  *store.Store
	metadata *db.Client
	addr     string
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves classification and the recording catalog over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(LoadServeFiles())
		defer catalog.Close()
		serve(addr)
	},
}

// LoadServeFiles opens the catalog and, when configured, the metadata table.
func LoadServeFiles() error {
	var err error
	catalog, err = store.Open(constants.GetCatalogPath())
	if err != nil {
		return err
	}
	metadata, err = db.New()
	return err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		logrus.WithError(err).Error("request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}

	notes := make([]model.NoteEvent, 0, len(input.Notes))
	for _, n := range input.Notes {
		if n.Midi < 0 || n.Midi > 127 {
			writeError(w, http.StatusBadRequest, errors.Errorf("midi number %d is outside 0..127", n.Midi))
			return
		}
		name := n.Name
		if name == "" {
			name = note.Name(uint8(n.Midi))
		}
		notes = append(notes, model.NewNoteEvent(name, uint8(n.Midi), 100, 0, 0))
	}

	c := classify.Default().Classify(notes)
	writeJSON(w, http.StatusOK, model.ClassifyResponse{Classification: model.Tagged{Classification: c}})
}

func HandleListRecordings(w http.ResponseWriter, r *http.Request) {
	summaries, err := catalog.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if metadata != nil {
		if err := attachMetadata(summaries); err != nil {
			logrus.WithError(err).Warn("listing recordings without metadata")
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// batch gets are capped at 100 keys
func attachMetadata(summaries []model.RecordingSummary) error {
	for start := 0; start < len(summaries); start += 100 {
		end := start + 100
		if end > len(summaries) {
			end = len(summaries)
		}
		ids := make([]string, 0, end-start)
		for _, s := range summaries[start:end] {
			ids = append(ids, s.ID)
		}
		found, err := metadata.GetRecordingMetadatas(ids)
		if err != nil {
			return err
		}
		for i := start; i < end; i++ {
			if m, ok := found[summaries[i].ID]; ok {
				m := m
				summaries[i].Metadata = &m
			}
		}
	}
	return nil
}

func getRecording(w http.ResponseWriter, r *http.Request) (model.Recording, bool) {
	rec, err := catalog.Get(mux.Vars(r)["id"])
	if errors.Cause(err) == store.ErrNotFound {
		writeError(w, http.StatusNotFound, err)
		return rec, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return rec, false
	}
	return rec, true
}

func HandleGetRecording(w http.ResponseWriter, r *http.Request) {
	rec, ok := getRecording(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, model.RecordingResponse{
		Recording: rec,
		Text:      recorder.TextView(rec.Events),
		Sequence:  recorder.SequenceView(rec.Events),
	})
}

func HandleSections(w http.ResponseWriter, r *http.Request) {
	pause := constants.PauseThreshold
	if raw := r.URL.Query().Get("pause"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p < 0 {
			writeError(w, http.StatusBadRequest, errors.Errorf("pause %q is not a non-negative number", raw))
			return
		}
		pause = p
	}

	rec, ok := getRecording(w, r)
	if !ok {
		return
	}
	sections := section.Segment(rec.Events, pause)
	if sections == nil {
		sections = []model.Section{}
	}
	writeJSON(w, http.StatusOK, model.SectionsResponse{Pause: pause, Sections: sections})
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	key, err := chord.ParseChordKey(r.URL.Query().Get("chord"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	results, err := catalog.FindChord(key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SearchResponse{Key: key, Results: results})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	router.HandleFunc("/recordings", HandleListRecordings).Methods("GET")
	router.HandleFunc("/recordings/{id}", HandleGetRecording).Methods("GET")
	router.HandleFunc("/recordings/{id}/sections", HandleSections).Methods("GET")
	router.HandleFunc("/search", HandleSearch).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(addr string) {
	logrus.WithField("addr", addr).Info("serving")
	logrus.Fatal(http.ListenAndServe(addr, NewRouter()))
}
