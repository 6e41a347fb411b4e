package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jsphweid/noteflow/chord"
	"github.com/jsphweid/noteflow/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

var log = logrus.WithField("component", "store")

var ErrNotFound = errors.New("recording not found")

const schema = `
CREATE TABLE IF NOT EXISTS recordings (
	id TEXT PRIMARY KEY,
	recorded_at INTEGER NOT NULL,
	chord_detection BOOLEAN NOT NULL,
	note_count INTEGER NOT NULL,
	event_count INTEGER NOT NULL,
	duration REAL NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS chord_occurrences (
	recording_id TEXT NOT NULL,
	chord_key TEXT NOT NULL,
	quality TEXT NOT NULL,
	display TEXT NOT NULL,
	inversion INTEGER NOT NULL,
	relative_time REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chord_key ON chord_occurrences(chord_key);
CREATE INDEX IF NOT EXISTS idx_occurrence_recording ON chord_occurrences(recording_id);
`

// Store is the local catalog of saved recordings, with every chord event
// indexed by its chord key.
type Store struct {
	db *sql.DB
}

// Open creates the catalog at path if needed. ":memory:" works for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create catalog directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog")
	}
	// each connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create tables")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces a recording and its chord index.
func (s *Store) Put(rec model.Recording) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to encode recording")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO recordings
		(id, recorded_at, chord_detection, note_count, event_count, duration, body)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RecordedAt.UnixNano(), rec.ChordDetection, len(rec.Notes), len(rec.Events), rec.Duration, string(body))
	if err != nil {
		return errors.Wrapf(err, "failed to store recording %s", rec.ID)
	}

	if _, err := tx.Exec("DELETE FROM chord_occurrences WHERE recording_id = ?", rec.ID); err != nil {
		return errors.Wrapf(err, "failed to clear chord index for %s", rec.ID)
	}

	var indexed int
	for _, e := range rec.Events {
		c, ok := e.Classification.(model.Chord)
		if !ok {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO chord_occurrences
			(recording_id, chord_key, quality, display, inversion, relative_time)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, chord.CreateChordKey(c.Root, c.Quality), c.Quality, c.Display, c.Inversion, e.RelativeTime)
		if err != nil {
			return errors.Wrapf(err, "failed to index chord for %s", rec.ID)
		}
		indexed++
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit recording")
	}
	log.WithFields(logrus.Fields{"id": rec.ID, "chords": indexed}).Info("recording cataloged")
	return nil
}

func (s *Store) Get(id string) (model.Recording, error) {
	var rec model.Recording
	var body string
	err := s.db.QueryRow("SELECT body FROM recordings WHERE id = ?", id).Scan(&body)
	if err == sql.ErrNoRows {
		return rec, errors.Wrap(ErrNotFound, id)
	}
	if err != nil {
		return rec, errors.Wrapf(err, "failed to read recording %s", id)
	}
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return rec, errors.Wrapf(err, "failed to decode recording %s", id)
	}
	return rec, nil
}

// List returns every recording, newest first.
func (s *Store) List() ([]model.RecordingSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, recorded_at, note_count, event_count, duration
		FROM recordings ORDER BY recorded_at DESC, id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recordings")
	}
	defer rows.Close()

	res := make([]model.RecordingSummary, 0)
	for rows.Next() {
		var sum model.RecordingSummary
		var recordedAt int64
		if err := rows.Scan(&sum.ID, &recordedAt, &sum.NoteCount, &sum.EventCount, &sum.Duration); err != nil {
			return nil, errors.Wrap(err, "failed to scan recording")
		}
		sum.RecordedAt = time.Unix(0, recordedAt).UTC()
		res = append(res, sum)
	}
	return res, errors.Wrap(rows.Err(), "failed to list recordings")
}

// FindChord returns every occurrence of a chord key such as "0:maj".
func (s *Store) FindChord(key string) ([]model.ChordOccurrence, error) {
	rows, err := s.db.Query(`
		SELECT recording_id, display, inversion, relative_time
		FROM chord_occurrences WHERE chord_key = ?
		ORDER BY recording_id, relative_time`, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search chord %s", key)
	}
	defer rows.Close()

	res := make([]model.ChordOccurrence, 0)
	for rows.Next() {
		var o model.ChordOccurrence
		if err := rows.Scan(&o.RecordingID, &o.Display, &o.Inversion, &o.RelativeTime); err != nil {
			return nil, errors.Wrap(err, "failed to scan occurrence")
		}
		res = append(res, o)
	}
	return res, errors.Wrapf(rows.Err(), "failed to search chord %s", key)
}

// QualityCounts counts chord events per quality across the catalog.
func (s *Store) QualityCounts() (map[string]int, error) {
	rows, err := s.db.Query("SELECT quality, COUNT(*) FROM chord_occurrences GROUP BY quality")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count qualities")
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var quality string
		var count int
		if err := rows.Scan(&quality, &count); err != nil {
			return nil, errors.Wrap(err, "failed to scan quality count")
		}
		res[quality] = count
	}
	return res, errors.Wrap(rows.Err(), "failed to count qualities")
}
