package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := recorder.New(classify.Default())
	r.Start(1234.5)
	r.Ingest("C4", 60, 80, 1234.5)
	r.Ingest("E4", 64, 81, 1234.51)
	r.Ingest("G4", 67, 82, 1234.52)
	r.Ingest("C4", 60, 80, 1235.1)
	r.Ingest("D4", 62, 80, 1235.11)
	r.Ingest("E4", 64, 80, 1236)
	r.Ingest("F4", 65, 80, 1236.001)
	r.Ingest("F#4", 66, 80, 1236.002)
	r.Ingest("A3", 57, 60, 1240.25)
	r.Stop()
	rec := r.Snapshot()

	path := filepath.Join(t.TempDir(), "nested", "take.json")
	require.NoError(t, Save(path, rec))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, loaded.ID)
	assert.Equal(t, rec.NoteCount, loaded.NoteCount)
	assert.Equal(t, rec.Duration, loaded.Duration)
	assert.Equal(t, rec.ChordDetection, loaded.ChordDetection)
	assert.Equal(t, rec.Notes, loaded.Notes)
	assert.Equal(t, rec.Events, loaded.Events)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPathUsesDataDir(t *testing.T) {
	t.Setenv("DATA_PATH", "/tmp/takes")
	assert.Equal(t, "/tmp/takes/abc.json", DefaultPath("abc"))
}
