package file

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "file")

// DefaultPath is where a recording with this id lives in the data dir.
func DefaultPath(id string) string {
	return filepath.Join(constants.GetDataDir(), id+".json")
}

// Save writes rec as indented JSON, creating parent directories.
func Save(path string, rec model.Recording) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "could not create %s", dir)
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode recording")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	log.WithFields(logrus.Fields{"path": path, "notes": rec.NoteCount}).Info("recording saved")
	return nil
}

func Load(path string) (model.Recording, error) {
	var rec model.Recording
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, errors.Wrapf(err, "could not read %s", path)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, errors.Wrapf(err, "could not decode %s", path)
	}
	log.WithFields(logrus.Fields{"path": path, "notes": len(rec.Notes)}).Debug("recording loaded")
	return rec, nil
}
