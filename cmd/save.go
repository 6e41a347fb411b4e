package cmd

import (
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/db"
	"github.com/jsphweid/noteflow/file"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/store"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// saveRecording writes rec to out (or the data dir), catalogs it, and
// stores its title when metadata is enabled. It returns the file path.
func saveRecording(rec model.Recording, out string, title string) (string, error) {
	path := out
	if path == "" {
		path = file.DefaultPath(rec.ID)
	}
	if err := file.Save(path, rec); err != nil {
		return "", err
	}

	catalog, err := store.Open(constants.GetCatalogPath())
	if err != nil {
		return path, err
	}
	defer catalog.Close()
	if err := catalog.Put(rec); err != nil {
		return path, err
	}

	if title == "" {
		return path, nil
	}
	metadata, err := db.New()
	if err != nil {
		return path, err
	}
	if metadata == nil {
		logrus.Warn("DYNAMO_ENDPOINT is not set, title not stored")
		return path, nil
	}
	err = metadata.PutRecordingMetadata(rec.ID, model.RecordingMetadata{Title: title})
	return path, errors.Wrap(err, "recording saved without metadata")
}
