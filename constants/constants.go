package constants

import (
	"os"
	"path/filepath"
)

func GetDataDir() string {
	path := os.Getenv("DATA_PATH")
	if path != "" {
		return path
	}
	return "./recordings"
}

func GetCatalogPath() string {
	path := os.Getenv("CATALOG_PATH")
	if path != "" {
		return path
	}
	return filepath.Join(GetDataDir(), "catalog.db")
}

// GetDynamoEndpoint returns "" when metadata lookups are disabled.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// onsets closer than this (seconds) belong to the same cluster
const GroupingWindow = 0.05

// gap (seconds) between events that starts a new section
const PauseThreshold = 2.0

const MetadataTable = "noteflow-metadata"

// SMF export settings. 960 ticks per quarter at 120 BPM is 1920 ticks a second.
const ExportTempo = 120
const ExportTicks = 960

// seconds a note sounds in an exported file unless the same key is struck again
const ExportNoteLength = 0.5
