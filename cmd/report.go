package cmd

import (
	"fmt"

	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/store"
	"github.com/jsphweid/noteflow/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the recordings in the catalog and the chord qualities they contain`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(report())
	},
}

func report() error {
	catalog, err := store.Open(constants.GetCatalogPath())
	if err != nil {
		return err
	}
	defer catalog.Close()

	recordings, err := catalog.List()
	if err != nil {
		return err
	}
	counts, err := catalog.QualityCounts()
	if err != nil {
		return err
	}

	var noteCounts []int
	for _, r := range recordings {
		noteCounts = append(noteCounts, r.NoteCount)
	}
	fmt.Printf("recordings: %v\n", len(recordings))
	fmt.Printf("notes: %v\n", util.Sum(noteCounts))
	fmt.Printf("chords: %v\n", util.Sum(util.Values(counts)))
	for _, quality := range util.GetKeys(counts) {
		fmt.Printf("  %v: %v\n", quality, counts[quality])
	}
	return nil
}
