package cmd

import (
	"fmt"

	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/midi"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/spf13/cobra"
)

var importOpts recordOptions

func init() {
	importCmd.Flags().StringVar(&importOpts.out, "out", "", "where to save the recording (default: data dir)")
	importCmd.Flags().BoolVar(&importOpts.noChords, "no-chords", false, "record every note on its own")
	importCmd.Flags().Float64Var(&importOpts.window, "window", constants.GroupingWindow, "seconds between onsets of one chord")
	importCmd.Flags().StringVar(&importOpts.title, "title", "", "title stored as metadata")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid>",
	Short: "Imports a MIDI file as a recording",
	Long:  `Replays the note starts of a MIDI file through the recorder and saves the result`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := importMidi(args[0], importOpts)
		cobra.CheckErr(err)

		fmt.Println(recorder.TextView(rec.Events))
		path, err := saveRecording(rec, importOpts.out, importOpts.title)
		cobra.CheckErr(err)
		fmt.Printf("Saved %v notes to %v\n", rec.NoteCount, path)
	},
}

func importMidi(path string, opts recordOptions) (model.Recording, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Recording{}, err
	}

	r := recorder.New(classify.Default())
	r.SetChordDetection(!opts.noChords)
	r.SetGroupingWindow(opts.window)
	r.Start(0)
	for _, o := range midi.GetOnsets(parsed) {
		r.Ingest(o.Name, o.Key, o.Velocity, o.Time)
	}
	r.Stop()
	return r.Snapshot(), nil
}
