package cmd

import (
	"fmt"

	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/file"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/spf13/cobra"
)

var inspectPause float64

func init() {
	inspectCmd.Flags().Float64Var(&inspectPause, "pause", constants.PauseThreshold, "seconds of silence that start a new section")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <recording.json>",
	Short: "Inspects a recording",
	Long:  `Prints the events, the sequence and the sections of a saved recording`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0], inspectPause))
	},
}

func inspect(path string, pause float64) error {
	rec, err := file.Load(path)
	if err != nil {
		return err
	}
	r := recorder.New(classify.Default())
	r.Restore(rec)

	fmt.Printf("id: %v\n", rec.ID)
	fmt.Printf("notes: %v, events: %v, duration: %.2fs\n\n", r.NoteCount(), len(r.Events()), r.Duration())
	fmt.Println(r.TextView())
	fmt.Printf("\n%v\n\n", r.SequenceView())
	for i, s := range r.DetectSections(pause) {
		fmt.Printf("Section %d (%.2fs - %.2fs): %v\n", i+1, s.Start(), s.End(), recorder.SequenceView(s.Events))
	}
	return nil
}
