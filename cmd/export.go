package cmd

import (
	"fmt"

	"github.com/jsphweid/noteflow/export"
	"github.com/jsphweid/noteflow/file"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <recording.json> <out.mid>",
	Short: "Exports a recording as a MIDI file",
	Long:  `Writes the raw notes of a saved recording to a Standard MIDI File`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := file.Load(args[0])
		cobra.CheckErr(err)
		err = export.ToSMF(rec.Notes).WriteFile(args[1])
		cobra.CheckErr(errors.Wrapf(err, "could not write %s", args[1]))
		fmt.Printf("Exported %v notes to %v\n", len(rec.Notes), args[1])
	},
}
