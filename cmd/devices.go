package cmd

import (
	"fmt"

	"github.com/jsphweid/noteflow/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists MIDI inputs",
	Long:  `Lists the MIDI inputs that record --port accepts, by number or name`,
	Run: func(cmd *cobra.Command, args []string) {
		ports := midi.ListInputs()
		if len(ports) == 0 {
			fmt.Println("No MIDI inputs found")
			return
		}
		for _, p := range ports {
			fmt.Printf("%d: %s\n", p.Number, p.Name)
		}
	},
}
