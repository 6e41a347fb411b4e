package cmd

import (
	"github.com/jsphweid/noteflow/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noteflow",
	Short: "Records notes and names the chords in them",
	Long: `Records notes from a MIDI device or file, groups simultaneous notes
into chords and intervals, and splits a take into sections at pauses.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(constants.GetLogLevel())
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", constants.GetLogLevel())
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
