package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/noteflow/classify"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/midi"
	"github.com/jsphweid/noteflow/model"
	"github.com/jsphweid/noteflow/note"
	"github.com/jsphweid/noteflow/recorder"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

type recordOptions struct {
	port     string
	out      string
	noChords bool
	window   float64
	title    string
}

var recordOpts recordOptions

func init() {
	recordCmd.Flags().StringVar(&recordOpts.port, "port", "0", "MIDI input port number or name (see devices)")
	recordCmd.Flags().StringVar(&recordOpts.out, "out", "", "where to save the recording (default: data dir)")
	recordCmd.Flags().BoolVar(&recordOpts.noChords, "no-chords", false, "record every note on its own")
	recordCmd.Flags().Float64Var(&recordOpts.window, "window", constants.GroupingWindow, "seconds between onsets of one chord")
	recordCmd.Flags().StringVar(&recordOpts.title, "title", "", "title stored as metadata")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Records from a MIDI input until interrupted",
	Long:  `Records from a MIDI input until interrupted, then saves and catalogs the take`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(record(recordOpts))
	},
}

func record(opts recordOptions) error {
	r := recorder.New(classify.Default())
	r.SetChordDetection(!opts.noChords)
	r.SetGroupingWindow(opts.window)

	// the driver calls back on its own goroutine
	var mu sync.Mutex
	begin := time.Now()
	elapsed := func() float64 {
		return time.Since(begin).Seconds()
	}

	refresh := func() {
		mu.Lock()
		seq := r.SequenceView()
		mu.Unlock()
		fmt.Println(seq)
	}
	debounced := debounce.New(250 * time.Millisecond)

	mu.Lock()
	r.Start(elapsed())
	mu.Unlock()

	stop, err := midi.Listen(opts.port, func(key uint8, velocity uint8) {
		mu.Lock()
		r.Ingest(note.Name(key), key, velocity, elapsed())
		mu.Unlock()
		debounced(refresh)
	})
	if err != nil {
		return err
	}
	logrus.WithField("port", opts.port).Info("recording, press ctrl-c to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	stop()

	// drop a refresh still waiting on the timer
	debounced(func() {})

	rec, text := finish(&mu, r)
	fmt.Println(text)
	path, err := saveRecording(rec, opts.out, opts.title)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %v notes to %v\n", rec.NoteCount, path)
	return nil
}

// finish stops r and reads the final record and view under one lock.
func finish(mu *sync.Mutex, r *recorder.Recorder) (model.Recording, string) {
	mu.Lock()
	defer mu.Unlock()
	r.Stop()
	return r.Snapshot(), r.TextView()
}
