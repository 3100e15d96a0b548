// Command keyrain-term runs the toy in a terminal. Each cell stands for a
// cfg.Term.ScaleX x cfg.Term.ScaleY pixel block of the simulated viewport.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/automoto/keyrain/config"
	"github.com/charmbracelet/log"
)

func main() {
	debug := flag.Bool("debug", config.Debug.Enabled, "draw boundaries")
	mute := flag.Bool("mute", config.Audio.Muted, "disable sound cues")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "write logs to this file instead of discarding them")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal("open log file", "path", *logFile, "err", err)
		}
		defer f.Close()
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "keyrain-term",
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatal("bad -log-level", "value", *level, "err", err)
	}
	logger.SetLevel(lvl)
	log.SetDefault(logger)

	config.Debug.Enabled = *debug
	config.Audio.Muted = *mute

	t, err := newTerm()
	if err != nil {
		log.Fatal("terminal unavailable", "err", err)
	}
	if err := t.run(); err != nil {
		log.Error("terminal loop exited", "err", err)
		os.Exit(1)
	}
}
