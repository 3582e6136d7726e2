// Command boxsim runs a level headless for a fixed number of frames and
// prints where every box ended up.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/logger"
	"github.com/milk9111/boxworld/prefabs"
	"github.com/milk9111/boxworld/system"
)

type options struct {
	Level  string
	Frames int
	DT     float64
	Track  inputTrack
}

func main() {
	levelName := flag.String("level", "test_room", "level name in levels/ (basename, .yaml optional)")
	frames := flag.Int("frames", 600, "frames to simulate; 0 runs until the input track ends")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	input := flag.String("input", "", "input track, e.g. R:30,RJ:1,N:10,L:20")
	watch := flag.Bool("watch", false, "rerun whenever files under levels/ or prefabs/ change")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "log format (text, json)")
	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel, Format: *logFormat, Output: os.Stderr})

	track, err := parseTrack(*input)
	if err != nil {
		log.WithError(err).Fatal("bad input track")
	}
	opts := options{Level: *levelName, Frames: *frames, DT: *dt, Track: track}
	if opts.Frames <= 0 {
		opts.Frames = track.Len()
	}
	if opts.DT <= 0 {
		log.WithField("dt", opts.DT).Fatal("dt must be positive")
	}

	if err := simulate(opts, log, os.Stdout); err != nil {
		log.WithError(err).Error("simulation failed")
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchAndRerun(ctx, opts, log); err != nil {
		log.WithError(err).Fatal("watch failed")
	}
}

func watchAndRerun(ctx context.Context, opts options, log logrus.FieldLogger) error {
	w, err := prefabs.NewWatcher("levels", "prefabs")
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("watching levels/ and prefabs/ for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors:
			log.WithError(err).Warn("watcher error")
		case name := <-w.Events:
			changed := append([]string{name}, w.Drain()...)
			log.WithField("files", changed).Info("rerunning")
			if err := simulate(opts, log, os.Stdout); err != nil {
				log.WithError(err).Error("simulation failed")
			}
		}
	}
}

// simulate loads the level, runs it and writes the final boxes to out.
func simulate(opts options, log logrus.FieldLogger, out io.Writer) error {
	world, err := system.NewWorld(opts.Level, log)
	if err != nil {
		return err
	}

	respawns := 0
	for frame := 0; frame < opts.Frames; frame++ {
		res := world.Step(opts.DT, opts.Track.At(frame))
		respawns += len(res.Respawns)
	}

	log.WithFields(logrus.Fields{
		"level":    world.Level.Name,
		"frames":   world.Frame,
		"time":     world.Time,
		"respawns": respawns,
	}).Info("simulation finished")
	return writeReport(out, world)
}

func writeReport(out io.Writer, w *system.World) error {
	buf := make([]byte, 0, 64)
	for i, box := range w.Boxes.Walls() {
		id := boxworld.WallID(i + 1)
		buf = fmt.Appendf(buf[:0], "wall  %-3d %-14s ", id, w.Layout.WallSpec(id).Name)
		buf = box.AppendText(buf)
		if side := w.Boxes.WallProperties(id).OneWaySide; side != boxworld.SideNone {
			buf = fmt.Appendf(buf, " one-way=%s", side)
		}
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	for i, box := range w.Boxes.Actors() {
		id := boxworld.ActorID(i + 1)
		props := w.Boxes.ActorProperties(id)
		buf = fmt.Appendf(buf[:0], "actor %-3d %-14s ", id, w.Layout.ActorSpec(id).Name)
		buf = box.AppendText(buf)
		buf = fmt.Appendf(buf, " remainder=(%.2f, %.2f)", props.Remainder.X, props.Remainder.Y)
		if w.Riding(id) {
			buf = append(buf, " riding"...)
		}
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
