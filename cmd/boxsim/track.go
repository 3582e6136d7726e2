package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/boxworld/system"
)

// trackStep holds one input for a number of frames.
type trackStep struct {
	Input  system.Input
	Frames int
}

// inputTrack is a scripted sequence of inputs, e.g. "R:30,RJ:1,N:10,L:20".
// Keys: R right, L left, U up, D down, J jump, N nothing.
type inputTrack []trackStep

func parseTrack(s string) (inputTrack, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var track inputTrack
	for _, tok := range strings.Split(s, ",") {
		keys, count, ok := strings.Cut(strings.TrimSpace(tok), ":")
		if !ok {
			return nil, fmt.Errorf("input %q: want KEYS:FRAMES", tok)
		}
		frames, err := strconv.Atoi(count)
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("input %q: invalid frame count", tok)
		}
		in, err := parseKeys(keys)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", tok, err)
		}
		track = append(track, trackStep{Input: in, Frames: frames})
	}
	return track, nil
}

func parseKeys(keys string) (system.Input, error) {
	var in system.Input
	if keys == "" {
		return in, fmt.Errorf("no keys")
	}
	for _, k := range strings.ToUpper(keys) {
		switch k {
		case 'R':
			in.MoveX++
		case 'L':
			in.MoveX--
		case 'U':
			in.MoveY--
		case 'D':
			in.MoveY++
		case 'J':
			in.Jump = true
		case 'N':
		default:
			return in, fmt.Errorf("unknown key %q", k)
		}
	}
	return in, nil
}

// At returns the input for a zero-based frame. Frames past the end are idle.
func (t inputTrack) At(frame int) system.Input {
	for _, step := range t {
		if frame < step.Frames {
			return step.Input
		}
		frame -= step.Frames
	}
	return system.Input{}
}

// Len is the number of frames the track covers.
func (t inputTrack) Len() int {
	n := 0
	for _, step := range t {
		n += step.Frames
	}
	return n
}
