// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Event is one scripted input action, applied when the emulator reaches
// its frame.
type Event struct {
	Frame uint64
	Verb  string
	Arg   string
}

// Script is a timed list of input events, for headless reproduction
// runs and scenario tests. One event per line:
//
//	# frame  verb   argument
//	10       press  1
//	13       release 1
//	50       turn   75
//
// Verbs are press and release, taking an overlay key label, and turn,
// taking a paddle position percentage. Blank lines and lines starting
// with '#' are ignored.
type Script struct {
	Events []Event

	next int
}

// ParseScript reads a script, ordering the events by frame.
func ParseScript(input io.Reader) (script *Script, err error) {
	script = &Script{}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if at := strings.IndexRune(line, '#'); at >= 0 {
			line = line[:at]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		fail := func(err error) error {
			return &ErrScript{LineNo: lineno, Line: line, Err: err}
		}

		if len(words) < 2 {
			return nil, fail(ErrScriptVerb)
		}

		frame, err := strconv.ParseUint(words[0], 0, 64)
		if err != nil {
			return nil, fail(ErrScriptFrame)
		}

		verb := strings.ToLower(words[1])
		switch verb {
		case "press", "release":
			if len(words) != 3 {
				return nil, fail(ErrScriptArgs)
			}
		case "turn":
			if len(words) != 3 {
				return nil, fail(ErrScriptArgs)
			}
			if _, err := strconv.Atoi(words[2]); err != nil {
				return nil, fail(ErrScriptArgs)
			}
		default:
			return nil, fail(ErrScriptVerb)
		}

		script.Events = append(script.Events, Event{
			Frame: frame,
			Verb:  verb,
			Arg:   words[2],
		})
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(script.Events, func(a, b Event) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})

	return
}

// Rewind makes the script replayable from the first event.
func (script *Script) Rewind() {
	script.next = 0
}

// Apply carries out every event due at or before the given frame.
func (script *Script) Apply(emu *Emulator, frame uint64) (err error) {
	for script.next < len(script.Events) {
		event := script.Events[script.next]
		if event.Frame > frame {
			return
		}
		script.next++

		switch event.Verb {
		case "press":
			err = emu.Press(event.Arg)
		case "release":
			err = emu.Release(event.Arg)
		case "turn":
			percent, _ := strconv.Atoi(event.Arg)
			emu.Paddle.SetTurn(percent)
		}
		if err != nil {
			return
		}
	}
	return
}
