package emulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/microvision/tms1100"
)

func TestParseScript(t *testing.T) {
	assert := assert.New(t)

	script, err := ParseScript(strings.NewReader(strings.Join([]string{
		"# stock pad, key 5 tapped, knob to three quarters",
		"",
		"20 turn 75",
		"10 press 5",
		"13 release 5",
	}, "\n")))
	assert.NoError(err)

	expected := []Event{
		{10, "press", "5"},
		{13, "release", "5"},
		{20, "turn", "75"},
	}
	assert.Equal(expected, script.Events)
}

func TestParseScript_Errors(t *testing.T) {
	table := [](struct {
		name string
		line string
		err  error
	}){
		{"bare frame", "10", ErrScriptVerb},
		{"bad frame", "soon press 5", ErrScriptFrame},
		{"bad verb", "10 poke 5", ErrScriptVerb},
		{"press args", "10 press", ErrScriptArgs},
		{"press extra", "10 press 5 6", ErrScriptArgs},
		{"turn args", "10 turn", ErrScriptArgs},
		{"turn value", "10 turn lots", ErrScriptArgs},
	}

	for _, entry := range table {
		assert := assert.New(t)

		_, err := ParseScript(strings.NewReader(entry.line))
		assert.ErrorIs(err, entry.err, entry.name)

		var script *ErrScript
		assert.ErrorAs(err, &script, entry.name)
		assert.Equal(1, script.LineNo, entry.name)
	}
}

func TestScript_Apply(t *testing.T) {
	assert := assert.New(t)

	emu := emulatorFor(t, "spin: BR spin")

	script, err := ParseScript(strings.NewReader(strings.Join([]string{
		"0 press 5",
		"2 release 5",
		"2 turn 75",
	}, "\n")))
	assert.NoError(err)

	key := 4 // overlay "5", row 1 col 1

	assert.NoError(script.Apply(emu, 0))
	assert.True(emu.Keypad.Pressed(key))
	assert.Zero(emu.Paddle.Turn())

	// Nothing is due at frame 1.
	assert.NoError(script.Apply(emu, 1))
	assert.True(emu.Keypad.Pressed(key))

	assert.NoError(script.Apply(emu, 2))
	assert.False(emu.Keypad.Pressed(key))
	assert.Equal(75, emu.Paddle.Turn())

	// A rewound script replays from the start.
	script.Rewind()
	assert.NoError(script.Apply(emu, 0))
	assert.True(emu.Keypad.Pressed(key))
}

func TestScript_ApplyUnknownKey(t *testing.T) {
	assert := assert.New(t)

	emu := emulatorFor(t, "spin: BR spin")

	script, err := ParseScript(strings.NewReader("0 press FIRE"))
	assert.NoError(err)

	assert.ErrorIs(script.Apply(emu, 0), ErrKey("FIRE"))
}

func TestScript_Run(t *testing.T) {
	assert := assert.New(t)

	// Sample the keypad each frame; halt once a key reads back.
	emu := emulatorFor(t,
		"LDX 0",
		"poll: TCY 9",
		"SETR",
		"TKA",
		"KNEZ",
		"BR hit",
		"BR poll",
		"hit: TAY",
		"spin: BR spin",
	)
	emu.Turbo = true
	emu.Linger = true

	script, err := ParseScript(strings.NewReader("2 press 5"))
	assert.NoError(err)
	emu.Script = script

	for emu.Cpu.State == tms1100.STATE_RUNNING {
		assert.NoError(emu.Script.Apply(emu, emu.Frames))
		assert.NoError(emu.RunFrame())
		if emu.Frames > 10 {
			t.Fatal("script never hit")
		}
	}

	assert.Equal(uint8(1<<1), emu.Cpu.Y)
}
