// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build sdl2

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/microvision/emulator"
	"github.com/ezrec/microvision/keypad"
	"github.com/ezrec/microvision/lcd"
)

// Keyboard rows 123 / QWE / ASD / ZXC mirror the 4x3 pad.
var keymap = map[sdl.Keycode]int{
	sdl.K_1: keypad.Index(0, 0), sdl.K_2: keypad.Index(0, 1), sdl.K_3: keypad.Index(0, 2),
	sdl.K_q: keypad.Index(1, 0), sdl.K_w: keypad.Index(1, 1), sdl.K_e: keypad.Index(1, 2),
	sdl.K_a: keypad.Index(2, 0), sdl.K_s: keypad.Index(2, 1), sdl.K_d: keypad.Index(2, 2),
	sdl.K_z: keypad.Index(3, 0), sdl.K_x: keypad.Index(3, 1), sdl.K_c: keypad.Index(3, 2),
}

// SDLWindow presents the console through SDL2: a streamed 16x16
// texture scaled to the window, and the buzzer as queued square wave
// audio. Queued audio needs no callback into Go, at the cost of up to
// one frame of latency, which the real piezo's grille muffles anyway.
type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	audio    sdl.AudioDeviceID

	event Event
	phase int
}

// New opens the host window and audio device.
func New(title string) (wind *SDLWindow, err error) {
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return
	}

	wind = &SDLWindow{event: Event{Turn: 50}}

	wind.window, err = sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		WIDTH, HEIGHT,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return
	}

	wind.renderer, err = sdl.CreateRenderer(wind.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return
	}

	wind.texture, err = wind.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		lcd.WIDTH, lcd.HEIGHT,
	)
	if err != nil {
		return
	}

	wind.audio, err = sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     AUDIO_HZ,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  AUDIO_HZ / emulator.FRAME_HZ,
	}, nil, 0)
	if err != nil {
		return
	}
	sdl.PauseAudioDevice(wind.audio, false)

	return
}

// HandleEvents drains the SDL event queue. Arrow keys nudge the paddle
// knob; escape or closing the window quits.
func (wind *SDLWindow) HandleEvents() (quit bool, event Event) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			down := ev.Type == sdl.KEYDOWN

			if key, ok := keymap[ev.Keysym.Sym]; ok {
				if down {
					wind.event.Keys |= 1 << key
				} else {
					wind.event.Keys &^= 1 << key
				}
				continue
			}

			if !down {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				quit = true
			case sdl.K_LEFT:
				wind.event.Turn = max(wind.event.Turn-5, 0)
			case sdl.K_RIGHT:
				wind.event.Turn = min(wind.event.Turn+5, 100)
			}
		}
	}

	return quit, wind.event
}

// Update streams the frame to the texture and queues the frame's
// buzzer audio.
func (wind *SDLWindow) Update(frame [lcd.HEIGHT][lcd.WIDTH]uint8, pitch int) (err error) {
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return
	}
	for y := range lcd.HEIGHT {
		for x := range lcd.WIDTH {
			// Dark segments over the pale green backplane.
			level := frame[y][x]
			off := (y*lcd.WIDTH + x) * 4
			pixels[off+0] = 0xb0 - min(level, 0xa0) // b
			pixels[off+1] = 0xc8 - min(level, 0xb8) // g
			pixels[off+2] = 0xc0 - min(level, 0xb0) // r
			pixels[off+3] = 0xff
		}
	}
	wind.texture.Unlock()

	if err = wind.renderer.Clear(); err != nil {
		return
	}
	if err = wind.renderer.Copy(wind.texture, nil, nil); err != nil {
		return
	}
	wind.renderer.Present()

	return wind.queueTone(pitch)
}

// queueTone appends one frame of square wave at the given pitch.
func (wind *SDLWindow) queueTone(pitch int) (err error) {
	samples := AUDIO_HZ / emulator.FRAME_HZ
	buf := make([]byte, samples*2)

	if pitch <= 0 {
		wind.phase = 0
		return sdl.QueueAudio(wind.audio, buf)
	}

	for at := 0; at < samples; at++ {
		value := int16(0x4000)
		if wind.phase >= AUDIO_HZ/2 {
			value = -0x4000
		}
		buf[at*2] = byte(value)
		buf[at*2+1] = byte(value >> 8)
		wind.phase = (wind.phase + pitch) % AUDIO_HZ
	}

	return sdl.QueueAudio(wind.audio, buf)
}

// Close releases the window, renderer, texture, and audio device.
func (wind *SDLWindow) Close() (err error) {
	sdl.CloseAudioDevice(wind.audio)
	wind.texture.Destroy()
	wind.renderer.Destroy()
	wind.window.Destroy()
	sdl.Quit()
	return
}
