// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/microvision/cartridge"
	"github.com/ezrec/microvision/emulator"
	"github.com/ezrec/microvision/keypad"
	"github.com/ezrec/microvision/sound"
	"github.com/ezrec/microvision/tms1100"
	"github.com/ezrec/microvision/window"
)

func loadCartridge(name string, clock int, output string) (cart *cartridge.Cartridge, err error) {
	cart = cartridge.New()

	if clock > 0 {
		cart.Settings.Clock = clock
	}
	switch output {
	case "reversed":
		cart.Settings.Output = cartridge.OUTPUT_REVERSED
	case "normal":
		cart.Settings.Output = cartridge.OUTPUT_NORMAL
	default:
		return nil, fmt.Errorf("unknown output wiring %q", output)
	}

	err = cart.LoadFile(name)
	return
}

func runCommand() *cobra.Command {
	var verbose bool
	var turbo bool
	var linger bool
	var frames uint64
	var script string
	var record string
	var clock int
	var output string
	var onUndefined string

	cmd := &cobra.Command{
		Use:   "run <cartridge.bin>",
		Short: "Run a cartridge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cart, err := loadCartridge(args[0], clock, output)
			if err != nil {
				return
			}

			emu := emulator.New(cart)
			emu.Verbose = verbose
			emu.Turbo = turbo
			emu.Linger = linger

			switch onUndefined {
			case "noop":
				emu.Cpu.Policy = tms1100.POLICY_NOOP
			case "reset":
				emu.Cpu.Policy = tms1100.POLICY_RESET
			default:
				return fmt.Errorf("unknown undefined-opcode policy %q", onUndefined)
			}

			if script != "" {
				inf, err := os.Open(script)
				if err != nil {
					return err
				}
				emu.Script, err = emulator.ParseScript(inf)
				inf.Close()
				if err != nil {
					return err
				}
			}

			var recorder *sound.Recorder
			if record != "" {
				ouf, err := os.Create(record)
				if err != nil {
					return err
				}
				defer ouf.Close()
				recorder = sound.NewRecorder(ouf, window.AUDIO_HZ, emulator.FRAME_HZ)
				defer recorder.Close()
			}

			wind, err := window.New("Microvision: " + cart.Name)
			if err != nil {
				return
			}
			defer wind.Close()

			emu.Reset()
			sync := emulator.NewSynchronizer(emulator.FRAME_HZ)

			var held uint16
			for frames == 0 || emu.Frames < frames {
				quit, event := wind.HandleEvents()
				if quit {
					return nil
				}

				for key := range keypad.KEYS {
					bit := uint16(1) << key
					switch {
					case event.Keys&bit != 0 && held&bit == 0:
						emu.Keypad.Press(key)
					case event.Keys&bit == 0 && held&bit != 0:
						emu.Keypad.Release(key)
					}
				}
				held = event.Keys
				emu.Paddle.SetTurn(event.Turn)

				if emu.Script != nil {
					if err = emu.Script.Apply(emu, emu.Frames); err != nil {
						return
					}
				}

				if err = emu.RunFrame(); err != nil {
					if errors.Is(err, emulator.ErrHalted) {
						log.Printf("microvision: %v", err)
						return nil
					}
					return
				}

				if err = wind.Update(emu.Frame(), emu.Buzzer.Pitch); err != nil {
					return
				}
				if recorder != nil {
					if err = recorder.Frame(emu.Buzzer.Pitch); err != nil {
						return
					}
				}

				sync.FastForward = turbo
				sync.MaySleep()
			}

			return
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace executed instructions")
	cmd.Flags().BoolVarP(&turbo, "turbo", "t", false, "run unthrottled")
	cmd.Flags().BoolVar(&linger, "linger", false, "keep the console alive after the processor halts")
	cmd.Flags().Uint64VarP(&frames, "frames", "n", 0, "stop after this many frames, 0 for unlimited")
	cmd.Flags().StringVarP(&script, "script", "s", "", "timed input event script")
	cmd.Flags().StringVarP(&record, "record", "w", "", "record buzzer audio to a WAV file")
	cmd.Flags().IntVar(&clock, "clock", 0, "oscillator rate in hertz, 0 for stock")
	cmd.Flags().StringVar(&output, "output", "reversed", "output PLA wiring: reversed or normal")
	cmd.Flags().StringVar(&onUndefined, "on-undefined", "noop", "undefined opcode policy: noop or reset")

	return cmd
}

func asmCommand() *cobra.Command {
	var out string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "asm <source.asm>",
		Short: "Assemble a source file into a cartridge image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			asm := &tms1100.Assembler{Verbose: verbose}
			for name, value := range emulator.New(cartridge.New()).Defines() {
				asm.Predefine(name, value)
			}

			prog, err := asm.Parse(inf)
			if err != nil {
				return
			}

			return os.WriteFile(out, prog.Binary(), 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "a.bin", "cartridge image to write")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace assembler actions")

	return cmd
}

func dasmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dasm <cartridge.bin>",
		Short: "Disassemble a cartridge image in execution order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cart, err := loadCartridge(args[0], 0, "reversed")
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for ca := range uint8(2) {
				for pa := range uint8(16) {
					fmt.Fprintf(out, "; chapter %v page %v\n", ca, pa)
					for addr, inst := range cart.Rom.Walk(ca, pa) {
						fmt.Fprintf(out, "$%03x: %02x  %v\n", addr, inst.Word, inst)
					}
				}
			}

			return
		},
	}

	return cmd
}

func infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <cartridge.bin>",
		Short: "Identify a cartridge image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cart, err := loadCartridge(args[0], 0, "reversed")
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:     %v\n", cart.Name)
			fmt.Fprintf(out, "size:     %v\n", tms1100.ROM_WORDS)
			fmt.Fprintf(out, "checksum: 0x%04x\n", cart.Checksum())

			return
		},
	}

	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "microvision",
		Short: "Microvision handheld console emulator",
	}

	rootCmd.AddCommand(runCommand())
	rootCmd.AddCommand(asmCommand())
	rootCmd.AddCommand(dasmCommand())
	rootCmd.AddCommand(infoCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
