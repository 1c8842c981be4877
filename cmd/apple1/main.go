// Command apple1 boots an Apple-1 style machine on the current
// terminal: RAM from zero, a monitor ROM, and the PIA mapped keyboard
// and display. Ctrl-R resets the machine, Ctrl-L clears the screen and
// Ctrl-C exits the emulator.
package main

import (
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/pmerrill/65xx/apple1"
	"github.com/pmerrill/65xx/cpu"
	"github.com/pmerrill/65xx/pia6820"
)

func main() {
	app := &cli.App{
		Name:  "apple1",
		Usage: "Apple-1 style 65xx machine on the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "monitor ROM image (raw binary)",
			},
			&cli.IntFlag{
				Name:  "rom-base",
				Usage: "load address of the ROM image",
				Value: 0xFF00,
			},
			&cli.IntFlag{
				Name:  "pia-base",
				Usage: "base address of the PIA registers",
				Value: int(apple1.DefaultPIABase),
			},
			&cli.IntFlag{
				Name:  "ram-end",
				Usage: "top of contiguous RAM from 0x0000",
				Value: int(apple1.DefaultRAMEnd),
			},
			&cli.BoolFlag{
				Name:  "nmos",
				Usage: "emulate the NMOS 6502 instead of the 65C02",
			},
			&cli.Int64Flag{
				Name:  "hz",
				Usage: "throttle to this many CPU cycles per second (0 = flat out)",
				Value: 1000000,
			},
			&cli.StringFlag{
				Name:  "load",
				Usage: "hex record file to load into RAM before starting",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	romPath := ctx.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(ctx)
		return cli.Exit("a ROM image is required", 2)
	}
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	variant := cpu.CPU_CMOS
	if ctx.Bool("nmos") {
		variant = cpu.CPU_NMOS
	}

	console := pia6820.NewConsole()
	m, err := apple1.New(&apple1.Def{
		Variant:  variant,
		RAMEnd:   uint16(ctx.Int("ram-end")),
		ROM:      rom,
		ROMBase:  uint16(ctx.Int("rom-base")),
		PIABase:  uint16(ctx.Int("pia-base")),
		Keyboard: console,
		Display:  console,
		ClockHz:  ctx.Int64("hz"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if path := ctx.String("load"); path != "" {
		low, high, err := m.Mem.LoadHexFile(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		log.Printf("loaded %s: 0x%04X-0x%04X", path, low, high)
	}

	if err := console.Raw(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer console.Restore()

	if err := m.Run(); err != nil {
		console.Restore()
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
