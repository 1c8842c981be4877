// Command romtool converts between raw binary ROM images and the hex
// record text format the memory package loads (AAAA: BB BB ...).
package main

import (
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/pmerrill/65xx/memory"
)

func main() {
	app := &cli.App{
		Name:  "romtool",
		Usage: "convert 65xx memory images between binary and hex records",
		Commands: []*cli.Command{
			{
				Name:      "bin2hex",
				Usage:     "render a raw binary image as hex records",
				ArgsUsage: "IN.bin OUT.hex",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "base",
						Usage: "load address of the image",
					},
				},
				Action: bin2hex,
			},
			{
				Name:      "hex2bin",
				Usage:     "flatten hex records into a raw binary image",
				ArgsUsage: "IN.hex OUT.bin",
				Action:    hex2bin,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func bin2hex(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return cli.Exit("need input and output paths", 2)
	}
	in, out := ctx.Args().Get(0), ctx.Args().Get(1)
	base := uint16(ctx.Int("base"))

	data, err := os.ReadFile(in)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	m := memory.New()
	if err := m.MapRAM(0x0000, memory.LastAddress); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := m.LoadData(base, data); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	end := base + uint16(len(data)) - 1
	if err := m.SaveHexFile(out, base, end); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func hex2bin(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return cli.Exit("need input and output paths", 2)
	}
	in, out := ctx.Args().Get(0), ctx.Args().Get(1)

	m := memory.New()
	if err := m.MapRAM(0x0000, memory.LastAddress); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	low, high, err := m.LoadHexFile(in)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	data := make([]uint8, 0, int(high)-int(low)+1)
	for a := uint32(low); a <= uint32(high); a++ {
		data = append(data, m.Read(uint16(a)))
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log.Printf("wrote %d bytes (0x%04X-0x%04X)", len(data), low, high)
	return nil
}
