package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/ttasm/asm"
	"github.com/sarchlab/ttasm/program"
	"github.com/sarchlab/ttasm/rom"
	"github.com/sarchlab/ttasm/verify"
)

//go:embed countdown.tta
var countdownSrc string

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))

	insts, err := asm.Parse(countdownSrc)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(1)
	}
	p := program.Program(insts)

	verify.GenerateReport("countdown", p).WriteReport(os.Stdout)

	engine := sim.NewSerialEngine()
	bench := rom.BenchBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithWidth(2).
		Build("Bench", program.NewImage(p))

	fetched, err := bench.Run()
	if err != nil {
		fmt.Println(err)
		atexit.Exit(1)
	}

	fmt.Println(program.RenderTable("countdown", program.Program(fetched)))

	if program.Program(fetched).Listing() == p.Listing() {
		fmt.Println("✅ Fetched program matches!")
	} else {
		fmt.Println("❌ Fetched program differs!")
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
