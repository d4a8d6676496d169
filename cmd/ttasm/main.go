// Command ttasm builds, disassembles, lints and fetches programs for the
// transport-triggered machine.
package main

import (
	"errors"
	"flag"
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

var errUsage = errors.New("usage: ttasm build|dis|lint|fetch [flags]")

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "build":
		return build(args[1:])
	case "dis":
		return dis(args[1:])
	case "lint":
		return lint(args[1:])
	case "fetch":
		return fetch(args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func build(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	in := fs.String("in", "", "YAML program file (default: sample program)")
	src := fs.String("asm", "", "assembly listing to build instead of YAML")
	mem := fs.String("mem", "bootmem.mem", "boot memory output file")
	lst := fs.String("lst", "", "listing output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := loadProgram(*in, *src)
	if err != nil {
		return err
	}

	if err := writeFile(*mem, func(f *os.File) error {
		return program.WriteBootMem(f, p)
	}); err != nil {
		return err
	}

	if *lst != "" {
		if err := writeFile(*lst, func(f *os.File) error {
			return program.WriteListing(f, p)
		}); err != nil {
			return err
		}
	}

	slog.Info("program built",
		"Insts", len(p),
		"Words", len(p.Words()),
		"Mem", *mem,
	)
	fmt.Println(program.RenderTable("Program", p))

	return nil
}

func dis(args []string) error {
	fs := flag.NewFlagSet("dis", flag.ContinueOnError)
	mem := fs.String("mem", "bootmem.mem", "boot memory file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := readBootMem(*mem)
	if err != nil {
		return err
	}

	return program.WriteListing(os.Stdout, p)
}

func lint(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	in := fs.String("in", "", "YAML program file (default: sample program)")
	src := fs.String("asm", "", "assembly listing to lint instead of YAML")
	out := fs.String("out", "", "also save the report to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := loadProgram(*in, *src)
	if err != nil {
		return err
	}

	name := *in
	if name == "" {
		name = *src
	}
	if name == "" {
		name = "sample"
	}

	report := verify.GenerateReport(name, p)
	report.WriteReport(os.Stdout)

	if *out != "" {
		if err := report.SaveReportToFile(*out); err != nil {
			return err
		}
	}

	if !report.Passed() {
		return fmt.Errorf("%s: lint found %d issue(s)", name, len(report.Issues))
	}

	return nil
}

func fetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	mem := fs.String("mem", "bootmem.mem", "boot memory file")
	width := fs.Int("width", 1, "words the ROM serves per cycle")
	trace := fs.Bool("trace", false, "log every served word")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *trace {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: rom.LevelTrace,
		})
		slog.SetDefault(slog.New(handler))
	}

	p, err := readBootMem(*mem)
	if err != nil {
		return err
	}

	bench := rom.BenchBuilder{}.
		WithEngine(sim.NewSerialEngine()).
		WithFreq(1 * sim.GHz).
		WithWidth(*width).
		Build("Bench", program.NewImage(p))

	insts, err := bench.Run()
	if err != nil {
		return err
	}

	fmt.Println(program.RenderTable(*mem, program.Program(insts)))
	fmt.Printf("served %d words in %.0f ns\n",
		bench.ROM.Served(), float64(bench.Engine.CurrentTime())*1e9)

	return nil
}

func loadProgram(yamlPath, asmPath string) (program.Program, error) {
	switch {
	case yamlPath != "" && asmPath != "":
		return nil, errors.New("-in and -asm are mutually exclusive")
	case yamlPath != "":
		return program.LoadYAMLFile(yamlPath)
	case asmPath != "":
		f, err := os.Open(asmPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		insts, err := asm.ParseReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", asmPath, err)
		}

		return program.Program(insts), nil
	default:
		return program.Sample(), nil
	}
}

func readBootMem(path string) (program.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := program.ReadBootMem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
