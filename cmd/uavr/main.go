// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ezrec/uavr/emulator"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"Assemble and run a program."`
		Asm asmCmd `cmd:"" help:"Assemble a program and list its code words."`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Source  string `arg:"" type:"existingfile" help:"Assembly source file."`
	Ticks   int    `default:"1000000" help:"Clock cycle budget for the run."`
	Trace   bool   `help:"Print the data bus trace after the run."`
	Verbose bool   `short:"v" help:"Verbose execution logging."`
	SP      uint16 `name:"sp" default:"65535" help:"Initial stack pointer."`
	Entry   uint16 `help:"Word address execution starts from."`
}

func (r *runCmd) Run() (err error) {
	inf, err := os.Open(r.Source)
	if err != nil {
		return
	}
	defer inf.Close()

	emu := emulator.New()
	emu.Verbose = r.Verbose
	emu.InitialSP = r.SP

	err = emu.Assemble(inf)
	if err != nil {
		return
	}

	emu.Reset()
	emu.PC = r.Entry

	err = emu.Run(r.Ticks)
	if err != nil {
		return
	}

	fmt.Print(emu.Core.String())

	if r.Trace {
		for _, event := range emu.Trace.Events() {
			fmt.Println(event)
		}
	}

	return
}

type asmCmd struct {
	Source string `arg:"" type:"existingfile" help:"Assembly source file."`
	Output string `short:"o" default:"-" help:"Listing output file, - for stdout."`
}

func (a *asmCmd) Run() (err error) {
	inf, err := os.Open(a.Source)
	if err != nil {
		return
	}
	defer inf.Close()

	emu := emulator.New()
	err = emu.Assemble(inf)
	if err != nil {
		return
	}

	ouf := os.Stdout
	if a.Output != "-" {
		ouf, err = os.Create(a.Output)
		if err != nil {
			return
		}
		defer ouf.Close()
	}

	for addr, code := range emu.Program.Codes() {
		fmt.Fprintf(ouf, "%04x: %04x\n", addr, code)
	}

	return
}
