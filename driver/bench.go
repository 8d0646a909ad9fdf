package main

import (
	"fmt"
	"time"

	"github.com/Fantom-foundation/Hera/hera"
	"github.com/Fantom-foundation/Hera/interpreter/hvm"
	"github.com/Fantom-foundation/Hera/st"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"pgregory.net/rand"
)

var BenchCmd = cli.Command{
	Action:    doBench,
	Name:      "bench",
	Usage:     "Measure the execution rate of a single instruction",
	ArgsUsage: "<instruction>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "number of instruction executions to measure",
			Value: 1_000_000,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the random number generator",
		},
	},
}

func doBench(context *cli.Context) error {
	var name string
	if context.Args().Len() >= 1 {
		name = context.Args().Get(0)
	}
	op, ok := instructions[name]
	if !ok {
		return fmt.Errorf("invalid instruction %q, use one of: %v", name, instructionNames())
	}

	iterations := context.Int("iterations")
	if iterations <= 0 {
		iterations = 1_000_000
	}
	rnd := rand.New(context.Uint64("seed"))

	// A shared context reused across all iterations; each iteration gets a
	// fresh frame with random operands and enough gas for any instruction.
	env := hera.NewEnvironment(hera.BlockParameters{
		BlockNumber: 1000,
		Timestamp:   uint64(time.Now().Unix()),
		GasLimit:    8_000_000,
		BlockHashes: st.AncestorHashes(1000, hera.AncestorHashWindow),
	})
	storage := st.NewStorage()

	fmt.Printf("Benchmarking %s with %d iterations ...\n", name, iterations)
	start := time.Now()
	for i := 0; i < iterations; i++ {
		frame := hvm.NewFrame(hvm.FrameParameters{
			Gas:         30_000,
			Environment: env,
			Storage:     storage,
		})
		for j := 0; j < 3; j++ {
			if err := frame.Stack().Push(hera.RandWord(rnd)); err != nil {
				return err
			}
		}
		if err := op(frame); err != nil {
			return fmt.Errorf("executing %s failed: %w", name, err)
		}
		hvm.ReturnStack(frame.Stack())
	}
	duration := time.Since(start)

	rate := float64(iterations) / duration.Seconds()
	fmt.Printf(
		"Executed %d %s instructions in %v, ~%s instructions per second\n",
		iterations, name, duration.Round(time.Millisecond),
		unitconv.FormatPrefix(rate, unitconv.SI, 0),
	)
	return nil
}
