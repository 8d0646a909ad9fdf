package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Hera/interpreter/hvm"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var StepCmd = cli.Command{
	Action:    doStep,
	Name:      "step",
	Usage:     "Execute a single instruction on a frame loaded from a json file",
	ArgsUsage: "<instruction> <state-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "write the resulting state to this file instead of stdout",
		},
	},
}

// instructions maps instruction names to their handlers.
var instructions = map[string]func(*hvm.Frame) error{
	"add":        hvm.OpAdd,
	"sub":        hvm.OpSub,
	"mul":        hvm.OpMul,
	"div":        hvm.OpDiv,
	"sdiv":       hvm.OpSDiv,
	"mod":        hvm.OpMod,
	"smod":       hvm.OpSMod,
	"addmod":     hvm.OpAddMod,
	"mulmod":     hvm.OpMulMod,
	"exp":        hvm.OpExp,
	"signextend": hvm.OpSignExtend,
	"sload":      hvm.OpSload,
	"sstore":     hvm.OpSstore,
	"blockhash":  hvm.OpBlockhash,
	"coinbase":   hvm.OpCoinbase,
	"timestamp":  hvm.OpTimestamp,
	"number":     hvm.OpNumber,
	"difficulty": hvm.OpDifficulty,
	"gaslimit":   hvm.OpGasLimit,
}

func instructionNames() []string {
	names := maps.Keys(instructions)
	slices.Sort(names)
	return names
}

func doStep(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected an instruction and a state file, use one of: %v", instructionNames())
	}
	name := context.Args().Get(0)
	op, ok := instructions[name]
	if !ok {
		return fmt.Errorf("invalid instruction %q, use one of: %v", name, instructionNames())
	}

	state, err := importFrameJSON(context.Args().Get(1))
	if err != nil {
		return err
	}
	frame, storage, err := state.deserialize()
	if err != nil {
		return err
	}

	if err := op(frame); err != nil {
		return fmt.Errorf("executing %s failed: %w", name, err)
	}

	state.update(frame, storage)
	serialized, err := state.serialize()
	if err != nil {
		return err
	}
	if outPath := context.String("out"); outPath != "" {
		return os.WriteFile(outPath, serialized, 0644)
	}
	fmt.Printf("%s\n", serialized)
	return nil
}
