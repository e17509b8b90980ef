package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "run an intcode program.",
	Long: `Run an intcode program to completion. Input values are read from
	the input tape (or a Starlark script), and output values written to the
	output tape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		program, err := cpu.Load(args[0])
		if err != nil {
			return
		}

		inf, in_close, err := openInput(cmd, getString(cmd, "input"))
		if err != nil {
			return
		}
		defer in_close()

		ouf, out_close, err := openOutput(cmd, getString(cmd, "output"))
		if err != nil {
			return
		}
		defer out_close()

		tape := &io.Tape{
			Input:  inf,
			Output: ouf,
			Ascii:  getFlag(cmd, "ascii"),
		}

		var source io.Source = tape
		var sink io.Sink = tape

		if isTerminal(inf) && !tape.Ascii {
			prompt := cmd.ErrOrStderr()
			source = io.SourceFunc(func(ctx context.Context) (int64, error) {
				fmt.Fprint(prompt, "? ")
				return tape.Receive(ctx)
			})
		}

		if file_name := getString(cmd, "script"); file_name != "" {
			defines := map[string]int64{}
			for _, define := range getStringArray(cmd, "define") {
				var name string
				var value int64
				name, value, err = parseAssignment(define)
				if err != nil {
					return
				}
				defines[name] = value
			}

			var script *io.Script
			script, err = io.NewScript(file_name, nil, defines)
			if err != nil {
				return
			}
			if script.HasInput() {
				source = script
			}
			if script.HasOutput() {
				sink = io.Tee(tape, script)
			}
		}

		emu := emulator.NewEmulator(program, source, sink)
		emu.Verbose = getFlag(cmd, "verbose")
		emu.Reset()

		for _, set := range getStringArray(cmd, "set") {
			var name string
			var value, addr int64
			name, value, err = parseAssignment(set)
			if err != nil {
				return
			}
			addr, err = parseAddress(name)
			if err != nil {
				return
			}
			err = emu.Patch(addr, value)
			if err != nil {
				return
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		outputs, err := emu.Run(ctx)
		log.WithFields(log.Fields{
			"ticks":   emu.Ticks(),
			"outputs": len(outputs),
		}).Debug("run complete")
		if err != nil {
			log.Debug(emu.Cpu.String())
			return
		}

		for _, peek := range getStringArray(cmd, "peek") {
			var addr, value int64
			addr, err = parseAddress(peek)
			if err != nil {
				return
			}
			value, err = emu.Peek(addr)
			if err != nil {
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%d]=%d\n", addr, value)
		}

		return
	},
}

// isTerminal returns true if r is an interactive terminal.
func isTerminal(r any) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("input", "i", "-", "input tape")
	runCmd.Flags().StringP("output", "o", "-", "output tape")
	runCmd.Flags().Bool("ascii", false, "tapes carry ASCII text, not decimal values")
	runCmd.Flags().StringP("script", "s", "", "Starlark script providing input() and/or output(value)")
	runCmd.Flags().StringArrayP("define", "D", nil, "NAME=VALUE integer visible to the script")
	runCmd.Flags().StringArray("set", nil, "ADDR=VALUE memory cell to set before running")
	runCmd.Flags().StringArray("peek", nil, "ADDR memory cell to print after running")
}
