package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/pipeline"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program_file",
	Short: "run an intcode program as a chain of amplifiers.",
	Long: `Run one engine per phase setting, each engine's output feeding the next
	engine's input. By default every ordering of the phases is tried and the
	highest signal reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		program, err := cpu.Load(args[0])
		if err != nil {
			return
		}

		feedback := getFlag(cmd, "feedback")

		phase_list := getString(cmd, "phases")
		if phase_list == "" {
			phase_list = "0,1,2,3,4"
			if feedback {
				phase_list = "5,6,7,8,9"
			}
		}
		phases, err := parseValues(phase_list)
		if err != nil {
			return
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var signal int64
		if getFlag(cmd, "fixed") {
			pl := &pipeline.Pipeline{
				Program:  program,
				Phases:   phases,
				Feedback: feedback,
			}
			if getFlag(cmd, "simulate") {
				signal, err = pl.Simulate(getInt64(cmd, "signal"))
			} else {
				signal, err = pl.Run(ctx, getInt64(cmd, "signal"))
			}
		} else {
			signal, phases, err = pipeline.MaxSignal(ctx, program, phases, feedback)
		}
		if err != nil {
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %v\n", signal, cpu.Program(phases))
		return
	},
}

func init() {
	rootCmd.AddCommand(amplifyCmd)
	amplifyCmd.Flags().Bool("feedback", false, "last amplifier feeds the first")
	amplifyCmd.Flags().String("phases", "", "comma separated phase settings (default 0-4, or 5-9 with --feedback)")
	amplifyCmd.Flags().Bool("fixed", false, "run the phases in the given order only")
	amplifyCmd.Flags().Bool("simulate", false, "with --fixed, run on a single goroutine")
	amplifyCmd.Flags().Int64("signal", 0, "with --fixed, initial input signal")
}
