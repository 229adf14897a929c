package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/invisitext/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report the markers found in a text without decoding it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		r := inspect.Analyze(string(text))
		fmt.Fprintf(outWriter, "Words:     %d\n", r.Words)
		fmt.Fprintf(outWriter, "Bit-slots: %d\n", r.Slots)
		fmt.Fprintf(outWriter, "Markers:   %d (0: %d, 1: %d)\n", r.Markers, r.Zeros, r.Ones)
		fmt.Fprintf(outWriter, "Fill:      %.1f%%\n", r.Fill*100)
		fmt.Fprintf(outWriter, "Per line:  mean %.2f, stddev %.2f over %d lines\n", r.LineMean, r.LineStdDev, r.Lines)
		if r.Framed {
			fmt.Fprintf(outWriter, "Message:   %d bytes, %d markers after terminator\n", r.PayloadLen, r.Trailing)
		} else {
			fmt.Fprintln(outWriter, "Message:   none without error correction")
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the text file")
	_ = inspectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(inspectCmd)
}
