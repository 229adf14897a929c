package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/invisitext"
)

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Remove every hidden marker from a text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		stripped := invisitext.Strip(string(text))
		if err := os.WriteFile(outputPath, []byte(stripped), 0644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		fmt.Fprintf(outWriter, "Removed %d bytes of markers into: %s\n", len(text)-len(stripped), outputPath)
		return nil
	},
}

func init() {
	stripCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the encoded text file")
	stripCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the stripped text")
	_ = stripCmd.MarkFlagRequired("input")
	_ = stripCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(stripCmd)
}
