package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/invisitext"
)

var (
	inputPath   string
	payloadPath string
)

var decodeCmd = &cobra.Command{
	Use:     "decode",
	Short:   "Extract a secret message from an encoded text",
	Example: "  invisitext decode -i output.txt",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := newCodec(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(outWriter, "--- Running InvisiText Decoder ---")

		text, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		logger.Printf("input %s: %d bytes", inputPath, len(text))

		secret, err := codec.Decode(string(text))
		if errors.Is(err, invisitext.ErrNoMessage) {
			fmt.Fprintln(outWriter, "No hidden message found.")
			return nil
		}
		if err != nil {
			return err
		}

		if payloadPath != "" {
			if err := os.WriteFile(payloadPath, secret, 0600); err != nil {
				return fmt.Errorf("write payload file: %w", err)
			}
			fmt.Fprintf(outWriter, "Decoded %d bytes into: %s\n", len(secret), payloadPath)
			return nil
		}
		fmt.Fprintln(outWriter, "\n--- DECODED MESSAGE START ---")
		fmt.Fprintln(outWriter, string(secret))
		fmt.Fprintln(outWriter, "---  DECODED MESSAGE END  ---")
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the encoded text file")
	decodeCmd.Flags().StringVarP(&payloadPath, "output", "o", "", "write the message to this file instead of stdout")
	_ = decodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(decodeCmd)
}
