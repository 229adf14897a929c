package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show how much a carrier text can hold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := newCodec(cmd)
		if err != nil {
			return err
		}
		carrier, err := os.ReadFile(carrierPath)
		if err != nil {
			return fmt.Errorf("read carrier file: %w", err)
		}
		text := string(carrier)
		fmt.Fprintf(outWriter, "Bit-slots: %d\n", codec.Capacity(text))
		n := codec.MaxPayload(text)
		if n < 0 {
			fmt.Fprintln(outWriter, "Max payload: none (carrier cannot hold the terminator)")
			return nil
		}
		fmt.Fprintf(outWriter, "Max payload: %s (%d bytes)\n", bytefmt.ByteSize(uint64(n)), n)
		return nil
	},
}

func init() {
	capacityCmd.Flags().StringVarP(&carrierPath, "carrier", "c", "", "path to the carrier text file")
	_ = capacityCmd.MarkFlagRequired("carrier")
	rootCmd.AddCommand(capacityCmd)
}
