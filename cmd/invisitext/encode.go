package main

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/yyyoichi/invisitext"
)

var (
	carrierPath string
	secretPath  string
	outputPath  string
)

var encodeCmd = &cobra.Command{
	Use:     "encode",
	Short:   "Hide a secret message in a carrier text",
	Example: "  invisitext encode -c carrier.txt -s secret.txt -o output.txt",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := newCodec(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(outWriter, "--- Running InvisiText Encoder ---")

		carrier, err := os.ReadFile(carrierPath)
		if err != nil {
			return fmt.Errorf("read carrier file: %w", err)
		}
		secret, err := os.ReadFile(secretPath)
		if err != nil {
			return fmt.Errorf("read secret file: %w", err)
		}
		logger.Printf("carrier %s: %d bytes, secret %s: %d bytes", carrierPath, len(carrier), secretPath, len(secret))

		encoded, err := codec.Encode(string(carrier), secret)
		var ce *invisitext.CapacityError
		if errors.As(err, &ce) {
			fmt.Fprintln(errWriter, "Carrier text is not long enough to hold the secret message.")
			fmt.Fprintf(errWriter, "    Carrier capacity (bits): %d\n", ce.Capacity)
			fmt.Fprintf(errWriter, "    Secret message size (bits): %d\n", ce.Required)
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "Converted secret message to %d-bit stream.\n", codec.Required(len(secret)))
		fmt.Fprintf(outWriter, "Carrier text has %d bit-slots available.\n", codec.Capacity(string(carrier)))

		if err := os.WriteFile(outputPath, []byte(encoded), 0644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		fmt.Fprintf(outWriter, "Encoded secret message into: %s\n", outputPath)
		fmt.Fprintf(outWriter, "Original size: %s (%d bytes)\n", bytefmt.ByteSize(uint64(len(carrier))), len(carrier))
		fmt.Fprintf(outWriter, "Encoded size:  %s (%d bytes)\n", bytefmt.ByteSize(uint64(len(encoded))), len(encoded))
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&carrierPath, "carrier", "c", "", "path to the carrier text file")
	encodeCmd.Flags().StringVarP(&secretPath, "secret", "s", "", "path to the secret message file")
	encodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the encoded text")
	_ = encodeCmd.MarkFlagRequired("carrier")
	_ = encodeCmd.MarkFlagRequired("secret")
	_ = encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}
