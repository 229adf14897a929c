package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/yyyoichi/invisitext"
	"github.com/yyyoichi/invisitext/internal/config"
	"github.com/yyyoichi/invisitext/mark"
)

var (
	outWriter io.Writer = colorable.NewColorableStdout()
	errWriter io.Writer = os.Stderr

	logger = log.New(io.Discard, "", 0)
)

var (
	cfgFile       string
	eccFlag       string
	seedFlag      int64
	placementFlag string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:           "invisitext",
	Short:         "Hide secret messages in plain text using zero-width characters",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		outWriter = cmd.OutOrStdout()
		errWriter = cmd.ErrOrStderr()

		logger = log.New(io.Discard, "", 0)
		if verbose {
			logger = log.New(errWriter, "invisitext: ", log.LstdFlags)
		}
	},
}

func init() {
	rootCmd.SetOut(outWriter)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.invisitext/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&eccFlag, "ecc", "", "error correction: none or golay (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", mark.DefaultShuffleSeed, "shuffle seed for --ecc golay (overrides config)")
	rootCmd.PersistentFlags().StringVar(&placementFlag, "placement", "", "marker placement: after or before the space (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// newCodec builds a codec from the config file overridden by flags.
func newCodec(cmd *cobra.Command) (*invisitext.Codec, error) {
	cfg, err := config.Read(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger.Printf("config: %s", cfg.Path())

	flags := cmd.Flags()
	if flags.Changed("ecc") {
		cfg.ECC = eccFlag
	}
	if flags.Changed("seed") || cfg.Seed == nil {
		seed := seedFlag
		cfg.Seed = &seed
	}
	if flags.Changed("placement") {
		cfg.Placement = placementFlag
	}
	opts, err := cfg.Options(mark.DefaultShuffleSeed)
	if err != nil {
		return nil, err
	}
	logger.Printf("ecc=%q placement=%q", cfg.ECC, cfg.Placement)
	return invisitext.New(opts...)
}
