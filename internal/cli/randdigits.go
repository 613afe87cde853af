package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/textkit/internal/config"
	"github.com/example/textkit/internal/ports/primary"
	"github.com/example/textkit/internal/version"
	"github.com/example/textkit/internal/wire"
)

// RandDigitsCmd returns the root command of the randdigits program.
func RandDigitsCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:     "randdigits OUTPUT LINE_COUNT LINE_LENGTH",
		Short:   "Generate a text file of random digit lines",
		Version: version.String("randdigits"),
		Long: `Generate a text file containing LINE_COUNT lines of random digits,
each exactly LINE_LENGTH characters long.

Every digit is drawn independently and uniformly from 0-9. OUTPUT is
overwritten; missing parent directories are created.

Arguments:
  OUTPUT       Path to the generated output file
  LINE_COUNT   Number of lines to generate
  LINE_LENGTH  Length of each line (number of digits)

Examples:
  randdigits fixtures/pins.txt 1000 6
  randdigits -v big.txt 100000 64`,
		Args: exactArgs(3),
		RunE: runRandDigits,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Print a summary after writing the file")

	return newRootCommand(cmd, cfg)
}

func runRandDigits(cmd *cobra.Command, args []string) error {
	lineCount, err := parseIntArg("line_count", args[1])
	if err != nil {
		return err
	}
	lineLength, err := parseIntArg("line_length", args[2])
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	return wire.DigitAdapterWithOutput(cmd.OutOrStdout(), verbose).Generate(cmd.Context(), primary.GenerateRequest{
		Output:     args[0],
		LineCount:  lineCount,
		LineLength: lineLength,
	})
}
