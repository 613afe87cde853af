package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/textkit/internal/config"
	"github.com/example/textkit/internal/ports/primary"
	"github.com/example/textkit/internal/version"
	"github.com/example/textkit/internal/wire"
)

// FilterCopyCmd returns the root command of the filtercopy program.
func FilterCopyCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:     "filtercopy SOURCE DESTINATION SUBSTRING CHAR_COUNT",
		Short:   "Copy characters from lines containing a specific substring",
		Version: version.String("filtercopy"),
		Long: `Copy the first CHAR_COUNT characters of every SOURCE line that contains
SUBSTRING into DESTINATION, one line each, in source order.

The match is a case-sensitive literal substring test. Lines shorter than
CHAR_COUNT are copied whole. Every output line ends with a newline.
DESTINATION is overwritten; missing parent directories are created.

Arguments:
  SOURCE       Path to the input text file
  DESTINATION  Path to the output text file
  SUBSTRING    Only lines containing this text will be copied
  CHAR_COUNT   Number of characters to copy from each matching line

Examples:
  filtercopy app.log errors.txt ERROR 80
  filtercopy --encoding latin-1 legacy.txt out/ids.txt "ID=" 12`,
		Args: exactArgs(4),
		RunE: runFilterCopy,
	}

	cmd.Flags().String("encoding", cfg.Encoding, "File encoding used for reading/writing (env "+config.EnvEncoding+")")

	return newRootCommand(cmd, cfg)
}

func runFilterCopy(cmd *cobra.Command, args []string) error {
	charCount, err := parseIntArg("char_count", args[3])
	if err != nil {
		return err
	}
	encoding, _ := cmd.Flags().GetString("encoding")

	return wire.CopyAdapterWithOutput(cmd.OutOrStdout()).Copy(cmd.Context(), primary.CopyRequest{
		Source:      args[0],
		Destination: args[1],
		Substring:   args[2],
		CharCount:   charCount,
		Encoding:    encoding,
	})
}
