// Package cli provides the cobra commands for the textkit programs.
package cli

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/textkit/internal/adapters/cli"
	"github.com/example/textkit/internal/config"
	"github.com/example/textkit/internal/core/validation"
	"github.com/example/textkit/internal/logger"
)

// Exit statuses
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError reports malformed command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	if errors.As(err, &ue) || validation.IsValidation(err) {
		return ExitUsage
	}
	return ExitFailure
}

// PrintError writes err to w as a single "Error: ..." line.
// The prefix is colored only when w is a terminal.
func PrintError(w io.Writer, err error) {
	cliadapter.ColorFor(w, color.FgRed, color.Bold).Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}

// Execute runs cmd with args. Negative integers among args are treated as
// positional values rather than shorthand flags.
func Execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(protectNegativeNumbers(cmd, args))
	return cmd.Execute()
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// protectNegativeNumbers moves flags in front of a "--" separator and
// positional arguments after it, so pflag never reads "-3" as a flag.
// Args without a negative number are returned unchanged.
func protectNegativeNumbers(cmd *cobra.Command, args []string) []string {
	found := false
	for _, a := range args {
		if a == "--" {
			break
		}
		if negativeNumber.MatchString(a) {
			found = true
			break
		}
	}
	if !found {
		return args
	}

	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeNumber.MatchString(a) || !strings.HasPrefix(a, "-") || a == "-":
			positional = append(positional, a)
		default:
			flags = append(flags, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}

	out := append(flags, "--")
	return append(out, positional...)
}

// takesValue reports whether flag token a consumes the following argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}

	fs := cmd.Flags()
	if name, ok := strings.CutPrefix(a, "--"); ok {
		f := fs.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	if len(a) == 2 {
		f := fs.ShorthandLookup(a[1:])
		return f != nil && f.NoOptDefVal == ""
	}
	return false
}

// exactArgs wraps cobra.ExactArgs so arity mistakes are usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

func flagUsageError(cmd *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// parseIntArg parses a positional integer argument.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &UsageError{Err: fmt.Errorf("invalid %s %q: must be an integer", name, value)}
	}
	return n, nil
}

// addCommonFlags registers flags shared by every textkit command.
func addCommonFlags(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().Bool("debug", cfg.Debug, "Log debug output to stderr (env "+config.EnvDebug+")")
}

// setupLogging installs the process logger from flags and environment.
func setupLogging(cmd *cobra.Command, cfg config.Config) {
	debug, _ := cmd.Flags().GetBool("debug")
	logger.Setup(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Debug:  debug,
		Format: cfg.LogFormat,
	})
}

// newRootCommand applies the settings every textkit root command shares.
func newRootCommand(cmd *cobra.Command, cfg config.Config) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(flagUsageError)
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging(cmd, cfg)
	}
	addCommonFlags(cmd, cfg)
	return cmd
}
