package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vango-dev/contactform/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contactform",
		Short: "Server-driven contact dialog",
		Long: `contactform serves a contact dialog whose form is validated on the server.

The page is rendered on the server and a thin JavaScript client forwards
input, blur and submit events over a WebSocket. The same validation rules
are available offline through the check and format-phone commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		formatPhoneCmd(),
		versionCmd(),
	)

	return rootCmd
}

// printError prints err, using the structured format for coded errors.
func printError(w io.Writer, err error) {
	var e *errors.Error
	if stderrors.As(err, &e) {
		fmt.Fprintln(w, e.Format())
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), err)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.YellowString("⚠"), fmt.Sprintf(format, args...))
}

// failure prints a failed check.
func failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}
