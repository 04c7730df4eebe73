// Package commands implements the CLI commands for notegest.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notegest",
		Short: "Convert notes-page HTML to readable text and back",
		Long: `Notegest converts the HTML served by a notes API into readable text,
summaries or Markdown, and renders markdown-like text into the HTML the API
accepts.

Input comes from a file argument or standard input.

Examples:
  # Readable text from a saved page
  notegest text page.html

  # 120 character excerpt from stdin
  curl -s "$PAGE_URL" | notegest summary --max 120

  # Markdown rendered for the terminal
  notegest markdown --render page.html

  # Page body HTML from notes
  notegest html --ordered-lists notes.txt

  # Page document from a local file
  notegest import report.docx --page`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	root.AddCommand(
		newTextCmd(),
		newSummaryCmd(),
		newMarkdownCmd(),
		newHTMLCmd(),
		newImportCmd(),
		newPageCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		logError("%v", err)
	}
	return err
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// newLogger writes text logs to stderr, at debug level with --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// readInput returns the contents of the named file, or of stdin when no
// file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
