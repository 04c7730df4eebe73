package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dgallion1/notegest/internal/content"
)

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text [file]",
		Short: "Render page HTML as readable text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			newLogger(cmd).Debug("converting to text", "bytes", len(in))
			return writeOutput(cmd, content.ReadableText(in))
		},
	}
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print a short excerpt of the page body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			maxLen, _ := cmd.Flags().GetInt("max")
			newLogger(cmd).Debug("summarizing", "bytes", len(in), "max", maxLen)
			return writeOutput(cmd, content.Summarize(in, maxLen))
		},
	}
	cmd.Flags().Int("max", content.DefaultSummaryLength, "maximum excerpt length in characters")
	return cmd
}

func newMarkdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markdown [file]",
		Short: "Convert page HTML to Markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			md, err := content.Markdown(in)
			if err != nil {
				return err
			}

			render, _ := cmd.Flags().GetBool("render")
			if !render {
				return writeOutput(cmd, md)
			}
			style, _ := cmd.Flags().GetString("style")
			out, err := renderTerminal(md, style)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("render", false, "render for the terminal")
	cmd.Flags().String("style", "dark", "glamour style used with --render")
	return cmd
}

func newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Encode markdown-like text as page HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeOutput(cmd, encoderFromFlags(cmd).Encode(in))
		},
	}
	addEncoderFlags(cmd)
	return cmd
}

func addEncoderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ordered-lists", false, "render numbered lines as <ol> lists")
	cmd.Flags().Bool("sanitize", false, "strip unsafe links and attributes from the output")
}

func encoderFromFlags(cmd *cobra.Command) *content.Encoder {
	ordered, _ := cmd.Flags().GetBool("ordered-lists")
	sanitize, _ := cmd.Flags().GetBool("sanitize")
	return content.NewEncoder(content.EncoderOptions{OrderedLists: ordered, SanitizeLinks: sanitize})
}

// renderTerminal renders markdown with glamour.
func renderTerminal(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
