package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notegest/internal/compose"
	"github.com/dgallion1/notegest/internal/parser"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Render a local document as page HTML",
		Long: `Parse a local document and render its sections as page body HTML.

Supported formats: .txt .md .markdown .csv .html .htm .pdf .docx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)
			fallback, _ := cmd.Flags().GetBool("pdftotext")

			p, err := parser.ForFile(args[0], parser.Options{FallbackPdftotext: fallback})
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			tree, err := p.Parse(f, args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if title, _ := cmd.Flags().GetString("title"); title != "" {
				tree.Title = title
			}
			log.Debug("parsed document", "title", tree.Title, "sections", len(tree.Children))

			c := composerFromFlags(cmd)
			body := c.TreeFragment(tree)
			if asPage, _ := cmd.Flags().GetBool("page"); asPage {
				doc, err := c.PageHTML(tree.Title, body, time.Now())
				if err != nil {
					return err
				}
				return writeOutput(cmd, doc)
			}
			return writeOutput(cmd, body)
		},
	}
	cmd.Flags().String("title", "", "override the document title")
	cmd.Flags().Bool("page", false, "wrap the body in a complete page document")
	cmd.Flags().Bool("pdftotext", true, "fall back to pdftotext for PDFs the Go reader cannot read")
	cmd.Flags().String("label", compose.DefaultLabel, "writer name in the page footer")
	addEncoderFlags(cmd)
	return cmd
}

func newPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page [file]",
		Short: "Build a complete page document from markdown-like text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			title, _ := cmd.Flags().GetString("title")
			doc, err := composerFromFlags(cmd).PageDocument(title, in, time.Now())
			if err != nil {
				return err
			}
			return writeOutput(cmd, doc)
		},
	}
	cmd.Flags().String("title", "", "page title (required)")
	cmd.Flags().String("label", compose.DefaultLabel, "writer name in the page footer")
	_ = cmd.MarkFlagRequired("title")
	addEncoderFlags(cmd)
	return cmd
}

func composerFromFlags(cmd *cobra.Command) *compose.Composer {
	label, _ := cmd.Flags().GetString("label")
	return compose.New(label, encoderFromFlags(cmd))
}
