package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doc2tex/doc2tex/internal/analyzer"
	"github.com/doc2tex/doc2tex/internal/latex"
	"github.com/doc2tex/doc2tex/internal/model"
	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	var template string
	var out string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert <document>",
		Short: "Analyze a document and render it as LaTeX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			a, err := analyzer.ForFile(path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}

			start := time.Now()
			rec, err := a.Analyze(f, filepath.Base(path))
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			rec.FileSize = info.Size()
			rec.ProcessingSeconds = time.Since(start).Seconds()

			doc, err := latex.Generate(rec, model.Template(strings.ToLower(template)))
			if err != nil {
				return err
			}

			if asJSON {
				b, _ := json.MarshalIndent(doc, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			for _, warning := range doc.ValidationWarnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), doc.Content)
				return nil
			}
			return os.WriteFile(out, []byte(doc.Content), 0o644)
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", "ieee", "target template: ieee|acm|springer")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output .tex file (default: stdout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full generation result as JSON")
	return cmd
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the supported templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range latex.Supported() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
