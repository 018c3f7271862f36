package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appdocs "github.com/bryanwahyu/automaton-legal/internal/application/documents"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	"github.com/bryanwahyu/automaton-legal/internal/domain/report"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the available analysis types",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tNAME\tROLE\tMODEL")
		for _, p := range persona.All() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Type, p.Name, p.Role, p.Model)
		}
		return tw.Flush()
	},
}

var (
	analyzeFile  string
	analyzeDocID string
	analyzeType  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis persona against a file or a stored document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (analyzeFile == "") == (analyzeDocID == "") {
			return fmt.Errorf("exactly one of --file or --doc-id is required")
		}
		t := persona.ParseType(analyzeType)
		if _, err := persona.Lookup(t); err != nil {
			return err
		}

		ctx := cmd.Context()
		app, _, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		id := analyzeDocID
		if analyzeFile != "" {
			data, err := os.ReadFile(analyzeFile)
			if err != nil {
				return err
			}
			up, err := app.Services.Documents.Upload(ctx, appdocs.UploadCommand{
				Filename: filepath.Base(analyzeFile),
				MimeType: appdocs.DetectMimeType(analyzeFile, data),
				Data:     data,
			})
			if err != nil {
				return err
			}
			id = up.DocumentID
		}

		res, err := app.Services.Analysis.Analyze(ctx, id, t)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

var (
	exportDocID  string
	exportLabels []string
	exportFiles  []string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render labelled analysis outputs into a PDF report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(exportLabels) != len(exportFiles) {
			return fmt.Errorf("--label and --text-file must be given the same number of times")
		}
		texts := make([]string, 0, len(exportFiles))
		for _, f := range exportFiles {
			b, err := os.ReadFile(f)
			if err != nil {
				return err
			}
			texts = append(texts, string(b))
		}

		ctx := cmd.Context()
		app, _, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		exp, err := app.Services.Reports.ExportAnalysis(ctx, exportDocID, report.Pair(exportLabels, texts))
		if err != nil {
			return err
		}
		return writeOut(cmd, exportOut, exp.Filename, exp.Data)
	},
}

var (
	rewriteDocID    string
	rewriteFile     string
	rewriteFindings string
	rewriteOut      string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a contract using ambiguity findings and render it as PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := os.ReadFile(rewriteFile)
		if err != nil {
			return err
		}
		findings, err := os.ReadFile(rewriteFindings)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		app, _, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		exp, err := app.Services.Rewrite.RewriteAndExport(ctx, rewriteDocID, string(original), string(findings))
		if err != nil {
			return err
		}
		return writeOut(cmd, rewriteOut, exp.Filename, exp.Data)
	},
}

func writeOut(cmd *cobra.Command, out, fallback string, data []byte) error {
	if out == "" {
		out = fallback
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(data))
	return nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "contract file (text, image or PDF)")
	analyzeCmd.Flags().StringVar(&analyzeDocID, "doc-id", "", "id of a document already in storage")
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", string(persona.TypeSummary), "analysis type")

	exportCmd.Flags().StringVar(&exportDocID, "doc-id", "local", "document id shown in the title")
	exportCmd.Flags().StringArrayVar(&exportLabels, "label", nil, "section label (repeatable)")
	exportCmd.Flags().StringArrayVar(&exportFiles, "text-file", nil, "section text file (repeatable, paired with --label)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path")

	rewriteCmd.Flags().StringVar(&rewriteDocID, "doc-id", "local", "document id shown in the title")
	rewriteCmd.Flags().StringVar(&rewriteFile, "file", "", "original contract text file")
	rewriteCmd.Flags().StringVar(&rewriteFindings, "findings", "", "ambiguity analysis output file")
	rewriteCmd.Flags().StringVarP(&rewriteOut, "out", "o", "", "output path")
	_ = rewriteCmd.MarkFlagRequired("file")
	_ = rewriteCmd.MarkFlagRequired("findings")
}
