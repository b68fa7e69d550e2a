package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	documentUC "github.com/khoahotran/professional-ladder/internal/application/usecase/document"
)

func (r *runner) resumeCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Write the resume as a text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Documents.ExecuteResume(ctx, documentUC.ResumeInput{Session: s})
				if err != nil {
					return err
				}
				return writeDocument(cmd, outDir, out)
			})
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the file to")
	return cmd
}

func (r *runner) coverLetterCmd() *cobra.Command {
	var (
		outDir      string
		jobTitle    string
		companyName string
	)

	cmd := &cobra.Command{
		Use:   "cover-letter",
		Short: "Write a cover letter for a job as a text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Documents.ExecuteCoverLetter(ctx, documentUC.CoverLetterInput{
					Session:     s,
					JobTitle:    jobTitle,
					CompanyName: companyName,
				})
				if err != nil {
					return err
				}
				return writeDocument(cmd, outDir, out)
			})
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the file to")
	cmd.Flags().StringVar(&jobTitle, "job-title", "", "title of the position")
	cmd.Flags().StringVar(&companyName, "company", "", "name of the hiring company")
	return cmd
}

func writeDocument(cmd *cobra.Command, dir string, doc *documentUC.Output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("✓ Wrote"), valueStyle.Render(path))
	return nil
}
