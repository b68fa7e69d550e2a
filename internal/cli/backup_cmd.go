package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/professional-ladder/adapters/media_storage"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	backupUC "github.com/khoahotran/professional-ladder/internal/application/usecase/backup"
)

func (r *runner) backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload a JSON snapshot of the stored profile to Cloudinary",
		Long:  "Upload a JSON snapshot of the stored profile to Cloudinary. Needs the CLOUDINARY_* settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				uploader, err := media_storage.NewCloudinaryAdapter(app.Config, app.Logger)
				if err != nil {
					return fmt.Errorf("cloudinary is not configured: %w", err)
				}
				uc := backupUC.NewBackupUseCase(uploader, app.Config.Cloudinary.Folder, app.Logger)

				out, err := uc.Execute(ctx, backupUC.BackupInput{Session: s})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("✓ Backed up to"), valueStyle.Render(out.URL))
				return nil
			})
		},
	}
}
