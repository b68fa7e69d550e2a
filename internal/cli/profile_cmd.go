package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	authUC "github.com/khoahotran/professional-ladder/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

func (r *runner) signupCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Start a profile for --email, seeding its name and email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			open := func(ctx context.Context, app *App) (*authUC.LoginOutput, error) {
				return app.Auth.ExecuteSignup(ctx, authUC.SignupInput{Email: r.opts.Email, Name: name})
			}
			return r.run(cmd, open, true, func(ctx context.Context, app *App, s *session.Session) error {
				fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("✓ Signed up as "+s.Email))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	return cmd
}

func (r *runner) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update personal information",
	}
	cmd.AddCommand(r.profileShowCmd(), r.profileSetCmd())
	return cmd
}

func (r *runner) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display personal information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteGetProfile(ctx, profileUC.SessionInput{Session: s})
				if err != nil {
					return err
				}
				printPersonalInfo(cmd.OutOrStdout(), out.Profile.PersonalInfo)
				return nil
			})
		},
	}
}

func printPersonalInfo(w io.Writer, info profile.PersonalInfo) {
	fmt.Fprintln(w, titleStyle.Render("Personal Information"))
	rows := []struct{ label, value string }{
		{"Name", info.Name},
		{"Title", info.Title},
		{"Email", info.Email},
		{"Phone", info.Phone},
		{"LinkedIn", info.LinkedIn},
		{"Website", info.Website},
		{"Summary", info.Summary},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(row.label+":"), valueStyle.Render(row.value))
	}
}

func (r *runner) profileSetCmd() *cobra.Command {
	var values struct {
		name, email, phone, title, summary, linkedin, website string
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update personal information fields",
		Long:  "Update personal information field by field. Only the flags given are changed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := func(flag string, v *string) *string {
				if cmd.Flags().Changed(flag) {
					return v
				}
				return nil
			}
			patch := profile.PersonalInfoPatch{
				Name:     changed("name", &values.name),
				Email:    changed("contact-email", &values.email),
				Phone:    changed("phone", &values.phone),
				Title:    changed("title", &values.title),
				Summary:  changed("summary", &values.summary),
				LinkedIn: changed("linkedin", &values.linkedin),
				Website:  changed("website", &values.website),
			}

			return r.run(cmd, r.login, true, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteUpdatePersonalInfo(ctx, profileUC.UpdatePersonalInfoInput{Session: s, Patch: patch})
				if err != nil {
					return err
				}
				printPersonalInfo(cmd.OutOrStdout(), out.PersonalInfo)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&values.name, "name", "", "full name")
	f.StringVar(&values.email, "contact-email", "", "email shown on documents")
	f.StringVar(&values.phone, "phone", "", "phone number")
	f.StringVar(&values.title, "title", "", "professional title")
	f.StringVar(&values.summary, "summary", "", "professional summary")
	f.StringVar(&values.linkedin, "linkedin", "", "LinkedIn URL")
	f.StringVar(&values.website, "website", "", "personal website")
	return cmd
}

func (r *runner) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count items per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteStats(ctx, profileUC.SessionInput{Session: s})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, titleStyle.Render("Profile Statistics"))
				for _, st := range out.Stats {
					fmt.Fprintf(w, "  %s %d (%d public)\n", labelStyle.Render(st.Category.Title()+":"), st.Total, st.Public)
				}
				return nil
			})
		},
	}
}

func (r *runner) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the profile as visitors see it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecutePreview(ctx, profileUC.SessionInput{Session: s})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				return nil
			})
		},
	}
}

func (r *runner) shareLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share-link",
		Short: "Print the public profile URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteShareLink(ctx, profileUC.SessionInput{Session: s})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.URL)
				return nil
			})
		},
	}
}
