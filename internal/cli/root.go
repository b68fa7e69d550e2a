package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khoahotran/professional-ladder/adapters/persistence"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	authUC "github.com/khoahotran/professional-ladder/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
)

type runner struct {
	opts Options
}

type opener func(ctx context.Context, app *App) (*authUC.LoginOutput, error)

// NewRootCommand builds the ladder command tree. Every command is one session:
// the profile stored for --email is loaded, the command acts on it, and
// mutating commands save it back unless --dry-run is set.
func NewRootCommand() *cobra.Command {
	r := &runner{}

	rootCmd := &cobra.Command{
		Use:   "ladder",
		Short: "Build a professional profile and render resumes and cover letters",
		Long: `Ladder keeps a professional profile (personal info, experience, education,
skills, certificates, courses, conferences, workshops and media) with a
public/private switch on every item, and renders plain-text resumes and
cover letters from it.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&r.opts.Email, "email", "", "identity whose profile is used")
	flags.StringVar(&r.opts.ConfigPath, "config", "", "directory holding config.yaml and .env")
	flags.StringVar(&r.opts.Store, "store", persistence.DriverSQLite, "store driver (memory, sqlite, redis, postgres)")
	flags.StringVar(&r.opts.DBPath, "db", "", "SQLite file (defaults to store.sqlite_path)")
	flags.BoolVar(&r.opts.DryRun, "dry-run", false, "do not save changes")
	flags.BoolVar(&r.opts.Force, "force", false, "save even when the stored profile could not be read")
	flags.BoolVar(&r.opts.Verbose, "verbose", false, "log to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("email")

	rootCmd.AddCommand(
		r.signupCmd(),
		r.profileCmd(),
		r.addCmd(),
		r.listCmd(),
		r.toggleCmd(),
		r.deleteCmd(),
		r.statsCmd(),
		r.previewCmd(),
		r.shareLinkCmd(),
		r.resumeCmd(),
		r.coverLetterCmd(),
		r.backupCmd(),
	)
	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		stop()
		os.Exit(1)
	}
}

func (r *runner) login(ctx context.Context, app *App) (*authUC.LoginOutput, error) {
	return app.Auth.ExecuteLogin(ctx, authUC.LoginInput{Email: r.opts.Email})
}

// run opens a session with open, hands it to fn and saves afterwards when save
// is set. The session is closed on every path. When the stored profile exists
// but could not be read, saving commands refuse to run without --force so the
// stored document is never replaced by an empty one.
func (r *runner) run(cmd *cobra.Command, open opener, save bool, fn func(ctx context.Context, app *App, s *session.Session) error) error {
	app, err := NewApp(r.opts)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	login, err := open(ctx, app)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Auth.ExecuteLogout(ctx, authUC.LogoutInput{SessionID: login.SessionID})
	}()

	s, err := app.Auth.Resolve(login.AccessToken)
	if err != nil {
		return err
	}

	if login.LoadFailure != nil {
		if save && !r.opts.DryRun && !r.opts.Force {
			return fmt.Errorf("stored profile for %s could not be read, refusing to overwrite it (rerun with --force to replace it): %w", r.opts.Email, login.LoadFailure)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("warning: ")+"stored profile could not be read, starting from an empty profile")
	}

	if err := fn(ctx, app, s); err != nil {
		return err
	}

	if !save {
		return nil
	}
	if r.opts.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("dry run: changes not saved"))
		return nil
	}
	if _, err := app.Profile.ExecuteSave(ctx, profileUC.SessionInput{Session: s}); err != nil {
		return err
	}
	return nil
}
