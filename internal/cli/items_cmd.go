package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

func categoryHelp() string {
	names := make([]string, len(profile.Categories))
	for i, c := range profile.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (r *runner) addCmd() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Add an item to a category",
		Long: "Add an item to a category (" + categoryHelp() + ").\n" +
			"Fields are given as --field name=value and may repeat.",
		Example: `  ladder --email ada@example.com add skills --field name=Go --field level=Expert --field category=Languages`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldPairs(pairs)
			if err != nil {
				return err
			}
			return r.run(cmd, r.login, true, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteAddItem(ctx, profileUC.AddItemInput{
					Session:  s,
					Category: args[0],
					Fields:   fields,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("✓ Added "+out.Category.Title()+" item"), valueStyle.Render(strconv.FormatInt(out.ID, 10)))
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "field", "f", nil, "item field as name=value")
	return cmd
}

func parseFieldPairs(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --field %q, want name=value", pair)
		}
		fields[strings.TrimSpace(name)] = value
	}
	return fields, nil
}

func (r *runner) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List the items of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.login, false, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteListItems(ctx, profileUC.ItemRefInput{Session: s, Category: args[0]})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintln(w, titleStyle.Render(out.Category.Title()))
				if len(out.Entries) == 0 {
					fmt.Fprintln(w, mutedStyle.Render("No items yet. Add one with 'ladder add "+string(out.Category)+"'"))
					return nil
				}
				for _, e := range out.Entries {
					fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("[%d]", e.ID)), mutedStyle.Render(string(e.Visibility)))
					for _, f := range e.Fields {
						if f.Value == "" {
							continue
						}
						fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(f.Name+":"), valueStyle.Render(f.Value))
					}
				}
				return nil
			})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("item id must be an integer, got %q", raw)
	}
	return id, nil
}

func (r *runner) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <category> <id>",
		Short: "Flip an item between public and private",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return r.run(cmd, r.login, true, func(ctx context.Context, app *App, s *session.Session) error {
				out, err := app.Profile.ExecuteToggleVisibility(ctx, profileUC.ItemRefInput{Session: s, Category: args[0], ID: id})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if !out.Found {
					fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("No item %d in %s", id, args[0])))
					return nil
				}
				fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("Item %d is now", id)), valueStyle.Render(string(out.Visibility)))
				return nil
			})
		},
	}
}

func (r *runner) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <category> <id>",
		Short: "Remove an item from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return r.run(cmd, r.login, true, func(ctx context.Context, app *App, s *session.Session) error {
				w := cmd.OutOrStdout()
				if !yes {
					fmt.Fprint(w, labelStyle.Render(fmt.Sprintf("Delete %s item %d? [y/N]: ", args[0], id)))
					answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
						fmt.Fprintln(w, mutedStyle.Render("Cancelled"))
						return nil
					}
				}

				out, err := app.Profile.ExecuteDeleteItem(ctx, profileUC.ItemRefInput{Session: s, Category: args[0], ID: id})
				if err != nil {
					return err
				}
				if !out.Found {
					fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("No item %d in %s", id, args[0])))
					return nil
				}
				fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("✓ Deleted item %d", id)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
