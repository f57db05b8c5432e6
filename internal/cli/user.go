package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// UserCreateOptions holds flags for the user create command.
type UserCreateOptions struct {
	Username string
	FullName string
	Password string
	Role     string
}

// NewUserCommand creates the user command group.
func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCommand(rootOpts))
	cmd.AddCommand(newUserListCommand(rootOpts))
	return cmd
}

func newUserCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UserCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := models.Role(strings.ToUpper(opts.Role))

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.authenticator.Register(cmd.Context(), opts.Username, opts.FullName, opts.Password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s user %s (%s)\n", user.Role, user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "login name (required)")
	cmd.Flags().StringVar(&opts.FullName, "full-name", "", "display name (defaults to the username)")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password, at least 8 characters (required)")
	cmd.Flags().StringVarP(&opts.Role, "role", "r", string(models.RoleViewer), "ADMIN, EDITOR or VIEWER")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newUserListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "USERNAME\tNAME\tROLE\tCREATED")
			for _, u := range a.state.Users() {
				created := time.Unix(u.CreatedAt, 0).UTC().Format("2006-01-02")
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Username, u.FullName, u.Role, created)
			}
			return tw.Flush()
		},
	}
}
