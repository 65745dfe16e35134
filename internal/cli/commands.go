package cli

import (
	"github.com/spf13/cobra"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a roster account",
		Long: `Sign in with a roster account. Any password is accepted for a known email.

Examples:
  lmsctl login --email neha.kedar@powergridindia.com --password password123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, done, err := a.openShell(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			identity, err := shell.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if identity == nil {
				return domain.ErrInvalidCredentials
			}

			a.printer.Success("Signed in as %s (%s)", identity.Name, identity.Role)
			return printIdentity(a.printer, identity)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the cached identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, done, err := a.openShell(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			shell.Logout(cmd.Context())
			a.printer.Success("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, done, err := a.openShell(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			session := shell.Session()
			if !session.Authenticated {
				a.printer.Print("not signed in")
				return nil
			}
			return printIdentity(a.printer, session.Identity)
		},
	}
}

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the views available to your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, done, err := a.openShell(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			_, items, err := shell.Menu()
			if err != nil {
				return errNotSignedIn()
			}

			t := NewTable(a.printer.Out(), "Key", "Label")
			for _, it := range items {
				t.AddRow(string(it.Key), it.Label)
			}
			return t.Render()
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	var q domain.ScreenQuery

	cmd := &cobra.Command{
		Use:   "view [key]",
		Short: "Render a screen",
		Long: `Render the screen behind a menu key. Without a key the dashboard of your
role is shown. Keys outside your menu fall back to the dashboard.

Examples:
  lmsctl view
  lmsctl view courses --q grid --difficulty Advanced
  lmsctl view mentorship --skill Leadership`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, done, err := a.openShell(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if !shell.Session().Authenticated {
				return renderPage(a.printer, shell.Render(cmd.Context(), q))
			}

			key := domain.DefaultView
			if len(args) == 1 {
				key = domain.ViewKey(args[0])
			}
			page, err := shell.Open(cmd.Context(), key, q)
			if err != nil {
				return err
			}
			if page.Fallback {
				a.printer.Warning("view %q is not available to your role, showing the dashboard", key)
			}
			return renderPage(a.printer, page)
		},
	}

	cmd.Flags().StringVar(&q.Search, "q", "", "search text")
	cmd.Flags().StringVar(&q.Category, "category", "", "category filter (all disables)")
	cmd.Flags().StringVar(&q.Difficulty, "difficulty", "", "difficulty filter (all disables)")
	cmd.Flags().StringVar(&q.Skill, "skill", "", "mentor skill filter (all disables)")
	return cmd
}

func newAccountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the demo accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printDemoAccounts(a.printer, fixture.DemoAccounts, fixture.DemoPassword)
			return nil
		},
	}
}

func printIdentity(p *Printer, identity *domain.Identity) error {
	t := NewTable(p.Out(), "Field", "Value")
	t.AddRow("Name", identity.Name)
	t.AddRow("Email", identity.Email)
	t.AddRow("Role", string(identity.Role))
	t.AddRow("Department", identity.Department)
	t.AddRow("Position", identity.Position)
	return t.Render()
}

func printDemoAccounts(p *Printer, accounts []fixture.DemoAccount, password string) {
	t := NewTable(p.Out(), "Tab", "Account", "Email", "Role")
	for _, acc := range accounts {
		t.AddRow(acc.Tab, acc.Label, acc.Email, string(acc.Role))
	}
	_ = t.Render()
	p.Print("Password: %s", password)
}
