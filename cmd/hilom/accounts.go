package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/account"
	"github.com/mrsinham/hilom/internal/admin"
	"github.com/mrsinham/hilom/internal/logging"
	"github.com/mrsinham/hilom/internal/store"
	"github.com/spf13/cobra"
)

func registerCmd(configFile *string) *cobra.Command {
	var r account.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (prompts for missing fields)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			if r.Name == "" || r.Email == "" || r.Password == "" {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().Title("Full Name").Value(&r.Name),
					huh.NewInput().Title("Email").Value(&r.Email),
					huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&r.Password),
					huh.NewInput().Title("Confirm Password").EchoMode(huh.EchoModePassword).Value(&r.Confirm),
				))
				if err := form.RunWithContext(cmd.Context()); err != nil {
					return fmt.Errorf("registration form: %w", err)
				}
			}

			u, err := a.accounts().Register(r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s.\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&r.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&r.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&r.Password, "password", "", "Password")
	cmd.Flags().StringVar(&r.Confirm, "confirm", "", "Password confirmation")

	return cmd
}

func loginCmd(configFile *string) *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check your credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			if err := promptCredentials(cmd, &name, &password); err != nil {
				return err
			}

			u, err := a.accounts().Authenticate(name, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", u.Name)
			if u.Admin {
				fmt.Fprintln(cmd.OutOrStdout(), "You have administrator access, see `hilom admin`.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func adminCmd(configFile *string) *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Show appointments and registered users (administrators only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			if err := promptCredentials(cmd, &name, &password); err != nil {
				return err
			}

			accounts := a.accounts()
			u, err := accounts.Authenticate(name, password)
			if err != nil {
				return err
			}

			svc := &admin.Service{
				History:  a.history,
				Accounts: accounts,
				Logger:   logging.Component("admin"),
			}
			if a.db != nil {
				svc.Appointments = store.AppointmentLister(a.db)
			}

			ov, err := svc.Overview(cmd.Context(), u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Appointments (%s)", ov.Source))
			if len(ov.Appointments) == 0 {
				fmt.Fprintln(out, "No appointments yet.")
			} else {
				rows := make([][]string, len(ov.Appointments))
				for i, r := range ov.Appointments {
					rows[i] = []string{r.PatientName, r.Schedule, r.TimeSlot, r.Consultation, r.Price, r.Contact, r.Concern, r.Status}
				}
				printTable(out, []string{"Patient", "Schedule", "Time", "Type", "Price", "Contact", "Concern", "Status"}, rows)
			}

			fmt.Fprintln(out)
			printTitle(out, "Registered users")
			rows := make([][]string, len(ov.Users))
			for i, u := range ov.Users {
				role := "user"
				if u.Admin {
					role = "admin"
				}
				rows[i] = []string{u.Name, u.Email, role}
			}
			printTable(out, []string{"Name", "Email", "Role"}, rows)

			fmt.Fprintln(out)
			printTitle(out, "Recent activity")
			if len(ov.Recent) == 0 {
				fmt.Fprintln(out, "No history yet.")
				return nil
			}
			rows = make([][]string, len(ov.Recent))
			for i, e := range ov.Recent {
				rows[i] = []string{e.Date, e.Time, e.Category, e.Item}
			}
			printTable(out, []string{"Date", "Time", "Category", "Item"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func promptCredentials(cmd *cobra.Command, name, password *string) error {
	if strings.TrimSpace(*name) != "" && strings.TrimSpace(*password) != "" {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(name),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
	))
	if err := form.RunWithContext(cmd.Context()); err != nil {
		return fmt.Errorf("login form: %w", err)
	}
	return nil
}
