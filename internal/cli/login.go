package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/altigreen/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Start a session as a named user",
	Long:  "Stores a local session with a display name, role, and home site.\nThis is role selection, not authentication.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		role, _ := cmd.Flags().GetString("role")
		site, _ := cmd.Flags().GetString("site")

		role = strings.ToUpper(role)
		if !config.ValidRole(role) {
			return fmt.Errorf("invalid role %q (use ADMIN, SUPERVISOR or TECHNICIAN)", role)
		}

		dir, err := config.SessionDir()
		if err != nil {
			return err
		}

		cfg := &config.Config{
			Version: "1",
			Role:    role,
			Name:    name,
			SiteID:  site,
		}
		if err := config.SaveConfig(dir, cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", name, role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.SessionDir()
		if err != nil {
			return err
		}
		if err := config.RemoveConfig(dir); err != nil {
			return err
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentSession()
		if err != nil {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("Name: %s\n", cfg.Name)
		fmt.Printf("Role: %s\n", cfg.Role)
		if cfg.SiteID != "" {
			fmt.Printf("Site: %s\n", cfg.SiteID)
		}
		return nil
	},
}

// currentSession loads the stored session config, if any.
func currentSession() (*config.Config, error) {
	dir, err := config.SessionDir()
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(dir)
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	loginCmd.Flags().StringP("role", "r", config.RoleTechnician, "Role: ADMIN, SUPERVISOR or TECHNICIAN")
	loginCmd.Flags().StringP("site", "s", "", "Home site ID, e.g. SITE-A")
	return loginCmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return logoutCmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return whoamiCmd
}
