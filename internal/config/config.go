package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Role constants. Login is a role selection, not authentication.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleTechnician = "TECHNICIAN"
)

// Config represents the flat AltiGreen session configuration
type Config struct {
	Version string `json:"version"`
	Role    string `json:"role"`              // "ADMIN", "SUPERVISOR" or "TECHNICIAN"
	Name    string `json:"name,omitempty"`    // display name of the logged-in user
	SiteID  string `json:"site_id,omitempty"` // home site, e.g. SITE-A
}

// ValidRole reports whether role is one of the three user roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSupervisor || role == RoleTechnician
}

// CanCreateWorkOrders reports whether the role may create work orders.
// Technicians work existing orders; admins and supervisors open new ones.
func CanCreateWorkOrders(role string) bool {
	return role == RoleAdmin || role == RoleSupervisor
}

// LoadConfig reads .alti/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".alti", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	altiDir := filepath.Join(dir, ".alti")
	if err := os.MkdirAll(altiDir, 0755); err != nil {
		return fmt.Errorf("failed to create .alti dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(altiDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// RemoveConfig deletes config.json from directory. Missing config is not an
// error (logout is idempotent).
func RemoveConfig(dir string) error {
	path := filepath.Join(dir, ".alti", "config.json")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	return nil
}

// SessionDir returns the directory holding the session config.
func SessionDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
