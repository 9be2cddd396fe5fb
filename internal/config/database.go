// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

// DSN prefers DATABASE_URL. Postgres URLs without an sslmode get sslmode=require.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		url := d.URL
		if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
			if !strings.Contains(url, "sslmode") {
				if strings.Contains(url, "?") {
					url += "&sslmode=require"
				} else {
					url += "?sslmode=require"
				}
			}
		}
		return url
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s application_name=material_map connect_timeout=15",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}
