package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SQLITE_PATH", "PORT", "PROFILE_ID", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Fatalf("driver = %q, want %q", cfg.Database.Driver, DriverSQLite)
	}
	if cfg.SQLite.Path != "data/akin.db" {
		t.Fatalf("sqlite path = %q", cfg.SQLite.Path)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:3000" {
		t.Fatalf("addr = %q", cfg.HTTP.Addr())
	}
	if cfg.Sheet.ProfileID != "akin" {
		t.Fatalf("profile id = %q", cfg.Sheet.ProfileID)
	}
	if len(cfg.HTTP.AllowedOrigins) != 1 || cfg.HTTP.AllowedOrigins[0] != "*" {
		t.Fatalf("origins = %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestLoadPostgresOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("driver = %q", cfg.Database.Driver)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 6543 {
		t.Fatalf("postgres = %+v", cfg.Postgres)
	}
	if len(cfg.HTTP.AllowedOrigins) != 2 {
		t.Fatalf("origins = %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: DriverSQLite},
			SQLite:   SQLiteConfig{Path: "akin.db"},
			HTTP:     HTTPConfig{Host: "0.0.0.0", Port: 3000, AllowedOrigins: []string{"*"}},
			Sheet:    SheetConfig{ProfileID: "akin"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"blank sqlite path", func(c *Config) { c.SQLite.Path = " " }},
		{"postgres without host", func(c *Config) { c.Database.Driver = DriverPostgres; c.Postgres.Database = "x" }},
		{"port out of range", func(c *Config) { c.HTTP.Port = 70000 }},
		{"empty profile id", func(c *Config) { c.Sheet.ProfileID = "" }},
		{"no origins", func(c *Config) { c.HTTP.AllowedOrigins = nil }},
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
