package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DefaultMigrationConfigPath is read when no path is given
	DefaultMigrationConfigPath = "./migrate.yaml"
	// DefaultSchema is the Postgres schema used when none is configured
	DefaultSchema = "public"
)

var schemaName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// MigrationConfig describes where migrations live and which database they
// are applied to. Env values override the YAML file.
type MigrationConfig struct {
	// Schema is the Postgres schema that holds the tables and the migration version table
	Schema        string         `yaml:"schema" env:"MIGRATIONS_SCHEMA" env-default:"public"`
	Out           string         `yaml:"out" env:"MIGRATIONS_DIR" env-default:"./migrations"`
	DBCredentials DatabaseConfig `yaml:"dbCredentials"`
	Verbose       bool           `yaml:"verbose" env:"MIGRATIONS_VERBOSE"`
	// Strict requires explicit confirmation before destructive commands
	Strict bool `yaml:"strict" env:"MIGRATIONS_STRICT"`
}

// LoadMigration reads the migration config from path (or the default file
// when path is empty) and the environment. A missing default file means
// env and defaults only; a missing explicit file is an error.
func LoadMigration(path string) (*MigrationConfig, error) {
	LoadEnvFiles()

	var cfg MigrationConfig

	explicitPath := path != ""
	if !explicitPath {
		path = DefaultMigrationConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("migration config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("migration config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("migration config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("migration config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the schema, output directory and credentials
func (c *MigrationConfig) Validate() error {
	if !schemaName.MatchString(c.Schema) {
		return fmt.Errorf("schema %q is not a valid identifier", c.Schema)
	}
	if c.Out == "" {
		return errors.New("out directory is required")
	}
	return c.DBCredentials.Validate()
}

// DSN returns the connection URL with search_path pointing at the schema, so
// unqualified tables resolve there for both migrations and queries
func (c *MigrationConfig) DSN() (string, error) {
	dsn, err := c.DBCredentials.DSN()
	if err != nil {
		return "", err
	}
	if c.Schema == "" || c.Schema == DefaultSchema {
		return dsn, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	q := u.Query()
	q.Set("search_path", c.Schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
