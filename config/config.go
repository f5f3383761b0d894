package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Database struct {
		Backend    string
		Host       string
		Port       int
		User       string
		Password   string
		Name       string
		SQLitePath string
	}
	Server struct {
		Port int
	}
	Dev bool
}

func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("STORAGE_BACKEND", BackendPostgres)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SQLITE_PATH", "blogposts.db")
	viper.SetDefault("DEV", true)

	var config Config
	config.Database.Backend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	config.Database.Host = viper.GetString("POSTGRES_HOST")
	config.Database.Port = viper.GetInt("POSTGRES_PORT")
	config.Database.User = viper.GetString("POSTGRES_USER")
	config.Database.Password = viper.GetString("POSTGRES_PASSWORD")
	config.Database.Name = viper.GetString("POSTGRES_DB")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")
	config.Server.Port = viper.GetInt("SERVER_PORT")
	config.Dev = viper.GetBool("DEV")

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Database.Backend {
	case BackendSQLite:
		return nil
	case BackendPostgres:
		var missing []string
		if c.Database.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if c.Database.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if c.Database.Name == "" {
			missing = append(missing, "POSTGRES_DB")
		}
		if len(missing) > 0 {
			return fmt.Errorf("environment variables %s must be set", strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Database.Backend)
	}
}

// ConnectionString builds the lib/pq connection string for the postgres backend.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
