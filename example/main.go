// File: tyconf/example/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/barabasz/tyconf"
	"github.com/barabasz/tyconf/validators"
)

// ServerSettings receives the decoded configuration values.
type ServerSettings struct {
	Host    string        `tyconf:"host"`
	Port    int           `tyconf:"port"`
	Debug   bool          `tyconf:"debug"`
	Timeout time.Duration `tyconf:"timeout"`
	Tags    []string      `tyconf:"tags"`
}

func main() {
	cfg, err := tyconf.NewBuilder().
		Define(
			tyconf.Define("version", tyconf.String, "1.0.0", tyconf.ReadOnly()),
			tyconf.Define("host", tyconf.String, "localhost"),
			tyconf.Define("port", tyconf.Int, 8080,
				tyconf.WithValidator(validators.Range(1024, 65535))),
			tyconf.Define("debug", tyconf.Bool, false),
			tyconf.Define("timeout", tyconf.String, "30s"),
			tyconf.Define("tags", tyconf.List(tyconf.String), []string{"web"}),
			tyconf.Define("log_level", tyconf.String, "INFO",
				tyconf.WithValidator(validators.OneOf("DEBUG", "INFO", "WARNING", "ERROR"))),
		).
		WithFile("config.toml").
		WithEnvPrefix("MYAPP_").
		WithCheck(func(c *tyconf.Config) error {
			debug, _ := c.Bool("debug")
			level, _ := c.String("log_level")
			if debug && level != "DEBUG" {
				return errors.New("debug mode requires log_level=DEBUG")
			}
			return nil
		}).
		Build()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	// Reject a bad value at runtime
	if err := cfg.Set("port", 80); err != nil {
		fmt.Println("rejected:", err)
	}

	// Decode into a struct for the application
	var settings ServerSettings
	if err := cfg.Decode(&settings); err != nil {
		log.Fatal("failed to decode config: ", err)
	}
	fmt.Printf("serving on %s:%d (debug=%v)\n", settings.Host, settings.Port, settings.Debug)

	// Freeze before sharing with worker goroutines
	cfg.Freeze()
	cfg.Render(os.Stdout)

	// Persist the effective configuration
	if err := cfg.SaveFile("effective.json", false); err != nil {
		log.Fatal("failed to save config: ", err)
	}
}
