package config

import "github.com/contre95/soundwell/src/infra/trigram"

// createDefaultConfig returns the configuration used when no config file
// exists yet.
func createDefaultConfig() *Config {
	return &Config{
		Server: Server{
			Port:        3000,
			PrintRoutes: false,
		},
		Database: Database{
			Path: "soundwell.db",
		},
		Logger: Logger{
			Level:  "info",
			Format: "text",
		},
		Search: Search{
			SimilarityThreshold: trigram.DefaultThreshold,
		},
	}
}
