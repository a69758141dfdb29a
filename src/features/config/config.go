package config

// Config holds the application configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Logger   Logger   `yaml:"logger"`
	Auth     Auth     `yaml:"auth"`
	Search   Search   `yaml:"search"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	Path string `yaml:"path" validate:"required"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Auth holds the secret used to verify listener identity tokens. Token
// issuance happens elsewhere; an empty secret disables identity resolution
// and every play is recorded as anonymous.
type Auth struct {
	Secret string `yaml:"secret"`
}

// Search holds tuning for the similarity fallback tier.
type Search struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold" validate:"gte=0,lte=1"`
}
