package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	GraphQL  GraphQLConfig  `yaml:"graphql"`
	Reports  ReportsConfig  `yaml:"reports"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	URI            string        `yaml:"uri"              env:"DATABASE_URI"              env-required:"true"`
	Name           string        `yaml:"name"             env:"DATABASE_NAME"             env-default:"lumo"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"    env:"DATABASE_MAX_POOL_SIZE"    env-default:"100"`
	MinPoolSize    uint64        `yaml:"min_pool_size"    env:"DATABASE_MIN_POOL_SIZE"    env-default:"5"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"  env:"DATABASE_CONNECT_TIMEOUT"  env-default:"10s"`
	MaxConnIdle    time.Duration `yaml:"max_conn_idle"    env:"DATABASE_MAX_CONN_IDLE"    env-default:"5m"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"    env-required:"true"`
	JWTIssuer   string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"    env-default:"lumo"`
	SessionTTL  time.Duration `yaml:"session_ttl"   env:"AUTH_SESSION_TTL"   env-default:"12h"`
	BcryptCost  int           `yaml:"bcrypt_cost"   env:"AUTH_BCRYPT_COST"   env-default:"12"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	PlaygroundEnabled    bool `yaml:"playground_enabled"    env:"GRAPHQL_PLAYGROUND_ENABLED"    env-default:"false"`
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	ComplexityLimit      int  `yaml:"complexity_limit"      env:"GRAPHQL_COMPLEXITY_LIMIT"      env-default:"300"`
}

// ReportsConfig holds report export settings.
type ReportsConfig struct {
	MaxRows int `yaml:"max_rows" env:"REPORTS_MAX_ROWS" env-default:"10000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
