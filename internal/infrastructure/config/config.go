package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Payment     PaymentConfig     `mapstructure:"payment"`
	Transformer TransformerConfig `mapstructure:"transformer"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// PaymentConfig contains payment provider settings. KeySecret is the shared
// secret of the signature scheme and must only ever live server-side.
type PaymentConfig struct {
	BaseURL      string        `mapstructure:"baseURL"`
	KeyID        string        `mapstructure:"keyID"`
	KeySecret    string        `mapstructure:"keySecret"`
	Currency     string        `mapstructure:"currency"`
	OrderTimeout time.Duration `mapstructure:"orderTimeout"` // seconds
}

// TransformerConfig contains image-generation provider settings
type TransformerConfig struct {
	BaseURL        string        `mapstructure:"baseURL"`
	APIKey         string        `mapstructure:"apiKey"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
}

// AuthConfig contains session verification settings. The auth provider issues
// the tokens; this service only verifies them.
type AuthConfig struct {
	SessionSecret string `mapstructure:"sessionSecret"`
}

// LedgerConfig contains the fixed credit amounts of the ledger protocols
type LedgerConfig struct {
	SignupGrant          int64 `mapstructure:"signupGrant"`
	TransformCost        int64 `mapstructure:"transformCost"`
	WaitlistBonusCredits int64 `mapstructure:"waitlistBonusCredits"`
	WaitlistAmount       int64 `mapstructure:"waitlistAmount"` // minor currency units
}
