// Package config describes the process-wide settings and loads them once at startup.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environments recognised by the logger setup.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is the root of the settings tree.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	HTTPServer              `yaml:"http_server"`
	RedisConnection         `yaml:"redis_connection"`
	JWTToken                `yaml:"jwttoken"`
	Session                 `yaml:"session"`
	SMTP                    `yaml:"smtp"`
	Mail                    `yaml:"mail"`
	RateLimit               `yaml:"rate_limit"`
}

// HTTPServer configures the listener.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection configures the session backend.
type RedisConnection struct {
	RedisAddress     string        `yaml:"addressredis" env-default:"localhost:6379"`
	RedisPassword    string        `yaml:"password" env:"REDIS_PASSWORD"`
	RedisUser        string        `yaml:"user"`
	RedisDB          int           `yaml:"db"`
	RedisMaxRetries  int           `yaml:"max_retries" env-default:"3"`
	RedisDialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	RedisTimeout     time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// JWTToken holds the signing secret and the two token lifetimes.
type JWTToken struct {
	JWTSecretKey    string        `yaml:"jwt_secret_key" env:"JWT_PRIVATE_KEY" env-required:"true"`
	AccessTTL       time.Duration `yaml:"access_ttl" env-default:"48h"`
	VerificationTTL time.Duration `yaml:"verification_ttl" env-default:"1h"`
}

// Session configures the login cookie.
type Session struct {
	CookieName   string        `yaml:"cookie_name" env-default:"tutor_sid"`
	SessionTTL   time.Duration `yaml:"ttl" env-default:"24h"`
	CookieSecure bool          `yaml:"cookie_secure"`
}

// SMTP configures the outgoing mail server.
type SMTP struct {
	SMTPHost string `yaml:"host" env:"SMTP_HOST"`
	SMTPPort string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"user" env:"SMTP_USER"`
	SMTPPass string `yaml:"password" env:"SMTP_PASSWORD"`
}

// Mail holds the values rendered into verification e-mails.
type Mail struct {
	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL" env-required:"true"`
	From        string `yaml:"from" env:"MAIL_FROM" env-required:"true"`
}

// RateLimit throttles login attempts per client address.
type RateLimit struct {
	LoginRPS   float64 `yaml:"login_rps" env-default:"1"`
	LoginBurst int     `yaml:"login_burst" env-default:"5"`
	// IdleTTL is how long a client's bucket is kept after its last request.
	IdleTTL time.Duration `yaml:"idle_ttl" env-default:"10m"`
}

// MustLoad reads the YAML file named by CONFIG_PATH, applies environment
// overrides and exits the process on any error.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads the config at path.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  Password: %s\n"+
			"  DB: %d\n"+
			"JWTToken:\n"+
			"  JWTSecretKey: %s\n"+
			"  AccessTTL: %s\n"+
			"  VerificationTTL: %s\n"+
			"Session:\n"+
			"  CookieName: %s\n"+
			"  TTL: %s\n"+
			"SMTP:\n"+
			"  Host: %s:%s\n"+
			"  User: %s\n"+
			"  Password: %s\n"+
			"Mail:\n"+
			"  FrontendURL: %s\n"+
			"  From: %s\n",
		c.Env,
		mask(c.StorageConnectionString),
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RedisAddress,
		mask(c.RedisPassword),
		c.RedisDB,
		mask(c.JWTSecretKey),
		c.AccessTTL,
		c.VerificationTTL,
		c.CookieName,
		c.SessionTTL,
		c.SMTPHost, c.SMTPPort,
		c.SMTPUser,
		mask(c.SMTPPass),
		c.FrontendURL,
		c.From,
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "******"
}
