package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	FeedPageSize   *int          `yaml:"feed_page_size"` // posts per feed page, pointer so 0 is distinguishable from missing
	UsernameMinLen int           `yaml:"username_min_len"`
	UsernameMaxLen int           `yaml:"username_max_len"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	ApiBaseURL     string        `yaml:"api_base_url"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

const (
	defaultUsernameMinLen = 3
	defaultUsernameMaxLen = 32
	defaultApiBaseURL     = "http://api:8080"
)

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) Pg() Pg {
	return s.private.Pg
}

// PageSize is the configured feed page size. MustLoad guarantees it is set.
func (s *Config) PageSize() int {
	if s.Public.FeedPageSize == nil {
		return 0
	}
	return *s.Public.FeedPageSize
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides (a .env file in the working directory is honored)
// and panics if a required value is missing.
func MustLoad(configFolder string) *Config {
	// .env is optional
	_ = godotenv.Load()

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	applyEnv(cfg)
	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.private.JwtKey = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		cfg.private.Pg.Password = v
	}
	if v := os.Getenv("PG_HOST"); v != "" {
		cfg.private.Pg.Host = v
	}
	if v := os.Getenv("FEED_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Sprintf("config: FEED_PAGE_SIZE must be an integer, got %q", v))
		}
		cfg.Public.FeedPageSize = &n
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.Public.ApiBaseURL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Public.UsernameMinLen == 0 {
		cfg.Public.UsernameMinLen = defaultUsernameMinLen
	}
	if cfg.Public.UsernameMaxLen == 0 {
		cfg.Public.UsernameMaxLen = defaultUsernameMaxLen
	}
	if cfg.Public.ApiBaseURL == "" {
		cfg.Public.ApiBaseURL = defaultApiBaseURL
	}
	if cfg.Public.LogLevel == "" {
		cfg.Public.LogLevel = "info"
	}
}

func validate(cfg *Config) error {
	switch {
	case cfg.Public.FeedPageSize == nil:
		return fmt.Errorf("config: feed_page_size is required")
	case *cfg.Public.FeedPageSize < 0:
		return fmt.Errorf("config: feed_page_size must be >= 0, got %d", *cfg.Public.FeedPageSize)
	case cfg.Public.JwtTTL <= 0:
		return fmt.Errorf("config: jwt_ttl is required")
	case cfg.private.JwtKey == "":
		return fmt.Errorf("config: jwt_key is required")
	case cfg.Public.UsernameMinLen > cfg.Public.UsernameMaxLen:
		return fmt.Errorf("config: username_min_len %d exceeds username_max_len %d", cfg.Public.UsernameMinLen, cfg.Public.UsernameMaxLen)
	}
	return nil
}
