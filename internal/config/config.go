package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Server     Server        `yaml:"server"`
	Pg         Pg            `yaml:"pg"`
	Election   Election      `yaml:"election"`
	SessionTTL time.Duration `yaml:"session_ttl"` // 0 means tokens never expire
	LogLevel   string        `yaml:"log_level"`
	LogJSON    bool          `yaml:"log_json"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Election struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
	RedisURL   string `yaml:"redis_url"` // empty means in-memory session registry
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func (c *Config) RedisURL() string {
	return c.private.RedisURL
}

func (c *Config) SessionTTL() time.Duration {
	return c.Public.SessionTTL
}

// New assembles a config without touching the filesystem, mainly for tests.
func New(public Public, private Private) *Config {
	return &Config{public, private}
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

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
