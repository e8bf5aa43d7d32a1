// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL    string `yaml:"api_base_url" env:"TALENTIQ_API_URL"`
	OAuthClientID string `yaml:"oauth_client_id" env:"TALENTIQ_OAUTH_CLIENT_ID"`
	//Paths
	StatePath string `yaml:"state_path" env:"TALENTIQ_STATE_PATH"`
	//HTTP
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"TALENTIQ_HTTP_TIMEOUT"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Could not read config.yaml: %v", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Error parsing environment: %v", err)
	}

	//Set default values if not set
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080/api"
	}

	if cfg.StatePath == "" {
		cfg.StatePath = ".talentiq"
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return cfg
}
