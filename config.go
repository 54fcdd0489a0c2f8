package nextrip

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultPort = 16182

type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

type ServiceConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Service ServiceConfig `yaml:"service"`
}

// Config is the application configuration for the CLI and proxy server.
// The library itself never reads it; a Client is configured through
// Options only.
var Config AppConfig

func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Service); err != nil {
		return err
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = defaultPort
	}
	if Config.Service.BaseURL == "" {
		Config.Service.BaseURL = DefaultBaseURL
	}
	return nil
}
