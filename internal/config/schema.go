package config

import "fmt"

// Config is the top-level bookctl configuration.
type Config struct {
	Service  ServiceConfig  `mapstructure:"service" yaml:"service"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Serve    ServeConfig    `mapstructure:"serve" yaml:"serve"`
}

// ServiceConfig holds the remote book service connection settings.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// DefaultsConfig holds default values for browsing.
type DefaultsConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// ServeConfig holds listen settings for the built-in development server.
type ServeConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// Addr returns the host:port the development server listens on.
func (s ServeConfig) Addr() string {
	host := s.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := s.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}
