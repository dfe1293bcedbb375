package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is the fatal configuration error raised when the OpenAI
// credential is absent. Generation must never be attempted without it.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required but not set")

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey  string `mapstructure:"OPENAI_API_KEY"`     // API key for OpenAI
	TextModel  string `mapstructure:"OPENAI_TEXT_MODEL"`  // e.g., "gpt-4o"
	ImageModel string `mapstructure:"OPENAI_IMAGE_MODEL"` // e.g., "dall-e-3"

	// Vehicle Pricing Configuration
	FipeAPIBase string `mapstructure:"FIPE_API_BASE"` // Base URL of the FIPE carros API

	// Generation Configuration
	ProductCount int `mapstructure:"PRODUCT_COUNT"` // Products per generated store
}

// LoadConfig reads configuration from file and environment variables.
// It fails fast when the OpenAI credential is missing, before any network
// call could be attempted.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // Read environment variables that match keys

	// AutomaticEnv only resolves keys viper already knows about. Keys without
	// a default (OPENAI_API_KEY) must be bound explicitly or an env-only value
	// is invisible to Unmarshal.
	for _, key := range []string{
		"SERVER_ADDRESS",
		"OPENAI_API_KEY",
		"OPENAI_TEXT_MODEL",
		"OPENAI_IMAGE_MODEL",
		"FIPE_API_BASE",
		"PRODUCT_COUNT",
	} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding env key %s: %w", key, err)
		}
	}

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_TEXT_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_IMAGE_MODEL", "dall-e-3")
	viper.SetDefault("FIPE_API_BASE", "https://parallelum.com.br/fipe/api/v1/carros")
	viper.SetDefault("PRODUCT_COUNT", 4)

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if config.ProductCount <= 0 {
		config.ProductCount = 4
	}

	return
}
