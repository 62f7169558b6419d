package config

import (
	"github.com/spf13/viper"
)

// Config reúne toda a configuração de runtime, carregada de variáveis de
// ambiente. Cada campo mapeia 1:1 para uma env var.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage — onde as coleções são espelhadas (redis | file | memory)
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	StoragePath   string `mapstructure:"STORAGE_PATH"` // driver file
	RedisURL      string `mapstructure:"REDIS_URL"`    // driver redis
}

// Load lê a configuração do ambiente (e de um .env opcional).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults sensatos para desenvolvimento
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "redis")
	viper.SetDefault("STORAGE_PATH", "/var/lib/pontodevalor")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	// .env opcional para desenvolvimento local — não falha se ausente
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
