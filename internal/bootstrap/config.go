package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	MongoUri         string `mapstructure:"MONGO_URI"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	MistralApiKey    string `mapstructure:"MISTRAL_API_KEY"`
	MistralAgentKey  string `mapstructure:"MISTRAL_AGENT_KEY"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	PageLimitMatches int    `mapstructure:"PAGE_LIMIT_MATCHES"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.PageLimitMatches <= 0 {
		cfg.PageLimitMatches = 50
	}

	return &cfg, nil
}
