package config

import (
	"github.com/kelseyhightower/envconfig"
)

type EnvVars struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`

	LLMApiKey  string `envconfig:"LLM_API_KEY"`
	LLMBaseURL string `envconfig:"LLM_BASE_URL"`
	LLMModel   string `envconfig:"LLM_MODEL"`

	ProjectRoot string `envconfig:"PROJECT_ROOT"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadEnv() (*EnvVars, error) {
	var v EnvVars
	if err := envconfig.Process("", &v); err != nil {
		return nil, err
	}
	return &v, nil
}
