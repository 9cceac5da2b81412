package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server Server
	TMDB   TMDB
	Quiz   Quiz
}

type Server struct {
	Port string
}

type TMDB struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
}

type Quiz struct {
	DefaultLanguage string
	UsedHistoryCap  int
	AdvanceDelayMs  int
	SessionIdleMin  int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500")
	viper.SetDefault("QUIZ_DEFAULT_LANGUAGE", "en-US")
	viper.SetDefault("QUIZ_USED_HISTORY_CAP", 20)
	viper.SetDefault("QUIZ_ADVANCE_DELAY_MS", 1500)
	viper.SetDefault("QUIZ_SESSION_IDLE_MIN", 30)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.TMDB.APIKey = viper.GetString("TMDB_API_KEY")
	config.TMDB.BaseURL = viper.GetString("TMDB_BASE_URL")
	config.TMDB.ImageBaseURL = viper.GetString("TMDB_IMAGE_BASE_URL")
	config.Quiz.DefaultLanguage = viper.GetString("QUIZ_DEFAULT_LANGUAGE")
	config.Quiz.UsedHistoryCap = viper.GetInt("QUIZ_USED_HISTORY_CAP")
	config.Quiz.AdvanceDelayMs = viper.GetInt("QUIZ_ADVANCE_DELAY_MS")
	config.Quiz.SessionIdleMin = viper.GetInt("QUIZ_SESSION_IDLE_MIN")

	if config.TMDB.APIKey == "" {
		log.Warn().Msg("TMDB_API_KEY is not set. Upstream movie requests will fail.")
	}

	log.Info().Str("port", config.Server.Port).Str("default_language", config.Quiz.DefaultLanguage).Msg("Config loaded")
	return &config, nil
}
