package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	VideoAPI  VideoAPIConfig  `mapstructure:"video_api"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// OpenAIConfig configures the LLM provider used for journal analysis.
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// VideoAPIConfig configures the external exercise-video search provider.
type VideoAPIConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RecommendConfig carries the tuning constants of the routine assembler.
// The partial-credit value and the selection caps have no single canonical
// value; they are configuration, not code.
type RecommendConfig struct {
	GoalPartialCredit float64 `mapstructure:"goal_partial_credit"`
	MinCandidates     int     `mapstructure:"min_candidates_per_part"`
	MaxPerBodyPart    int     `mapstructure:"max_per_body_part"`
	MaxPerDay         int     `mapstructure:"max_per_day"`
	WarmUpMinutes     int     `mapstructure:"warm_up_minutes"`
	CoolDownMinutes   int     `mapstructure:"cool_down_minutes"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Env override for nested keys, e.g. openai.api_key -> OPENAI_API_KEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "exercise_rec")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.timeout", "60s")
	viper.SetDefault("video_api.timeout", "30s")
	viper.SetDefault("video_api.cache_ttl", "1h")
	viper.SetDefault("recommend.goal_partial_credit", 0.3)
	viper.SetDefault("recommend.min_candidates_per_part", 3)
	viper.SetDefault("recommend.max_per_body_part", 2)
	viper.SetDefault("recommend.max_per_day", 6)
	viper.SetDefault("recommend.warm_up_minutes", 10)
	viper.SetDefault("recommend.cool_down_minutes", 10)

	err = viper.ReadInConfig()
	// A missing config file is fine: defaults plus env vars are a complete
	// configuration. Any other read error is fatal.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
