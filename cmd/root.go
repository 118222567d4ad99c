package cmd

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/careerconnect/internal/jobs"
	"github.com/spigell/careerconnect/internal/report"
	"github.com/spigell/careerconnect/internal/search"
	"github.com/spigell/careerconnect/internal/server"
)

const (
	app = "careerconnect"
)

type Config struct {
	Providers *ProvidersConfig `mapstructure:"providers"`
	Skills    *SkillsConfig    `mapstructure:"skills"`
	Display   *DisplayConfig   `mapstructure:"display"`
	Serve     *ServeConfig     `mapstructure:"serve"`
	Timeout   time.Duration    `mapstructure:"timeout"`
	Workers   int              `mapstructure:"workers"`
	UserAgent string           `mapstructure:"user-agent"`
}

type ProvidersConfig struct {
	Adzuna   *AdzunaConfig   `mapstructure:"adzuna"`
	Remotive *RemotiveConfig `mapstructure:"remotive"`
	Jooble   *JoobleConfig   `mapstructure:"jooble"`
}

type AdzunaConfig struct {
	AppID          string `mapstructure:"app-id"`
	AppIDFile      string `mapstructure:"app-id-file"`
	AppKey         string `mapstructure:"app-key"`
	AppKeyFile     string `mapstructure:"app-key-file"`
	Country        string `mapstructure:"country"`
	ResultsPerPage int    `mapstructure:"results-per-page"`
	URL            string `mapstructure:"url"`
}

type RemotiveConfig struct {
	URL string `mapstructure:"url"`
}

type JoobleConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Location   string `mapstructure:"location"`
	URL        string `mapstructure:"url"`
}

type SkillsConfig struct {
	// Vocabulary replaces the built-in skill list when set.
	Vocabulary []string `mapstructure:"vocabulary"`
}

type DisplayConfig struct {
	Limit int `mapstructure:"limit"`
}

type ServeConfig struct {
	Address     string `mapstructure:"address"`
	MaxUploadMB int    `mapstructure:"max-upload-mb"`
}

var envBindings = map[string]string{
	"providers.adzuna.app-id":       "ADZUNA_APP_ID",
	"providers.adzuna.app-id-file":  "ADZUNA_APP_ID_FILE",
	"providers.adzuna.app-key":      "ADZUNA_APP_KEY",
	"providers.adzuna.app-key-file": "ADZUNA_APP_KEY_FILE",
	"providers.jooble.api-key":      "JOOBLE_API_KEY",
	"providers.jooble.api-key-file": "JOOBLE_API_KEY_FILE",
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerconnect is a simple cli for finding jobs that match the skills in your resume",
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	if err := bindEnv(viper.GetViper()); err != nil {
		log.Fatalf("binding environment variables: %v", err)
	}
	setDefaults(viper.GetViper())

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerconnect.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func bindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timeout", jobs.DefaultTimeout)
	v.SetDefault("workers", search.MaxWorkers)
	v.SetDefault("display.limit", report.DefaultLimit)
	v.SetDefault("serve.address", server.DefaultAddress)
	v.SetDefault("serve.max-upload-mb", server.DefaultMaxUpload>>20)
}

func initConfig() {
	// Credentials may live in a .env file during local development.
	_ = godotenv.Load()

	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Everything can come from the environment, so only a broken config file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Providers == nil {
		config.Providers = &ProvidersConfig{}
	}
	if config.Providers.Adzuna == nil {
		config.Providers.Adzuna = &AdzunaConfig{}
	}
	if config.Providers.Remotive == nil {
		config.Providers.Remotive = &RemotiveConfig{}
	}
	if config.Providers.Jooble == nil {
		config.Providers.Jooble = &JoobleConfig{}
	}
	if config.Skills == nil {
		config.Skills = &SkillsConfig{}
	}
	if config.Display == nil {
		config.Display = &DisplayConfig{}
	}
	if config.Serve == nil {
		config.Serve = &ServeConfig{}
	}

	return config, nil
}
