package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sukenderreddy/resume-word-suggestor/internal/server"
	"github.com/sukenderreddy/resume-word-suggestor/internal/stopwords"
)

const (
	app       = "resume-ats"
	envPrefix = "RESUME_ATS"
)

type Config struct {
	Keywords *KeywordsConfig `mapstructure:"keywords" validate:"required"`
	Scoring  *ScoringConfig  `mapstructure:"scoring" validate:"required"`
	Server   *server.Config  `mapstructure:"server" validate:"required"`
	Document *DocumentConfig `mapstructure:"document" validate:"required"`
}

type KeywordsConfig struct {
	Language       string   `mapstructure:"language" validate:"required"`
	StopwordsFile  string   `mapstructure:"stopwords-file"`
	ExtraStopwords []string `mapstructure:"extra-stopwords"`
	MinLength      int      `mapstructure:"min-length" validate:"gte=1"`
}

type ScoringConfig struct {
	MinimumFitScore float64 `mapstructure:"minimum-fit-score" validate:"gte=0,lte=100"`
}

type DocumentConfig struct {
	MaxLogLength int `mapstructure:"max-log-length" validate:"gte=0"`
}

// Validate checks the config against its validate tags.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-ats scores a resume against a job description by keyword coverage",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-ats.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("keywords.language", stopwords.DefaultLanguage)
	v.SetDefault("keywords.stopwords-file", "")
	v.SetDefault("keywords.extra-stopwords", []string{})
	v.SetDefault("keywords.min-length", 3)
	v.SetDefault("scoring.minimum-fit-score", 0.0)
	v.SetDefault("server.address", server.DefaultAddress)
	v.SetDefault("server.max-upload-size", server.DefaultMaxUploadSize)
	v.SetDefault("server.allowed-origins", []string{"*"})
	v.SetDefault("document.max-log-length", 200)
}

func initConfig() {
	// .env is optional, real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		// We can't proceed if the config file parsed with error.
		log.Fatal(err)
	}
}

// readConfig loads path, or resume-ats.yaml from the working directory when
// path is empty. Only an explicitly given file has to exist.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}

	return err
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
