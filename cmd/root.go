package cmd

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/careerpilot/jobmatch/internal/profile"
	"github.com/careerpilot/jobmatch/internal/skills"
)

const (
	app = "jobmatch"
)

type Config struct {
	Search *SearchConfig `mapstructure:"search"`
	// Profile is the candidate the listings are scored against. In the
	// full product it comes from the persisted user profile; here it is
	// part of the configuration file.
	Profile *profile.Candidate `mapstructure:"profile" validate:"required"`
	TopN    int                `mapstructure:"top-n" validate:"min=0"`
	Sources *SourcesConfig     `mapstructure:"sources"`
	Skills  *SkillsConfig      `mapstructure:"skills"`
}

type SearchConfig struct {
	Query    string `mapstructure:"query"`
	Location string `mapstructure:"location"`
}

type SourcesConfig struct {
	JSearch *ProviderConfig `mapstructure:"jsearch"`
	SerpAPI *ProviderConfig `mapstructure:"serpapi"`
}

type ProviderConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
}

type SkillsConfig struct {
	// Synonyms extends the built-in variation table: canonical skill name
	// to extra accepted variants.
	Synonyms skills.Table `mapstructure:"synonyms"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmatch aggregates listings from job-search providers and ranks them by candidate fit",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("sources.jsearch.api-key-file", "JSEARCH_API_KEY_FILE"); err != nil {
		log.Fatalf("binding JSEARCH_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("sources.serpapi.api-key-file", "SERPAPI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding SERPAPI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for search command now. If there is no config, we can skip initialization
	if searchCmd.CalledAs() == "" {
		return
	}

	// Provider keys are commonly kept in a local .env during development.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config != nil {
		if err := validator.New().Struct(config); err != nil {
			return config, err
		}
	}

	return config, nil
}
