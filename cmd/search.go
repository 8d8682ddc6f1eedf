package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/careerpilot/jobmatch/internal/logger"
	"github.com/careerpilot/jobmatch/internal/pipeline"
	"github.com/careerpilot/jobmatch/internal/scoring"
	"github.com/careerpilot/jobmatch/internal/secrets"
	"github.com/careerpilot/jobmatch/internal/skills"
	"github.com/careerpilot/jobmatch/internal/source"
	"github.com/careerpilot/jobmatch/internal/source/jsearch"
	"github.com/careerpilot/jobmatch/internal/source/serpapi"
)

const (
	PromptExit              = "Exit"
	PromptReportByEmployers = "Report by employers"
	PromptMatchesToFile     = "Dump matches to file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByEmployers, PromptMatchesToFile, PromptExit},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the configured providers and rank listings by candidate fit",
	Run: func(cmd *cobra.Command, _ []string) {
		search(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "override the search query from the config")
	searchCmd.Flags().StringP("location", "l", "", "override the search location from the config")
	searchCmd.Flags().IntP("top", "t", 0, "override the maximum number of ranked matches")
	searchCmd.Flags().Bool("no-prompt", false, "print the ranked matches and exit without the action prompt")
}

// search is the main command for the cli.
func search(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting jobmatch", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}

	query, location := resolveSearchTerms(cmd, config)
	if query == "" {
		logger.Fatal("search query is required",
			zap.String("hint", "set search.query in the configuration file or pass --query"),
		)
	}

	candidate := config.Profile
	candidate.Sanitize()

	logger.Info("candidate profile loaded",
		zap.Int("skills", len(candidate.Skills)),
		zap.Strings("target_roles", candidate.TargetRoles),
		zap.String("location_preference", candidate.LocationPreference),
	)

	sources, err := prepareSources(config, logger)
	if err != nil {
		logger.Fatal("preparing sources", zap.Error(err))
	}
	if len(sources) == 0 {
		logger.Fatal("no sources enabled",
			zap.String("hint", "enable at least one provider under the sources section"),
		)
	}

	topN := config.TopN
	if flagTop, _ := cmd.Flags().GetInt("top"); flagTop > 0 {
		topN = flagTop
	}

	engine := scoring.NewEngine(skills.NewNormalizer(synonymTable(config)))
	agg := pipeline.New(sources, engine, logger, topN)

	logger.Info("starting the search", zap.String("query", query), zap.String("location", location))

	result, err := agg.Search(ctx, candidate, query, location)
	if err != nil {
		var noResults *pipeline.NoResultsError
		if errors.As(err, &noResults) {
			reportNoResults(logger, noResults, agg.SourceCount())
			return
		}
		logger.Fatal("search failed", zap.Error(err))
	}

	for _, diag := range result.Diagnostics {
		logger.Warn("source diagnostic",
			zap.String("source", diag.Source),
			zap.String("message", diag.Message),
		)
	}

	printMatches(logger, result)

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *pipeline.Result) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByEmployers:
		pretty, _ := json.MarshalIndent(result.ReportByEmployer(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", result.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func resolveSearchTerms(cmd *cobra.Command, config *Config) (string, string) {
	query := ""
	location := ""
	if config.Search != nil {
		query = config.Search.Query
		location = config.Search.Location
	}

	if flagQuery, _ := cmd.Flags().GetString("query"); flagQuery != "" {
		query = flagQuery
	}
	if flagLocation, _ := cmd.Flags().GetString("location"); flagLocation != "" {
		location = flagLocation
	}

	return query, location
}

// prepareSources builds the enabled provider clients. Order matters: it is
// the dedup priority, with JSearch acting as the primary board.
func prepareSources(config *Config, log *zap.Logger) ([]source.Source, error) {
	if config.Sources == nil {
		return nil, nil
	}

	var sources []source.Source

	if cfg := config.Sources.JSearch; cfg != nil && cfg.Enabled {
		key, err := secrets.Load(secrets.Source{
			Name:  "jsearch api key",
			Value: cfg.APIKey,
			File:  cfg.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set sources.jsearch.api-key-file or JSEARCH_API_KEY_FILE)", err)
		}
		sources = append(sources, jsearch.New(logger.WithSource(log, "jsearch"), key))
	}

	if cfg := config.Sources.SerpAPI; cfg != nil && cfg.Enabled {
		key, err := secrets.Load(secrets.Source{
			Name:  "serpapi api key",
			Value: cfg.APIKey,
			File:  cfg.APIKeyFile,
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set sources.serpapi.api-key-file or SERPAPI_API_KEY_FILE)", err)
		}
		sources = append(sources, serpapi.New(logger.WithSource(log, "serpapi"), key))
	}

	return sources, nil
}

func synonymTable(config *Config) skills.Table {
	table := skills.DefaultTable()
	if config.Skills != nil && config.Skills.Synonyms != nil {
		table = table.Merge(config.Skills.Synonyms)
	}
	return table
}

func reportNoResults(logger *zap.Logger, noResults *pipeline.NoResultsError, configured int) {
	for _, diag := range noResults.Diagnostics {
		logger.Warn("source diagnostic",
			zap.String("source", diag.Source),
			zap.String("message", diag.Message),
		)
	}

	if noResults.AllSourcesFailed(configured) {
		logger.Error("exiting", zap.String("reason", "all providers failed"))
		return
	}

	logger.Info("exiting", zap.String("reason", "no listings found"))
}

func printMatches(logger *zap.Logger, result *pipeline.Result) {
	logger.Info("ranked matches", zap.Int("count", result.Len()))

	for idx, match := range result.Matches {
		logger.Info("match",
			zap.Int("rank", idx+1),
			zap.Int("score", match.Fit.Score),
			zap.String("title", match.Listing.Title),
			zap.String("employer", match.Listing.Employer),
			zap.String("location", match.Listing.Location),
			zap.Strings("matching_skills", match.Fit.MatchingSkills),
			zap.String("explanation", match.Fit.Explanation),
		)

		logger.Debug("match description",
			zap.String("title", match.Listing.Title),
			zap.String("description", truncateDescription(match.Listing.Description)),
		)
	}
}

const maxLoggedDescription = 200

func truncateDescription(s string) string {
	return logger.TruncateForLog(s, maxLoggedDescription)
}
