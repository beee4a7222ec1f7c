package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dovydas-v/uniguide/internal/config"
	"github.com/dovydas-v/uniguide/internal/db"
	"github.com/dovydas-v/uniguide/internal/llm"
	"github.com/dovydas-v/uniguide/internal/observability"
	"github.com/dovydas-v/uniguide/internal/provider"
	"github.com/dovydas-v/uniguide/internal/ranking"
	"github.com/dovydas-v/uniguide/internal/results"
	"github.com/dovydas-v/uniguide/internal/types"
)

var (
	recommendConfig   string
	recommendPrefs    string
	recommendMode     string
	recommendSort     string
	recommendOrder    string
	recommendSearch   string
	recommendPage     int
	recommendPageSize int
	recommendRelaxed  bool
	recommendVerbose  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend study programs for a preference profile",
	Long: `Load a preferences JSON file, run the recommendation pipeline against the
database and print one page of ranked results.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendConfig, "config", "", "Path to a JSON config file")
	recommendCmd.Flags().StringVar(&recommendPrefs, "preferences", "", "Path to a preferences JSON file")
	recommendCmd.Flags().StringVar(&recommendMode, "mode", "", `Recommendation mode: "ai" or "filter"`)
	recommendCmd.Flags().StringVar(&recommendSort, "sort", "", "Sort field (relevance, title, rating, university.name, degree_type, difficulty_rating)")
	recommendCmd.Flags().StringVar(&recommendOrder, "order", "", "Sort order (asc or desc)")
	recommendCmd.Flags().StringVar(&recommendSearch, "search", "", "Filter results by a search term")
	recommendCmd.Flags().IntVar(&recommendPage, "page", 1, "Page of results to print")
	recommendCmd.Flags().IntVar(&recommendPageSize, "page-size", 0, "Results per page")
	recommendCmd.Flags().BoolVar(&recommendRelaxed, "relaxed", false, "Show the relaxed pool instead of strict matches")
	recommendCmd.Flags().BoolVar(&recommendVerbose, "verbose", false, "Print detailed progress information")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := recommendSettings()
	if err != nil {
		return err
	}
	if cfg.Preferences == "" {
		return fmt.Errorf("a preferences file is required (--preferences or config)")
	}

	prefs, err := loadPreferences(cfg.Preferences)
	if err != nil {
		return err
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	p, closeProvider, err := buildProvider(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer closeProvider()

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintPreferences(prefs)
	}

	controller := results.NewController(prefs)
	defer controller.Close()

	resp, err := p.Recommend(ctx, prefs)
	if err != nil {
		controller.SetError(err)
		return fmt.Errorf("recommendation failed: %w", err)
	}
	controller.SetResponse(resp)

	if controller.State() == results.StateEmpty {
		fmt.Println("No matching programs found.")
		return nil
	}

	if recommendRelaxed {
		if !controller.HasRelaxed() {
			return fmt.Errorf("no relaxed matches for this profile")
		}
		controller.SwitchTab(results.TabRelaxed)
	}

	if cfg.PageSize > 0 {
		controller.SetPageSize(cfg.PageSize)
	}
	if cfg.Search != "" {
		controller.Search(cfg.Search)
	}
	if cfg.Sort != "" {
		controller.Resort(ranking.ParseSortField(cfg.Sort), ranking.ParseSortOrder(recommendOrder))
	}
	if recommendPage > 1 {
		controller.SetPage(recommendPage)
	}

	if cfg.Verbose {
		printer.PrintCandidateSummary(controller.Visible().Programs)
	}

	title := "STRICT MATCHES"
	if recommendRelaxed {
		title = "RELAXED MATCHES"
	}
	printer.PrintPage(title, controller.Visible())

	if !recommendRelaxed && controller.HasRelaxed() {
		fmt.Println("Relaxed alternatives are available; rerun with --relaxed to see them.")
	}
	return nil
}

// recommendSettings merges CLI flags over the optional config file.
func recommendSettings() (config.Config, error) {
	flags := config.Config{
		Preferences: recommendPrefs,
		Mode:        recommendMode,
		Sort:        recommendSort,
		Search:      recommendSearch,
		PageSize:    recommendPageSize,
		Verbose:     recommendVerbose,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if recommendConfig != "" {
		fileCfg, err := config.LoadConfig(recommendConfig)
		if err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	if err := flags.Validate(); err != nil {
		return config.Config{}, err
	}
	if flags.DatabaseURL == "" {
		return config.Config{}, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return flags, nil
}

// loadPreferences reads and decodes a preferences JSON file.
func loadPreferences(path string) (*types.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}

	var prefs types.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences JSON: %w", err)
	}
	return &prefs, nil
}

// buildProvider picks the provider for the requested mode. The filter
// provider is the default and the fallback when no API key is configured.
func buildProvider(ctx context.Context, cfg config.Config, database *db.DB) (provider.Provider, func(), error) {
	if cfg.Mode == "ai" {
		if cfg.APIKey == "" {
			return nil, nil, fmt.Errorf("GEMINI_API_KEY is required for --mode ai")
		}
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, llm.ModelFromEnv())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		return provider.NewAIProvider(client, database), func() { _ = client.Close() }, nil
	}
	return provider.NewFilterProvider(database), func() {}, nil
}
