package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vietcheck/vietcheck/internal/pipeline"
)

var (
	newsJSON    string
	newsCount   int
	newsTimeout time.Duration
)

// newsCmd represents the news command
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch recent scam-warning news from mainstream outlets",
	Long: `News asks the analysis service for the most recent online-fraud warnings
reported by mainstream Vietnamese press. Failures never abort: an empty
list is shown with a retry suggestion.

Example:
  vietcheck news
  vietcheck news --count 10 --json news.json`,
	RunE: runNews,
}

func init() {
	rootCmd.AddCommand(newsCmd)

	newsCmd.Flags().StringVar(&newsJSON, "json", "", "output JSON path (optional)")
	newsCmd.Flags().IntVar(&newsCount, "count", 0, "number of items to request (default from config)")
	newsCmd.Flags().DurationVar(&newsTimeout, "timeout", time.Minute, "fetch timeout")
	newsCmd.Flags().StringVar(&llmProvider, "provider", "", "analysis provider (gemini, openai)")
	newsCmd.Flags().StringVar(&llmModel, "model", "", "analysis model name")
}

func runNews(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), newsTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	cfg.LLM.APIKey = resolveAPIKey(cfg.LLM.Provider)
	if newsCount > 0 {
		cfg.News.Count = newsCount
	}

	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	p, err := pipeline.NewPipeline(cfg, logger)
	if err != nil {
		return userFacing(err)
	}

	items := p.FetchScamNews(ctx)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if newsJSON != "" {
		if err := renderer.RenderJSON(items, newsJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", newsJSON)
		}
	}

	renderer.RenderNews(items)
	return nil
}
