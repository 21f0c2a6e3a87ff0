package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vietcheck/vietcheck/internal/model"
	"github.com/vietcheck/vietcheck/internal/pipeline"
	"go.uber.org/zap"
)

var (
	checkPhone    string
	checkBank     string
	checkBankName string
	checkWebsite  string
	checkFacebook string
	checkImage    string
	outJSON       string
	outMD         string
	checkTimeout  time.Duration
	noCache       bool
	noFooter      bool
	llmProvider   string
	llmModel      string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the reputation of a phone, bank account, website, Facebook profile or screenshot",
	Long: `Check runs one reputation investigation and prints a typed verdict.

Exactly one subject is pursued per invocation. When several flags are given
the priority order is: --image, --phone, --bank, --website, --facebook.

Example:
  vietcheck check --phone 0912345678
  vietcheck check --bank 19036224 --bank-name Techcombank
  vietcheck check --website shop-giare.net --json verdict.json
  vietcheck check --facebook https://facebook.com/someprofile
  vietcheck check --image screenshot.jpg --md report.md`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPhone, "phone", "", "phone number to check")
	checkCmd.Flags().StringVar(&checkBank, "bank", "", "bank account number to check")
	checkCmd.Flags().StringVar(&checkBankName, "bank-name", "", "bank name (context for --bank)")
	checkCmd.Flags().StringVar(&checkWebsite, "website", "", "website URL or domain to check")
	checkCmd.Flags().StringVar(&checkFacebook, "facebook", "", "Facebook profile/page URL to check")
	checkCmd.Flags().StringVar(&checkImage, "image", "", "path to a screenshot to check")

	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall check timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh check)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	checkCmd.Flags().StringVar(&llmProvider, "provider", "", "analysis provider (gemini, openai)")
	checkCmd.Flags().StringVar(&llmModel, "model", "", "analysis model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCheckFlags(cfg)

	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	p, err := pipeline.NewPipeline(cfg, logger)
	if err != nil {
		return userFacing(err)
	}

	if verbose {
		if overlaps := p.RuleOverlap(); len(overlaps) > 0 {
			logger.Warn("classification keyword tiers overlap", zap.Strings("terms", overlaps))
		}
	}

	req := model.CheckRequest{
		PhoneNumber: checkPhone,
		BankAccount: checkBank,
		BankName:    checkBankName,
		WebsiteURL:  checkWebsite,
		FacebookURL: checkFacebook,
	}
	if checkImage != "" {
		data, err := os.ReadFile(checkImage)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		req.ImageData = base64.StdEncoding.EncodeToString(data)
	}

	verdict, err := p.CheckReputation(ctx, req)
	if err != nil {
		return userFacing(err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(verdict, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(verdict, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(verdict)
	return nil
}

// applyCheckFlags lays CLI flags over the loaded configuration
func applyCheckFlags(cfg *model.Config) {
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	cfg.LLM.APIKey = resolveAPIKey(cfg.LLM.Provider)
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	cfg.Output.Verbose = verbose
}
