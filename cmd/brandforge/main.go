package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brandforge/internal/config"
	"brandforge/internal/generation"
	"brandforge/internal/logging"
	"brandforge/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brandforge",
	Short: "BrandForge - marketing content engine for small businesses",
	Long: `BrandForge generates marketing copy (headline, subheadline, caption,
call-to-action, hashtags) for small businesses.

It cycles marketing angles per campaign, diversifies creative concepts,
scores headline/caption coherence, and falls back through progressively
simpler generation attempts down to deterministic local synthesis, so a
request always produces usable content.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.Init(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd runs the full pipeline for one brand.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate marketing content for a business",
	Long: `Runs the full generation pipeline: assigns the campaign's next
marketing angle, draws a creative concept, and produces validated copy
through the fallback tier chain.

Example:
  brandforge generate --name "Luigi's Trattoria" --category restaurant \
    --platforms instagram,facebook --audience "young professionals"`,
	RunE: runGenerate,
}

// validateCmd scores a headline/caption pair without generating.
var validateCmd = &cobra.Command{
	Use:   "validate [headline] [caption]",
	Short: "Score headline/caption story coherence",
	Args:  cobra.ExactArgs(2),
	RunE:  runValidate,
}

var (
	businessName string
	category     string
	platforms    []string
	location     string
	audience     string
	userID       string
	storePath    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")

	generateCmd.Flags().StringVar(&businessName, "name", "", "Business name (required)")
	generateCmd.Flags().StringVar(&category, "category", "", "Business category (required)")
	generateCmd.Flags().StringSliceVar(&platforms, "platforms", []string{"instagram"}, "Target platforms")
	generateCmd.Flags().StringVar(&location, "location", "", "Business location")
	generateCmd.Flags().StringVar(&audience, "audience", "", "Target audience")
	generateCmd.Flags().StringVar(&userID, "user", "", "User id for quota accounting")
	generateCmd.Flags().StringVar(&storePath, "store", "", "SQLite path for durable campaign state")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("category")

	validateCmd.Flags().StringVar(&category, "category", "", "Business category")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildOrchestrator(cfg *config.Config) (*generation.Orchestrator, func(), error) {
	provider, err := generation.NewProvider(cfg.LLM)
	if err != nil {
		// Without a provider the engine still works through local synthesis.
		logger.Warn("no generation provider, external tiers disabled", zap.Error(err))
		provider = nil
	}

	cleanup := func() {}
	var opts []generation.Option
	if storePath != "" {
		st, err := store.Open(storePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open store: %w", err)
		}
		cleanup = func() { st.Close() }
		opts = append(opts,
			generation.WithTracker(trackerWithStore(st)),
			generation.WithAudit(st),
		)
	}
	return generation.New(cfg, provider, opts...), cleanup, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	orch, cleanup, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reload scoring policy on config edits while running.
	if configPath != "" {
		if w, err := config.NewWatcher(configPath, orch.SetPolicy); err == nil {
			go w.Run(ctx)
		}
	}

	results, err := orch.GenerateForPlatforms(ctx, requestFromFlags(), platforms)
	if err != nil {
		return err
	}

	for platform, res := range results {
		fmt.Printf("=== %s (tier %d, score %d, angle %s)\n", platform, res.Tier, res.Score, res.Angle)
		fmt.Printf("Headline:    %s\n", res.Headline)
		if res.Subheadline != "" {
			fmt.Printf("Subheadline: %s\n", res.Subheadline)
		}
		fmt.Printf("Caption:     %s\n", res.Caption)
		fmt.Printf("CTA:         %s\n", res.CallToAction)
		fmt.Printf("Hashtags:    %s\n\n", strings.Join(res.Hashtags, " "))
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	orch := generation.New(cfg, nil)
	report := orch.ValidateCoherence(args[0], args[1], category)

	fmt.Printf("Score: %d  Coherent: %v\n", report.Score, report.IsCoherent())
	fmt.Printf("Theme: %s  Tone: %s\n", report.DominantTheme, report.DominantTone)
	for _, issue := range report.Issues {
		fmt.Printf("- [%s] %s\n", issue.Category, issue.Message)
	}
	return nil
}
