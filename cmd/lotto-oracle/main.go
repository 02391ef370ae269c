package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/config"
	"github.com/lotto-oracle/lotto-oracle/internal/history"
	"github.com/lotto-oracle/lotto-oracle/internal/logger"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
	"github.com/lotto-oracle/lotto-oracle/internal/predictor"
	"github.com/lotto-oracle/lotto-oracle/internal/telegram"
)

var (
	configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")
	seed       = flag.Uint64("seed", 0, "Random seed for reproducible predictions (0 = crypto source)")
	addDraw    = flag.String("add", "", "Record a draw before predicting: \"DATE n1 n2 n3 n4 n5 n6 bonus\"")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	store, err := history.Open(cfg.Storage.DBPath, cfg.Lottery.MaxNumber)
	if err != nil {
		logger.Fatal("Failed to open draw history: %v", err)
	}
	defer store.Close()

	if *addDraw != "" {
		draw, err := parseDraw(*addDraw)
		if err != nil {
			logger.Fatal("Invalid draw %q: %v", *addDraw, err)
		}
		if err := store.Add(draw); err != nil {
			logger.Fatal("Failed to record draw: %v", err)
		}
		if err := store.Rotate(cfg.Storage.MaxDraws); err != nil {
			logger.Warn("Failed to rotate draw history: %v", err)
		}
		logger.Info("Recorded draw %v (bonus %d) for %s", draw.Numbers, draw.Bonus, draw.Date)
	}

	draws, err := store.Recent(cfg.Storage.MaxDraws)
	if err != nil {
		logger.Fatal("Failed to load draw history: %v", err)
	}
	logger.Info("Loaded %d draws from %s", len(draws), cfg.Storage.DBPath)

	rng := predictor.DefaultRNG()
	if *seed != 0 {
		rng = predictor.NewSeededRNG(*seed)
		logger.Info("Using seeded random source (seed %d)", *seed)
	}

	engine := predictor.New(predictor.Config{
		Analysis: analysis.Options{
			MaxNumber:     cfg.Lottery.MaxNumber,
			RecencyWindow: cfg.Lottery.RecencyWindow,
			HotWindow:     cfg.Lottery.HotWindow,
			ColdWindow:    cfg.Lottery.ColdWindow,
			AvoidWindow:   cfg.Lottery.AvoidWindow,
		},
		Weights:           cfg.Prediction.Weights,
		SelectionAttempts: cfg.Prediction.SelectionAttempts,
		RankDecay:         cfg.Prediction.RankDecay,
	}, rng)

	result, err := engine.Generate(draws, nil)
	if err != nil {
		logger.Fatal("Prediction failed: %v", err)
	}

	printResult(result)

	if cfg.Telegram.Enabled {
		client, err := telegram.NewClient(
			cfg.Telegram.BotToken,
			cfg.Telegram.ChatID,
			cfg.Telegram.MaxRetries,
			cfg.Telegram.RetryDelayBase,
		)
		if err != nil {
			logger.Fatal("Failed to initialize Telegram client: %v", err)
		}
		if err := client.Send(result); err != nil {
			logger.Error("Failed to send prediction: %v", err)
			os.Exit(1)
		}
		logger.Info("Prediction %s delivered via Telegram", result.ID)
	}
}

// parseDraw parses the -add flag payload: a date followed by 6 main numbers
// and the bonus, space separated.
func parseDraw(s string) (models.Draw, error) {
	var d models.Draw
	n, err := fmt.Sscanf(s, "%s %d %d %d %d %d %d %d",
		&d.Date, &d.Numbers[0], &d.Numbers[1], &d.Numbers[2],
		&d.Numbers[3], &d.Numbers[4], &d.Numbers[5], &d.Bonus)
	if err != nil {
		return models.Draw{}, err
	}
	if n != 8 {
		return models.Draw{}, fmt.Errorf("expected 8 fields, got %d", n)
	}
	return d, nil
}

func printResult(result *models.PredictionResult) {
	fmt.Printf("Prediction %s (generated %s)\n", result.ID, result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Numbers:    %s\n", joinInts(result.Numbers))
	fmt.Printf("  Bonus:      %d\n", result.Bonus)
	fmt.Printf("  Confidence: %.1f%%\n", result.Confidence)

	fmt.Println("  Reasoning:")
	for _, reason := range result.Reasoning {
		fmt.Printf("    - %s\n", reason)
	}

	if len(result.Alternatives) > 0 {
		fmt.Println("  Alternatives:")
		for _, alt := range result.Alternatives {
			fmt.Printf("    %-12s %s\n", alt.Strategy+":", joinInts(alt.Numbers))
		}
	}
}

func joinInts(numbers models.NumberSet) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
