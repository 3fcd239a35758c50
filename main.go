package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"utterance_generator/auth"
	"utterance_generator/config"
	"utterance_generator/generator"
	"utterance_generator/storage"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := &cobra.Command{
		Use:          "uttergen",
		Short:        "Generate diverse utterances for an intention and save them as CSV",
		SilenceUsage: true,
		RunE:         runGenerate,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (optional)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate 10 utterances for an intention (default command)",
		RunE:  runGenerate,
	}
	root.AddCommand(generateCmd, newOutputsCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	in := bufio.NewReader(os.Stdin)

	if cfg.Provider != "mock" {
		resolver := auth.NewResolver(logger)
		if _, ok := resolver.Resolve(ctx); !ok {
			fmt.Println("No valid Google credentials found.")
			if !promptForAPIKey(in) {
				return errors.New("no usable Google credentials; set GOOGLE_API_KEY and try again")
			}
		}
	}

	fmt.Println("Hello! Welcome to the Utterance Generator.")
	fmt.Print("Please enter an intention: ")
	intention := strings.TrimSpace(readLine(in))
	if intention == "" {
		return errors.New("no intention provided")
	}

	agent, err := buildAgent(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println("Generating utterances...")
	utterances, err := agent.Generate(ctx, intention)
	if err != nil {
		if errors.Is(err, generator.ErrGenerationExhausted) {
			return errors.New("failed to generate utterances, please try again")
		}
		return err
	}

	fmt.Printf("\nGenerated utterances for %q:\n", intention)
	fmt.Println(strings.Repeat("-", 50))
	for i, u := range utterances {
		fmt.Printf("%2d. %s\n", i+1, u)
	}

	store := storage.NewStore(cfg.OutputDir, logger)
	path, err := store.Save(utterances, intention)
	if err != nil {
		// Persistence is a degraded outcome, not a failed request; the
		// utterances were already displayed.
		logger.Error("saving utterances failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "warning: could not save utterances: %v\n", err)
		return nil
	}
	fmt.Printf("\nDone! %d utterances saved in %s\n", len(utterances), path)
	return nil
}

// buildAgent wires the two-tier client stack. The primary is always the
// Gemini session client; the fallback tier follows cfg.Provider. A fallback
// whose precondition fails (e.g. no API key) is reported and left out rather
// than aborting the run.
func buildAgent(cfg *config.Config, logger *zap.Logger) (*generator.Agent, error) {
	if cfg.Provider == "mock" {
		return generator.NewAgent(generator.MockLLM{}, nil, logger)
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	primary, err := generator.NewGeminiSessionLLMFromConfig(&generator.LLMSettings{
		Provider: "gemini",
		Model:    cfg.Model,
		APIKey:   apiKey,
	})
	if err != nil {
		return nil, err
	}

	var fallback generator.LLMClient
	switch cfg.Provider {
	case "openai":
		fb, err := generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: "openai",
			Model:    cfg.FallbackModel,
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			BaseURL:  cfg.BaseURL,
		})
		if err != nil {
			logger.Warn("openai fallback unavailable", zap.Error(err))
		} else {
			fallback = fb
		}
	default:
		fb, err := generator.NewGeminiLLMFromConfig(&generator.LLMSettings{
			Provider: "gemini",
			Model:    cfg.FallbackModel,
			APIKey:   apiKey,
		})
		if err != nil {
			logger.Warn("stateless gemini fallback unavailable", zap.Error(err))
		} else {
			fallback = fb
		}
	}

	return generator.NewAgent(primary, fallback, logger)
}

func promptForAPIKey(in *bufio.Reader) bool {
	fmt.Println("Tip: you can also set GOOGLE_API_KEY in the environment.")
	fmt.Print("Do you have a Google API key to use instead? (y/n): ")
	if strings.ToLower(strings.TrimSpace(readLine(in))) != "y" {
		return false
	}
	fmt.Print("Enter your Google API key: ")
	key := strings.TrimSpace(readLine(in))
	if key == "" {
		return false
	}
	// Exported so both Gemini clients and later probes can pick it up.
	_ = os.Setenv("GOOGLE_API_KEY", key)
	return true
}

func readLine(in *bufio.Reader) string {
	line, _ := in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	// stdout stays clean for the interactive output.
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func newOutputsCmd() *cobra.Command {
	outputsCmd := &cobra.Command{
		Use:   "outputs",
		Short: "Manage dated utterance output folders",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List dated output folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			dirs, err := m.ListDirs()
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				fmt.Println("No output folders found.")
				return nil
			}
			fmt.Println("Output folders:")
			for _, d := range dirs {
				fmt.Printf("  %s\n", d)
			}
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-folder record file counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			stats, err := m.Stats()
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Println("No output folders found.")
				return nil
			}
			fmt.Printf("Found %d output folder(s):\n", len(stats))
			total := 0
			for _, s := range stats {
				total += s.Files
				fmt.Printf("  %s: %d CSV files\n", s.Name, s.Files)
			}
			fmt.Printf("\nTotal CSV files: %d\n", total)
			return nil
		},
	}

	var days int
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete output folders older than a day threshold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = cfg.RetentionDays
			}
			m, err := newManager()
			if err != nil {
				return err
			}
			cleaned, err := m.Clean(days)
			if err != nil {
				return err
			}
			if len(cleaned) == 0 {
				fmt.Println("No old folders to clean.")
				return nil
			}
			for _, d := range cleaned {
				fmt.Printf("Cleaned old folder: %s\n", d)
			}
			fmt.Printf("Cleaned %d folder(s).\n", len(cleaned))
			return nil
		},
	}
	cleanCmd.Flags().IntVar(&days, "days", 7, "delete folders older than this many days")

	outputsCmd.AddCommand(listCmd, statsCmd, cleanCmd)
	return outputsCmd
}

func newManager() (*storage.Manager, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return storage.NewManager(cfg.OutputDir, logger), nil
}
