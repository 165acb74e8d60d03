// Command marketing-crew runs one of ABank's marketing workflows from the
// command line and writes the run's results to a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/edzai/abank-marketing-crew/internal/config"
	"github.com/edzai/abank-marketing-crew/pkg/crew"
	"github.com/edzai/abank-marketing-crew/pkg/marketing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		workflow  = flag.String("workflow", string(marketing.ProductLaunch), "workflow to run: product_launch, real_time_response or personalized_journey")
		product   = flag.String("product", "", "product name (product_launch only; overrides the default)")
		configDir = flag.String("config", "", "directory with agents.yaml and tasks.yaml (defaults to embedded definitions)")
		outputs   = flag.String("outputs", "outputs", "directory for result files")
		timeout   = flag.Duration("timeout", 10*time.Minute, "overall run timeout")
		inputsCSV = flag.String("inputs", "", "extra inputs as key=value pairs, comma separated")
		verbose   = flag.Bool("verbose", false, "debug logging")
	)
	flag.Parse()

	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	id, err := marketing.ParseWorkflowID(*workflow)
	if err != nil {
		return err
	}

	inputs := marketing.DefaultInputs(id)
	if *product != "" {
		inputs["product_name"] = *product
	}
	if err := mergeInputs(inputs, *inputsCSV); err != nil {
		return err
	}

	opts := []marketing.Option{marketing.WithLogger(logger)}
	if *configDir != "" {
		lib, err := config.LoadDir(*configDir)
		if err != nil {
			return err
		}
		opts = append(opts, marketing.WithLibrary(lib))
	}
	if model := newModel(logger); model != nil {
		opts = append(opts, marketing.WithModel(model))
	}

	dept, err := marketing.New(opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting workflow",
		zap.String("workflow", string(id)),
		zap.Any("inputs", inputs))

	res, err := dept.Run(ctx, id, inputs)
	if err != nil {
		return err
	}

	path, err := saveResult(*outputs, id, res)
	if err != nil {
		return err
	}

	logger.Info("workflow complete",
		zap.String("run_id", res.RunID),
		zap.Int("tasks", len(res.Order)),
		zap.Duration("took", res.FinishedAt.Sub(res.StartedAt)),
		zap.String("result_file", path))

	fmt.Println(res.Final)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// newModel builds the LLM backend if credentials are configured. Without
// them every agent composes deterministic briefings from its tools.
func newModel(logger *zap.Logger) llms.Model {
	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Info("no OPENAI_API_KEY set, running offline")
		return nil
	}
	model, err := openai.New()
	if err != nil {
		logger.Warn("model init failed, running offline", zap.Error(err))
		return nil
	}
	return model
}

func mergeInputs(inputs map[string]string, csv string) error {
	if csv == "" {
		return nil
	}
	for _, pair := range strings.Split(csv, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("malformed input %q, want key=value", pair)
		}
		inputs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

func saveResult(dir string, id marketing.WorkflowID, res *crew.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.json", id, res.StartedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
