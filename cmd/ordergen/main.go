package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"order-dataset-lab/internal/config"
	"order-dataset-lab/internal/data"
	"order-dataset-lab/internal/logger"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

const defaultFileName = "orders_october.csv"

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Printf("Runtime error: %v.\n", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Orders, "orders", cfg.Orders, "number of orders to generate")
	flag.StringVar(&cfg.StartDate, "start", cfg.StartDate, "first order date (YYYY-MM-DD)")
	flag.StringVar(&cfg.EndDate, "end", cfg.EndDate, "last order date, inclusive (YYYY-MM-DD)")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "CSV destination (default ../datasets/"+defaultFileName+" next to the binary)")
	flag.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print a per-dimension summary table")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Runtime error: build logger: %v.\n", err)
		os.Exit(1)
	}

	err = run(cfg, log, os.Stdout)
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run generates the dataset described by cfg and writes it out. Every failure
// is logged before it is returned.
func run(cfg config.Config, log *zap.Logger, out io.Writer) error {
	start := time.Now()

	gen, err := newGenerator(cfg)
	if err != nil {
		log.Error(fmt.Sprintf("Runtime error: %v.", err))
		return err
	}

	orders, err := gen.Generate()
	if err != nil {
		log.Error(fmt.Sprintf("An unexpected error occurred: %v.", err))
		return err
	}
	log.Debug("orders generated", zap.Int("orders", len(orders)), zap.Duration("elapsed", time.Since(start)))

	path := cfg.Output
	if path == "" {
		path, err = defaultOutputPath()
		if err != nil {
			log.Error(fmt.Sprintf("An unexpected error occurred: %v.", err))
			return err
		}
	}

	// Save logs its own failures.
	if _, err := data.NewWriter(log).Save(orders, path); err != nil {
		return err
	}

	if cfg.Summary {
		if err := printSummaryTable(out, data.Summarize(orders)); err != nil {
			log.Warn("failed to render summary", zap.Error(err))
		}
	}
	return nil
}

func newGenerator(cfg config.Config) (*data.Generator, error) {
	startDate, err := data.ParseDate(cfg.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := data.ParseDate(cfg.EndDate)
	if err != nil {
		return nil, err
	}
	return data.NewGenerator(data.GeneratorConfig{
		Orders:    cfg.Orders,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

// defaultOutputPath points at a datasets directory beside the binary's own.
func defaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "datasets", defaultFileName), nil
}

func printSummaryTable(w io.Writer, summary data.Summary) error {
	if summary.Total == 0 {
		_, err := fmt.Fprintln(w, "no orders generated")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Dimension", "Value", "Orders", "Share", "Avg delivery (h)", "Avg amount")
	for _, row := range summary.Rows {
		share := float64(row.Count) / float64(summary.Total) * 100
		if err := table.Append([]string{
			row.Dimension,
			row.Value,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(share, 'f', 1, 64) + "%",
			strconv.FormatFloat(row.MeanDeliveryHours, 'f', 2, 64),
			row.MeanAmount.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
