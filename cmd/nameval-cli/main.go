package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"yashubustudio/nameval/nameval"
)

type cliOptions struct {
	configPath string
	inputPath  string
	outputPath string
	outputDir  string
	nameColumn string
	mode       string
	stdout     bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("nameval-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("nameval-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json or weights YAML (default: ./config.json)")
	flag.StringVar(&opts.inputPath, "input", "", "CSV/TSV/text file containing names to evaluate")
	flag.StringVar(&opts.outputPath, "output", "", "CSV file to write results (default uses --output-dir/result_*.csv)")
	flag.StringVar(&opts.outputDir, "output-dir", "csv", "Directory where result CSVs are written when --output is omitted")
	flag.StringVar(&opts.nameColumn, "name-column", "", "Column name or #index for the name column")
	flag.StringVar(&opts.mode, "mode", "", "Composition mode override: sum or geometric")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print ranked results to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.inputPath = strings.TrimSpace(opts.inputPath)
	opts.outputPath = strings.TrimSpace(opts.outputPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)
	opts.nameColumn = strings.TrimSpace(opts.nameColumn)
	opts.mode = strings.TrimSpace(opts.mode)

	if opts.inputPath == "" {
		flag.Usage()
		return opts, errors.New("missing required --input file")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := nameval.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	switch opts.mode {
	case "":
	case string(nameval.ModeSum), string(nameval.ModeGeometric):
		cfg.Mode = nameval.CompositionMode(opts.mode)
	default:
		return fmt.Errorf("unknown composition mode %q", opts.mode)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	service := nameval.NewService(cfg, logger)

	names, err := nameval.ParseNameFile(opts.inputPath, nameval.NameParseOptions{Column: opts.nameColumn})
	if err != nil {
		return fmt.Errorf("read input names: %w", err)
	}
	if len(names) == 0 {
		return errors.New("input file does not contain any names")
	}

	results, skipped := service.EvaluateAll(names)
	if skipped > 0 {
		fmt.Printf("%d 件はカナ読みが得られずスキップしました\n", skipped)
	}

	outputPath, err := resolveOutputPath(opts.outputPath, opts.outputDir)
	if err != nil {
		return err
	}
	if err := nameval.WriteResultCSV(outputPath, results); err != nil {
		return err
	}
	fmt.Printf("評価結果を %s に保存しました\n", outputPath)

	if opts.stdout {
		printRanking(results)
	}
	return nil
}

func resolveOutputPath(path, dir string) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir == "" {
		dir = "csv"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("result_%s.csv", time.Now().Format("20060102150405"))
	return filepath.Join(absDir, filename), nil
}

func printRanking(results []nameval.Result) {
	ranked := make([]nameval.Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	fmt.Println()
	fmt.Println("==== 発音しやすさランキング ====")
	for i, r := range ranked {
		fmt.Printf("%d. %s (%s) score=%.3f M=%d [%s]\n",
			i+1, r.Name, r.Kana, r.Score, r.M, strings.Join(r.Moras, "|"))
		if r.Advanced != nil {
			fmt.Printf("    symbolism=%+.2f naturalness=%.2f rhythm=%.2f\n",
				r.Advanced.Symbolism, r.Advanced.Naturalness, r.Advanced.Rhythm)
		}
	}
}
