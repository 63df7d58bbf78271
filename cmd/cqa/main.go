// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Command cqa reports the most complex functions of a source tree and how
// many of them break camelCase naming.
//
// It exposes four subcommands:
//
//   - analyze: scan a source tree, rank functions and persist a JSON report
//   - report:  render the last saved report in different formats
//   - history: list previous analysis runs of a tree
//   - metrics: list the reported metrics
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	historyadapter "github.com/Luj8n/code-quality-analyzer/internal/adapter/history"
	outputadapter "github.com/Luj8n/code-quality-analyzer/internal/adapter/output"
	parser "github.com/Luj8n/code-quality-analyzer/internal/adapter/parser"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
	"github.com/Luj8n/code-quality-analyzer/internal/infrastructure"
	"github.com/Luj8n/code-quality-analyzer/internal/logging"
	"github.com/Luj8n/code-quality-analyzer/internal/usecase"
)

const (
	exitError     = 1
	exitThreshold = 2
)

// errThresholdExceeded is returned by analyze when --fail-over is set and a
// function scores above it.
var errThresholdExceeded = errors.New("complexity threshold exceeded")

// App wires configuration, shared dependencies and command handlers for the CLI.
type App struct {
	config *viper.Viper
	deps   *Dependencies
	stdout io.Writer
	stderr io.Writer
}

// Dependencies groups the shared services used by the CLI commands.
type Dependencies struct {
	Scanner     *infrastructure.FSScanner
	Storage     *infrastructure.FileStorage
	History     *historyadapter.SQLiteStore
	CodeParsers []ports.CodeParser
}

func NewApp(stdout, stderr io.Writer) *App {
	deps := &Dependencies{
		Scanner: infrastructure.NewFSScanner(),
		Storage: infrastructure.NewFileStorage(),
		History: historyadapter.NewSQLiteStore(),
	}

	return &App{
		config: newConfig(),
		deps:   deps,
		stdout: stdout,
		stderr: stderr,
	}
}

// main is the entry point for the cqa CLI. All process exit codes are
// decided here.
func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(exitError)
	}

	rootContext, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := NewApp(os.Stdout, os.Stderr)

	command := os.Args[1]
	commandArgs := os.Args[2:]

	var err error

	switch command {
	case "analyze":
		err = application.runAnalyze(rootContext, commandArgs)
	case "report":
		err = application.runReport(rootContext, commandArgs)
	case "history":
		err = application.runHistory(rootContext, commandArgs)
	case "metrics":
		err = application.runMetrics(rootContext, commandArgs)
	case "-h", "--help", "help":
		printUsage(os.Stdout)
		return
	default:
		log.Printf("unknown command %q\n", command)
		printUsage(os.Stderr)
		os.Exit(exitError)
	}

	switch {
	case err == nil:
		return
	case errors.Is(err, pflag.ErrHelp):
		return
	case errors.Is(err, errThresholdExceeded):
		log.Printf("%v", err)
		stop()
		os.Exit(exitThreshold)
	default:
		log.Printf("error: %v", err)
		stop()
		os.Exit(exitError)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `cqa - function complexity and naming analyzer

Usage:
  cqa analyze [options] [path]
  cqa report  [options] [path]
  cqa history [options] [path]
  cqa metrics

Commands:
  analyze   Analyze a source tree and persist a report under .cqa/report.json
  report    Render the last report (text, json, yaml or table)
  history   List previous runs recorded in .cqa/history.db
  metrics   List supported metrics

Run "cqa <command> -h" for command-specific flags.
`)
}

// runAnalyze handles the "analyze" subcommand.
//
// Configuration precedence (highest first):
//  1. Command-line flags
//  2. Environment variables CQA_*
//  3. The project config file .cqa.{yaml,toml,json} in the root
//  4. Built-in defaults
func (a *App) runAnalyze(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetOutput(a.stderr)

	flagSet.String("path", ".", "Path to project root (can also be given as positional argument)")
	flagSet.Int("workers", 0, "Number of worker goroutines (0 = use NumCPU)")
	flagSet.String("ext", defaultExtensions, "Comma-separated list of file extensions to include")
	flagSet.String("format", usecase.DefaultFormat, "Output format (text|json|yaml|table)")
	flagSet.Int("top", usecase.DefaultTopN, "Number of functions to rank by complexity")
	flagSet.Int("fail-over", 0, "Exit with status 2 when a function scores above this (0 = off)")
	flagSet.Bool("history", true, "Record this run in .cqa/history.db")
	flagSet.Bool("color", true, "Colour text output (NO_COLOR disables it)")
	flagSet.String("log-level", logging.DefaultLevel, "Log level (debug|info|warn|error)")

	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage:
  cqa analyze [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	logger, err := a.newLogger()
	if err != nil {
		return err
	}

	analyzeUseCase := usecase.NewAnalyzeProjectUseCase(
		a.deps.Scanner,
		a.deps.Scanner,
		a.codeParsers(),
		a.deps.Storage,
		a.deps.History,
		logger,
		a.config.GetInt("workers"),
	)

	projectReport, err := analyzeUseCase.Execute(ctx, usecase.AnalyzeProjectRequest{
		RootPath:    rootPath,
		IncludeExt:  parseExtensions(a.config.GetString("ext")),
		TopN:        a.config.GetInt("top"),
		SkipHistory: !a.config.GetBool("history"),
	})
	if err != nil {
		return err
	}

	reportUseCase := usecase.NewGenerateReportUseCase(a.deps.Storage, a.renderers())
	renderedOutput, err := reportUseCase.Render(projectReport, a.config.GetString("format"))
	if err != nil {
		return err
	}
	fmt.Fprint(a.stdout, renderedOutput)

	if limit := a.config.GetInt("fail-over"); limit > 0 && projectReport.Project.MaxComplexity > limit {
		return fmt.Errorf("%w: max complexity %d > %d", errThresholdExceeded, projectReport.Project.MaxComplexity, limit)
	}
	return nil
}

// runReport handles the "report" subcommand.
//
// It loads the last saved report from .cqa/report.json under the specified
// root directory and renders it in the requested format.
func (a *App) runReport(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetOutput(a.stderr)

	flagSet.String("path", ".", "Path to project root (can also be given as positional argument)")
	flagSet.String("format", usecase.DefaultFormat, "Output format (text|json|yaml|table)")
	flagSet.Bool("color", true, "Colour text output (NO_COLOR disables it)")

	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage:
  cqa report [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	reportUseCase := usecase.NewGenerateReportUseCase(a.deps.Storage, a.renderers())

	renderedOutput, err := reportUseCase.Execute(ctx, usecase.GenerateReportRequest{
		RootPath: rootPath,
		Format:   a.config.GetString("format"),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, renderedOutput)
	return nil
}

// runHistory handles the "history" subcommand.
func (a *App) runHistory(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("history", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetOutput(a.stderr)

	flagSet.String("path", ".", "Path to project root (can also be given as positional argument)")
	flagSet.Int("limit", historyadapter.DefaultLimit, "Maximum number of runs to list")
	flagSet.String("format", usecase.DefaultFormat, "Output format (text|json|yaml|table)")

	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage:
  cqa history [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	runs, err := usecase.NewListHistoryUseCase(a.deps.History).Execute(ctx, usecase.ListHistoryRequest{
		RootPath: rootPath,
		Limit:    a.config.GetInt("limit"),
	})
	if err != nil {
		return err
	}

	return outputadapter.RenderHistory(a.stdout, runs, a.config.GetString("format"))
}

// runMetrics handles the "metrics" subcommand.
func (a *App) runMetrics(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("metrics", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetOutput(a.stderr)

	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, `Usage:
  cqa metrics

Lists the supported metric groups and identifiers.
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	supportedMetrics := usecase.NewListMetricsUseCase().Execute(ctx)

	fmt.Fprintln(a.stdout, "Supported metrics:")
	for _, metric := range supportedMetrics {
		fmt.Fprintf(a.stdout, "- [%s] %s (%s)\n    %s\n",
			metric.Group, metric.Name, metric.ID, metric.Description)
	}

	return nil
}

// parseFlags parses args, binds the flag set into the shared Viper instance
// and loads the project config file of the resolved root. A positional path
// wins over --path.
func (a *App) parseFlags(flagSet *pflag.FlagSet, args []string) (string, error) {
	if err := flagSet.Parse(args); err != nil {
		return "", err
	}

	if err := a.config.BindPFlags(flagSet); err != nil {
		return "", fmt.Errorf("bind flags to viper: %w", err)
	}

	rootPath := a.config.GetString("path")
	if remainingArgs := flagSet.Args(); len(remainingArgs) > 0 {
		rootPath = remainingArgs[0]
	}

	if _, err := loadProjectConfig(a.config, rootPath); err != nil {
		return "", err
	}
	return rootPath, nil
}

func (a *App) newLogger() (*charmlog.Logger, error) {
	logger, err := logging.New(a.stderr, a.config.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	if used := a.config.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config file", "path", used)
	}
	return logger, nil
}

func (a *App) codeParsers() []ports.CodeParser {
	if len(a.deps.CodeParsers) > 0 {
		return a.deps.CodeParsers
	}
	return []ports.CodeParser{
		parser.NewCFamilyParser(parseExtensions(a.config.GetString("ext"))...),
	}
}

func (a *App) renderers() *outputadapter.RendererRegistry {
	useColor := a.config.GetBool("color") && os.Getenv("NO_COLOR") == ""
	return outputadapter.NewDefaultRegistry(useColor)
}

// parseExtensions normalizes a comma-separated list of file extensions into a
// slice of dot-prefixed extensions.
//
// Examples:
//
//	parseExtensions("java,c")        -> []string{".java", ".c"}
//	parseExtensions(".java,.c,.h")   -> []string{".java", ".c", ".h"}
func parseExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	var extensions []string

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		extensions = append(extensions, strings.ToLower(trimmed))
	}

	return extensions
}
