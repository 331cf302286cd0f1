// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasexport

// oasexport converts exported documentation sections into an OpenAPI document.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/woozymasta/oasexport"
)

// envFileVariable names an env file loaded before flag parsing.
const envFileVariable = "OASEXPORT_ENV_FILE"

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/oasexport"
	_buildTime string
)

// cliOptions describes oasexport CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Convert convertCommand `command:"convert" description:"Convert exported sections to an OpenAPI document"`
	Menu    menuCommand    `command:"menu" description:"Print navigation menu of exported sections"`
}

// sourceFlags groups export layout flags.
type sourceFlags struct {
	ManifestName    string `short:"m" long:"manifest" env:"OASEXPORT_MANIFEST" description:"Manifest file name relative to input directory" default:"manifest.json"`
	DescriptorName  string `long:"descriptor" env:"OASEXPORT_DESCRIPTOR" description:"Section descriptor file name" default:"section.json"`
	DescriptionName string `long:"description" env:"OASEXPORT_DESCRIPTION" description:"Section long description file name" default:"index.md"`
}

// outputFlags groups serialization flags.
type outputFlags struct {
	Format string `short:"f" long:"format" env:"OASEXPORT_FORMAT" description:"Output format" choice:"yaml" choice:"json" default:"yaml"`
}

// logFlags groups logger flags.
type logFlags struct {
	Level  string `long:"log-level" env:"OASEXPORT_LOG_LEVEL" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`
	Format string `long:"log-format" env:"OASEXPORT_LOG_FORMAT" description:"Log output format" choice:"console" choice:"json" choice:"pretty" default:"console"`
}

// convertCommand converts an export directory into openapi_spec.<ext>.
type convertCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Export directory with manifest" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output directory (optional; current directory when omitted)"`
	} `positional-args:"yes"`

	Title      string `short:"T" long:"title" env:"OASEXPORT_TITLE" description:"Document title (defaults to manifest name)"`
	APIVersion string `short:"V" long:"api-version" env:"OASEXPORT_API_VERSION" description:"Document info.version (defaults to manifest version or 1.0.0)"`

	SourceFlags sourceFlags `group:"Export Layout"`
	OutputFlags outputFlags `group:"Output"`
	LogFlags    logFlags    `group:"Logging"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(command.Args.Input, command.Args.Output, command.conversionOptions())
}

// conversionOptions maps flags to converter options.
func (command *convertCommand) conversionOptions() conversionOptions {
	return conversionOptions{
		Title:     command.Title,
		Version:   command.APIVersion,
		Format:    command.OutputFlags.Format,
		Source:    command.SourceFlags,
		LogLevel:  command.LogFlags.Level,
		LogFormat: command.LogFlags.Format,
	}
}

// menuCommand prints navigation tree of an export directory.
type menuCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Export directory with manifest" required:"yes"`
	} `positional-args:"yes"`

	SourceFlags sourceFlags `group:"Export Layout"`
	OutputFlags outputFlags `group:"Output"`
	LogFlags    logFlags    `group:"Logging"`
}

// Execute runs menu subcommand.
func (command *menuCommand) Execute(_ []string) error {
	return command.runner.runMenu(command.Args.Input, conversionOptions{
		Format:    command.OutputFlags.Format,
		Source:    command.SourceFlags,
		LogLevel:  command.LogFlags.Level,
		LogFormat: command.LogFlags.Format,
	})
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// conversionOptions is the flag-level configuration shared by convert and menu.
type conversionOptions struct {
	Title     string
	Version   string
	Format    string
	Source    sourceFlags
	LogLevel  string
	LogFormat string
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "oasexport"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	if err := loadEnvFile(); err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runConvert converts input export and prints the written file path.
func (runner *cliRunner) runConvert(inputDir, outputDir string, options conversionOptions) error {
	libOptions, err := newLibraryOptions(options)
	if err != nil {
		return err
	}

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input directory %q: %w", inputDir, err)
	}

	if strings.TrimSpace(outputDir) == "" {
		outputDir = "."
	}

	_, _ = fmt.Fprintf(runner.stdout, "converting %s\n", absInput)

	path, err := oasexport.Convert(absInput, outputDir, libOptions)
	if err != nil {
		return fmt.Errorf("convert %q: %w", absInput, err)
	}

	_, _ = fmt.Fprintln(runner.stdout, path)
	return nil
}

// runMenu prints navigation menu of input export to stdout.
func (runner *cliRunner) runMenu(inputDir string, options conversionOptions) error {
	libOptions, err := newLibraryOptions(options)
	if err != nil {
		return err
	}

	doc, err := oasexport.Build(inputDir, libOptions)
	if err != nil {
		return fmt.Errorf("build menu %q: %w", inputDir, err)
	}

	data, err := oasexport.Marshal(doc.Navigation, libOptions.Format)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}

	if _, err := runner.stdout.Write(data); err != nil {
		return fmt.Errorf("write menu to stdout: %w", err)
	}

	return nil
}

// newLibraryOptions validates flag values and builds converter options.
func newLibraryOptions(options conversionOptions) (oasexport.Options, error) {
	format, err := oasexport.ParseFormat(options.Format)
	if err != nil {
		return oasexport.Options{}, err
	}

	logger, err := newLogger(options.LogLevel, options.LogFormat)
	if err != nil {
		return oasexport.Options{}, err
	}

	return oasexport.Options{
		Title:   options.Title,
		Version: options.Version,
		Format:  format,
		Source: oasexport.SourceOptions{
			ManifestName:    options.Source.ManifestName,
			DescriptorName:  options.Source.DescriptorName,
			DescriptionName: options.Source.DescriptionName,
		},
		Logger: logger,
	}, nil
}

// newLogger builds a go-logger logger for converter diagnostics.
func newLogger(level, format string) (oasexport.Logger, error) {
	options := []glog.Option{}
	if level := normalizeLogLevel(level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return glog.NewLogger(options...).GetLogger("oasexport"), nil
}

// normalizeLogLevel maps flag values to go-logger levels.
func normalizeLogLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// loadEnvFile loads env defaults from OASEXPORT_ENV_FILE or ./.env when present.
func loadEnvFile() error {
	if path := strings.TrimSpace(os.Getenv(envFileVariable)); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %q: %w", path, err)
		}

		return nil
	}

	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load env file %q: %w", ".env", err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Convert.runner = runner
	options.Menu.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert an exported documentation directory into openapi_spec.yaml or openapi_spec.json.
The output directory is created when missing; the absolute output path is printed on success.
Flags may also be set through OASEXPORT_* environment variables or a .env file.

Examples:
> $ %s convert ./export ./out
> $ %s convert --format json --title "Public API" ./export ./out
`, programName, programName)),
		"menu": strings.TrimSpace(fmt.Sprintf(`
Print the navigation menu that convert embeds under the x-navigation extension.

Examples:
> $ %s menu ./export
> $ %s menu --format json ./export > menu.json
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}
