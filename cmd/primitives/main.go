package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/config"
	perrors "github.com/vango-dev/primitives/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┬┌┬┐┬┌┬┐┬┬  ┬┌─┐┌─┐
  ├─┘├┬┘│││││ │ │└┐┌┘├┤ └─┐
  ┴  ┴└─┴┴ ┴┴ ┴ ┴ └┘ └─┘└─┘
`

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "primitives",
		Short: "Headless UI primitives for Vango",
		Long: `primitives renders and previews the composition primitives:

  • asChild prop merging
  • Text direction providers
  • Escape key subscriptions
  • Two-phase portals`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to primitives.json (default ./primitives.json if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log host activity to stderr")

	rootCmd.AddCommand(
		renderCmd(flags),
		publishCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config named by --config, or primitives.json in the
// working directory, or defaults.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFile(f.configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(wd)
}

// logger returns a stderr logger, at debug level with --verbose.
func (f *globalFlags) logger() *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// printError writes err, using the coded format when it carries a code.
func printError(w io.Writer, err error) {
	var e *perrors.Error
	if errors.As(err, &e) {
		perrors.Fprint(w, err)
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}
