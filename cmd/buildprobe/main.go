// Package main implements the buildprobe diagnostic CLI.
package main

import (
	"fmt"
	"os"

	"buildprobe/internal/buildinfo"
	"buildprobe/internal/config"
	"buildprobe/internal/logging"
	"buildprobe/internal/report"
	"buildprobe/internal/selfcheck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buildprobe",
	Short: "buildprobe - build and toolchain diagnostic reporter",
	Long: `buildprobe prints the identity of the build that produced it:
compiler family and version, language edition, build mode, bit widths of
the primitive types, and the definitions injected by the build
configuration via -ldflags.

Run without arguments to print the full report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
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
	RunE: runReport,
}

// reportCmd renders the diagnostic report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the build diagnostic report",
	Long: `Renders the fixed diagnostic line sequence to stdout:
greeting, project identity, compiler, language edition, build mode,
primitive type widths, and the injected build definitions.

Always exits 0.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

// selfcheckCmd runs the arithmetic self-check battery
var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the arithmetic self-check battery",
	Long: `Executes the declarative check battery (addition, multiplication,
and string operations over literal inputs) and fails when any check
mismatches.`,
	Args: cobra.NoArgs,
	RunE: runSelfcheck,
}

// versionCmd prints the injected version string
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.String())
	},
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Verbose && !verbose {
		if logger, err = logging.New(true); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	info := buildinfo.Current()
	logger.Debug("rendering report",
		zap.String("compiler", info.CompilerFamily),
		zap.String("mode", string(info.Mode)))

	return report.New(info, cfg.Report).Render(cmd.OutOrStdout())
}

func runSelfcheck(cmd *cobra.Command, args []string) error {
	if failed := selfcheck.Run(cmd.OutOrStdout()); failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default "+config.DefaultFile+" if present)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(selfcheckCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
