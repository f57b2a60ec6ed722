package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raysh454/xssrisk/internal/app"
	"github.com/raysh454/xssrisk/internal/logging"
)

// NewRootCmd builds the xssrisk command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "xssrisk",
		Short:        "DOM-XSS risk analysis service",
		Long:         "xssrisk scores DOM-XSS evidence reports collected in the browser and explains the verdict.",
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return readConfigFile(v)
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format: json|text")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Environment variable support (XSSRISK_SERVER_ADDR, etc.)
	v.SetEnvPrefix("XSSRISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("openai.api_key", "XSSRISK_OPENAI_API_KEY", "OPENAI_API_KEY")

	// Subcommands
	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newAnalyzeCmd(v))
	rootCmd.AddCommand(newDiffCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// loadRuntime reads the config and builds a logger writing to w.
func loadRuntime(v *viper.Viper, w io.Writer) (*app.Config, logging.Logger, error) {
	cfg, err := app.LoadConfig(v)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(cfg.Log, w)
	return cfg, logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of xssrisk",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xssrisk v%s\n", app.ServiceVersion)
		},
	}
}
