package cmd

import (
	"github.com/pocketsim/pocketdb/internal/config"
	"github.com/pocketsim/pocketdb/internal/loader"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pocketdb",
	Short: "Tool for loading Pokemon TCG Pocket card data",
	Long: `pocketdb reads the per-card JSON files of a local card database
(<data-dir>/cards/<locale>/*.json) for a single locale and shows them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().String("data-dir", "", "Card database root (defaults to data_dir from the config file)")
	RootCmd.PersistentFlags().Bool("remote", false, "Load cards from the remote source instead of the local database")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolveDataDir returns the --data-dir flag or the configured data directory
func resolveDataDir(cmd *cobra.Command) (string, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir != "" {
		return dataDir, nil
	}
	return config.GetDataDir()
}

// resolveLocale returns the given locale or the configured default
func resolveLocale(locale string) (string, error) {
	if locale != "" {
		return locale, nil
	}
	return config.GetDefaultLocale()
}

// newLoader builds a loader from flags, falling back to the config file
func newLoader(cmd *cobra.Command) (*loader.Loader, string, error) {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, "", err
	}

	remote, _ := cmd.Flags().GetBool("remote")
	mode := loader.ModeRemote
	if !remote {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, "", err
		}
		mode, err = loader.ParseMode(cfg.Mode)
		if err != nil {
			return nil, "", err
		}
	}

	l, err := loader.New(mode, dataDir)
	if err != nil {
		return nil, "", err
	}
	return l, dataDir, nil
}
