package cmd

import (
	"fmt"
	"os"

	"github.com/pocketsim/pocketdb/internal/config"
	"github.com/pocketsim/pocketdb/internal/loader"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card database and config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Initialize config
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return err
		}

		defaultLocale, err := config.GetDefaultLocale()
		if err != nil {
			return fmt.Errorf("error getting default locale: %w", err)
		}

		if err := loader.CheckLocale(defaultLocale); err != nil {
			return err
		}

		src := &loader.LocalSource{BaseDir: dataDir}
		localeDir := src.LocaleDir(defaultLocale)
		if err := os.MkdirAll(localeDir, 0755); err != nil {
			return fmt.Errorf("error creating card database: %w", err)
		}

		fmt.Fprintln(out, "Card database initialized at:", dataDir)
		fmt.Fprintln(out, "You can now add card files to:", localeDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
