package cmd

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/pocketsim/pocketdb/internal/config"
	"github.com/pocketsim/pocketdb/internal/loader"
	"github.com/spf13/cobra"
)

// localeCmd represents the locale command group
var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Manage the locales of the card database",
	Long:  `Commands for listing the locales available in the card database and choosing the default one.`,
}

// localeListCmd represents the locale ls command
var localeListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List locales available in the card database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return err
		}

		defaultLocale, err := config.GetDefaultLocale()
		if err != nil {
			return fmt.Errorf("error getting default locale: %w", err)
		}

		src := &loader.LocalSource{BaseDir: dataDir}
		locales, err := src.Locales()
		if err != nil {
			return fmt.Errorf("%w\nRun 'pocketdb init' to create it", err)
		}

		out := cmd.OutOrStdout()
		if len(locales) == 0 {
			fmt.Fprintln(out, "No locales found in the card database.")
			fmt.Fprintln(out, "You can add one by creating a directory in:", src.CardsDir())
			return nil
		}

		for _, locale := range locales {
			if locale == defaultLocale {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", locale, languageName(locale))
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", locale, languageName(locale))
			}
		}
		return nil
	},
}

// localeSetDefaultCmd represents the locale set-default command
var localeSetDefaultCmd = &cobra.Command{
	Use:   "set-default [locale]",
	Short: "Set the default locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale := args[0]

		if err := loader.CheckLocale(locale); err != nil {
			return err
		}

		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return err
		}

		// Only accept locales the database actually has
		src := &loader.LocalSource{BaseDir: dataDir}
		if _, err := src.Load(locale); err != nil {
			return fmt.Errorf("not a usable locale: %w", err)
		}

		if err := config.SetDefaultLocale(locale); err != nil {
			return fmt.Errorf("error setting default locale: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default locale set to: %s\n", locale)
		return nil
	},
}

// languageName returns the English name of a locale directory, or "unknown"
// when the name is not a language tag the display tables know.
func languageName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "unknown"
	}
	if name := display.Tags(language.English).Name(tag); name != "" {
		return name
	}
	return "unknown"
}

func init() {
	RootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeSetDefaultCmd)
}
