package cmd

import (
	"encoding/json"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load [locale]",
	Short: "Load every card of a locale",
	Long: `Load reads every JSON file directly inside <data-dir>/cards/<locale>/
and reports the cards found. The locale defaults to default_locale from
the config file.

Examples:
  pocketdb load
  pocketdb load ja
  pocketdb load --json en > cards.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var locale string
		if len(args) == 1 {
			locale = args[0]
		}
		locale, err := resolveLocale(locale)
		if err != nil {
			return fmt.Errorf("error getting default locale: %w", err)
		}

		l, dataDir, err := newLoader(cmd)
		if err != nil {
			return err
		}

		cards, err := l.Load(locale)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(cards, "", "  ")
			if err != nil {
				return fmt.Errorf("error encoding cards: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Source:"), dataDir)
		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Locale:"), locale)
		fmt.Fprintf(out, "%s %d\n", colorize.CyanString("Cards: "), len(cards))

		listIDs, _ := cmd.Flags().GetBool("ids")
		if listIDs {
			for _, id := range cards.IDs() {
				fmt.Fprintf(out, "  %s\n", id)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Bool("json", false, "Print the loaded cards as JSON")
	loadCmd.Flags().Bool("ids", false, "List the loaded card IDs")
}
