package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/pocketsim/pocketdb/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display the data of a specific card",
	Long: `Show prints the fields of one card. The card ID is the name of its
JSON file without the extension.

Examples:
  pocketdb show A1-001
  pocketdb show --locale ja A1-001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		localeFlag, _ := cmd.Flags().GetString("locale")
		locale, err := resolveLocale(localeFlag)
		if err != nil {
			return fmt.Errorf("error getting default locale: %w", err)
		}

		l, _, err := newLoader(cmd)
		if err != nil {
			return err
		}

		cards, err := l.Load(locale)
		if err != nil {
			return err
		}

		record, ok := cards[cardID]
		if !ok {
			return fmt.Errorf("card not found: %s (locale %s)", cardID, locale)
		}

		return displayCard(cmd.OutOrStdout(), cardID, locale, record, terminalWidth())
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("locale", "l", "", "Locale to read the card from")
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayCard prints the card header followed by its fields. Object records
// are printed one top-level field per line; anything else as indented JSON.
func displayCard(w io.Writer, cardID, locale string, record card.Record, width int) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("Card:   ")+colorize.HiWhiteString("%s", cardID))
	fmt.Fprintln(w, colorize.CyanString("Locale: ")+colorize.HiWhiteString("%s", locale))
	fmt.Fprintln(w)

	fields, ok := record.(map[string]any)
	if !ok {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding card: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	keys := make([]string, 0, len(fields))
	keyWidth := 0
	for k := range fields {
		keys = append(keys, k)
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
	}
	sort.Strings(keys)

	valueWidth := width - keyWidth - 4
	for _, k := range keys {
		value, err := formatValue(fields[k])
		if err != nil {
			return fmt.Errorf("error encoding field %s: %w", k, err)
		}

		lines := wrapText(value, valueWidth)
		label := k + ":" + strings.Repeat(" ", keyWidth-len(k))
		fmt.Fprintf(w, "%s %s\n", colorize.CyanString(label), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s %s\n", strings.Repeat(" ", keyWidth+1), line)
		}
	}
	fmt.Fprintln(w)
	return nil
}

// formatValue renders strings bare and everything else as compact JSON
func formatValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// wrapText wraps text to width columns, counting runes so that
// accented and CJK card text is not broken early.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40 // too narrow to be useful
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := utf8.RuneCountInString(word)
		switch {
		case lineWidth == 0:
			// A word longer than width still gets its own line
		case lineWidth+1+wordWidth <= width:
			line.WriteByte(' ')
			lineWidth++
		default:
			result = append(result, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	return append(result, line.String())
}
