package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pocketsim/pocketdb/internal/card"
)

const cardFilePattern = "*.json"

// LocalSource reads cards from <BaseDir>/cards/<locale>/*.json.
type LocalSource struct {
	BaseDir string
}

// CardsDir returns the directory holding one subdirectory per locale
func (s *LocalSource) CardsDir() string {
	return filepath.Join(s.BaseDir, "cards")
}

// LocaleDir returns the directory for a single locale
func (s *LocalSource) LocaleDir(locale string) string {
	return filepath.Join(s.CardsDir(), locale)
}

// Load reads every *.json file directly inside the locale directory.
// Subdirectories are not descended into. The first unreadable or invalid
// file aborts the load.
func (s *LocalSource) Load(locale string) (card.Collection, error) {
	target := s.LocaleDir(locale)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return nil, &SourceNotFoundError{Path: target}
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", target, err)
	}

	cards := make(card.Collection)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(cardFilePattern, entry.Name()); !ok {
			continue
		}

		cardPath := filepath.Join(target, entry.Name())
		info, err := os.Stat(cardPath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", cardPath, err)
		}
		// Symlinks to directories show up as non-dirs in ReadDir
		if info.IsDir() {
			continue
		}

		record, err := readCard(cardPath)
		if err != nil {
			return nil, err
		}
		cards[cardID(entry.Name())] = record
	}

	return cards, nil
}

// Locales lists the locale directories present under CardsDir.
func (s *LocalSource) Locales() ([]string, error) {
	cardsDir := s.CardsDir()
	if _, err := os.Stat(cardsDir); os.IsNotExist(err) {
		return nil, &SourceNotFoundError{Path: cardsDir}
	}

	entries, err := os.ReadDir(cardsDir)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", cardsDir, err)
	}

	var locales []string
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(cardsDir, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		locales = append(locales, entry.Name())
	}
	sort.Strings(locales)
	return locales, nil
}

// cardID returns the file name without its extension. A name that is
// only the extension (".json") is kept whole, as a dotfile has no extension.
func cardID(name string) string {
	if id := strings.TrimSuffix(name, filepath.Ext(name)); id != "" {
		return id
	}
	return name
}

func readCard(path string) (card.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var record card.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return record, nil
}
