// Package loader reads card records for a single locale from a card database.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pocketsim/pocketdb/internal/card"
)

// DefaultLocale is used when Load is called with an empty locale.
const DefaultLocale = "en"

var (
	// ErrSourceNotFound is matched by *SourceNotFoundError.
	ErrSourceNotFound = errors.New("card source not found")

	// ErrRemoteUnimplemented is returned by the remote source.
	ErrRemoteUnimplemented = errors.New("remote card source is not implemented")

	// ErrInvalidLocale is returned for locales that cannot name a single directory.
	ErrInvalidLocale = errors.New("invalid locale")
)

// SourceNotFoundError reports a locale directory that does not exist.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("local card data not found at %s", e.Path)
}

// Is lets errors.Is(err, ErrSourceNotFound) match.
func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// Mode selects where card data comes from
type Mode int

const (
	ModeLocal Mode = iota
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeRemote:
		return "remote"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "local" or "remote" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "local":
		return ModeLocal, nil
	case "remote":
		return ModeRemote, nil
	default:
		return ModeLocal, fmt.Errorf("unknown mode: %q (expected local or remote)", s)
	}
}

// Source produces the card collection for one locale.
type Source interface {
	Load(locale string) (card.Collection, error)
}

// Loader dispatches Load calls to the source chosen at construction.
type Loader struct {
	mode   Mode
	source Source
}

// New returns a Loader for the given mode. baseDir is the card database
// root (the directory containing cards/) and is only used in local mode.
func New(mode Mode, baseDir string) (*Loader, error) {
	switch mode {
	case ModeLocal:
		return &Loader{mode: mode, source: &LocalSource{BaseDir: baseDir}}, nil
	case ModeRemote:
		return &Loader{mode: mode, source: &RemoteSource{}}, nil
	default:
		return nil, fmt.Errorf("unsupported mode: %v", mode)
	}
}

// Mode reports the mode the loader was built with
func (l *Loader) Mode() Mode {
	return l.mode
}

// Load returns a fresh collection for locale. An empty locale means DefaultLocale.
func (l *Loader) Load(locale string) (card.Collection, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if err := CheckLocale(locale); err != nil {
		return nil, err
	}
	return l.source.Load(locale)
}

// CheckLocale rejects locales that would not resolve to a directory
// directly under cards/. Any other name is accepted as-is.
func CheckLocale(locale string) error {
	switch {
	case locale == "", locale == ".", locale == "..":
		return fmt.Errorf("%w %q", ErrInvalidLocale, locale)
	case strings.ContainsRune(locale, '/'), strings.ContainsRune(locale, os.PathSeparator):
		return fmt.Errorf("%w %q: contains a path separator", ErrInvalidLocale, locale)
	}
	return nil
}
