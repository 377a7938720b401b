package loader

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeCards creates <base>/cards/<locale>/ and writes the given files into it.
func writeCards(t *testing.T, base, locale string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(base, "cards", locale)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return dir
}

func newLocal(t *testing.T, base string) *Loader {
	t.Helper()
	l, err := New(ModeLocal, base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestLoadKeysByFileStem(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{
		"001.json": `{"name": "Bulbasaur"}`,
		"002.json": `{"name": "Charmander"}`,
	})

	got, err := newLocal(t, base).Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := map[string]any{
		"001": map[string]any{"name": "Bulbasaur"},
		"002": map[string]any{"name": "Charmander"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(got))
	}
	for id, w := range want {
		if !reflect.DeepEqual(got[id], w) {
			t.Fatalf("card %s: expected %v, got %v", id, w, got[id])
		}
	}
}

func TestLoadPassesThroughArbitraryJSON(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{
		"list.json":   `[1, "two", null]`,
		"number.json": `42`,
		"nested.json": `{"attacks": [{"name": "Vine Whip", "damage": 40}], "hp": 70}`,
	})

	got, err := newLocal(t, base).Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got["list"], []any{float64(1), "two", nil}) {
		t.Fatalf("unexpected list record %#v", got["list"])
	}
	if got["number"] != float64(42) {
		t.Fatalf("unexpected number record %#v", got["number"])
	}
	nested, ok := got["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", got["nested"])
	}
	if nested["hp"] != float64(70) {
		t.Fatalf("unexpected hp %v", nested["hp"])
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", nil)

	got, err := newLocal(t, base).Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", got)
	}
}

func TestLoadDefaultsToEnglish(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{"001.json": `{"name": "Bulbasaur"}`})

	l := newLocal(t, base)
	def, err := l.Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	en, err := l.Load("en")
	if err != nil {
		t.Fatalf("Load(en): %v", err)
	}
	if !reflect.DeepEqual(def, en) {
		t.Fatalf("default load %v differs from en load %v", def, en)
	}
}

func TestLoadMissingLocale(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", nil)

	_, err := newLocal(t, base).Load("fr")
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}

	var nf *SourceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *SourceNotFoundError, got %T", err)
	}
	if !strings.HasSuffix(nf.Path, filepath.Join("cards", "fr")) {
		t.Fatalf("unexpected path %q", nf.Path)
	}
	if !strings.Contains(err.Error(), nf.Path) {
		t.Fatalf("error %q does not name the path", err)
	}
}

func TestLoadSkipsNonJSONAndSubdirectories(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{
		"001.json":           `{"name": "Bulbasaur"}`,
		"README.md":          `not a card`,
		"002.json.bak":       `{"name": "Backup"}`,
		"003.JSON":           `{"name": "Upper"}`,
		"promo/P-001.json":   `{"name": "Pikachu"}`,
		"folder.json/x.json": `{"name": "Hidden"}`,
	})

	got, err := newLocal(t, base).Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only 001, got %v", got)
	}
	if _, ok := got["001"]; !ok {
		t.Fatalf("expected 001 in %v", got)
	}
}

func TestLoadInvalidJSONFails(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{
		"001.json": `{"name": "Bulbasaur"}`,
		"002.json": `{"name": `,
	})

	got, err := newLocal(t, base).Load("en")
	if err == nil {
		t.Fatalf("expected parse error, got %v", got)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
	if !strings.Contains(err.Error(), "002.json") {
		t.Fatalf("error %q does not name the file", err)
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *json.SyntaxError in chain, got %T", errors.Unwrap(err))
	}
}

func TestLoadRejectsPathLikeLocale(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{"001.json": `{}`})

	for _, locale := range []string{".", "..", "../en", "en/..", "a/b", "a" + string(os.PathSeparator) + "b"} {
		_, err := newLocal(t, base).Load(locale)
		if !errors.Is(err, ErrInvalidLocale) {
			t.Fatalf("locale %q: expected ErrInvalidLocale, got %v", locale, err)
		}
	}
}

func TestLoadUnknownLocaleIsNotFound(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", nil)

	for _, locale := range []string{"xx", "zz", "global"} {
		_, err := newLocal(t, base).Load(locale)
		if !errors.Is(err, ErrSourceNotFound) {
			t.Fatalf("locale %q: expected ErrSourceNotFound, got %v", locale, err)
		}
		var nf *SourceNotFoundError
		if !errors.As(err, &nf) || !strings.HasSuffix(nf.Path, filepath.Join("cards", locale)) {
			t.Fatalf("locale %q: unexpected error %v", locale, err)
		}
	}
}

func TestLoadAnyExistingDirectoryName(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "global", map[string]string{"001.json": `{"name": "Bulbasaur"}`})

	got, err := newLocal(t, base).Load("global")
	if err != nil {
		t.Fatalf("Load(global): %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one card, got %v", got)
	}
}

func TestLoadExtensionOnlyFileKeepsName(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "en", map[string]string{
		".json":     `{"name": "Dot"}`,
		".old.json": `{"name": "Old"}`,
	})

	got, err := newLocal(t, base).Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := got[".json"]; !ok {
		t.Fatalf("expected key .json, got %v", got.IDs())
	}
	if _, ok := got[".old"]; !ok {
		t.Fatalf("expected key .old, got %v", got.IDs())
	}
	if _, ok := got[""]; ok {
		t.Fatalf("unexpected empty key in %v", got.IDs())
	}
}

func TestRemoteModeIsUnimplemented(t *testing.T) {
	l, err := New(ModeRemote, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Mode() != ModeRemote {
		t.Fatalf("expected remote mode, got %v", l.Mode())
	}
	if _, err := l.Load("en"); !errors.Is(err, ErrRemoteUnimplemented) {
		t.Fatalf("expected ErrRemoteUnimplemented, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeLocal, false},
		{"local", ModeLocal, false},
		{"remote", ModeRemote, false},
		{"ftp", ModeLocal, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLocales(t *testing.T) {
	base := t.TempDir()
	writeCards(t, base, "ja", nil)
	writeCards(t, base, "en", nil)
	if err := os.WriteFile(filepath.Join(base, "cards", "index.json"), []byte(`{}`), 0644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	src := &LocalSource{BaseDir: base}
	got, err := src.Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"en", "ja"}) {
		t.Fatalf("unexpected locales %v", got)
	}

	empty := &LocalSource{BaseDir: t.TempDir()}
	if _, err := empty.Locales(); !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}
