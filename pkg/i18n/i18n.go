// Package i18n resolves the user-facing strings of the calculator form from
// an embedded YAML catalog.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-calcform/pkg/calculator"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message identifiers present in every catalog.
const (
	MsgTitle        = "title"
	MsgFirstNumber  = "first_number"
	MsgSecondNumber = "second_number"
	MsgCalculate    = "calculate"
	MsgResult       = "result"
	MsgAgain        = "again"
	MsgInvalidInput = "invalid_input"
	MsgUnexpected   = "unexpected"
)

// Catalog localizes message identifiers for one language.
type Catalog struct {
	localizer *goi18n.Localizer
}

// New loads the embedded catalogs and returns one localizing to lang,
// falling back to English for unknown languages or missing messages.
func New(lang string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}
	for _, name := range files {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}

	return &Catalog{localizer: goi18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// T returns the localized text for id, or id itself when it is unknown.
func (c *Catalog) T(id string) string {
	if c == nil || c.localizer == nil {
		return id
	}
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Messages returns the calculator's error messages in the catalog language.
func (c *Catalog) Messages() calculator.Messages {
	return calculator.Messages{
		InvalidInput: c.T(MsgInvalidInput),
		Unexpected:   c.T(MsgUnexpected),
	}
}

// Labels returns the page labels keyed by message identifier.
func (c *Catalog) Labels() map[string]string {
	ids := []string{MsgTitle, MsgFirstNumber, MsgSecondNumber, MsgCalculate, MsgResult}
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		out[id] = c.T(id)
	}
	return out
}
