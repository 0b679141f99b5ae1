// Package translator loads localized API messages from TOML message files.
package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Translator is the shared message bundle. It is populated once at startup
// by Init and only read afterwards.
var Translator *i18n.Bundle

const (
	LanguageEn = "en"
	LanguagePt = "pt"
)

// Config holds the translator initialization settings.
type Config struct {
	// TranslationFolder is the directory containing *.toml message files.
	TranslationFolder string
}

// Init builds the message bundle from every TOML file in the configured
// folder. Missing or broken files are logged and skipped so the server can
// still boot with English fallbacks.
func Init(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder",
			zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		path := filepath.Join(cfg.TranslationFolder, e.Name())
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file",
				zap.String("file", e.Name()), zap.Error(err))
		}
	}
}
