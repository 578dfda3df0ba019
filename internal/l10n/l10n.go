package l10n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/utils"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	locales   = map[string]*Localizer{}
	languages = []string{}
	matcher   language.Matcher
)

type Localizer struct {
	l      *i18n.Localizer
	lang   string
	logger zerolog.Logger
}

// InitL10n loads the embedded message files for langs. The first lang is the fallback.
func InitL10n(langs []string, logger zerolog.Logger) {
	utils.Assert(len(langs) != 0, "The langs slice can not be empty")

	mu.Lock()
	defer mu.Unlock()

	defaultTag := language.MustParse(langs[0])
	bundle = i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	locales = make(map[string]*Localizer, len(langs))
	languages = make([]string, 0, len(langs))
	tags := make([]language.Tag, 0, len(langs))

	logEvent := logger.Debug()
	for _, lang := range langs {
		filePath := fmt.Sprintf("locales/%s.json", lang)
		_, err := bundle.LoadMessageFileFS(localesFS, filePath)
		utils.Assert(err == nil, fmt.Sprintf("can not load the localization file %s: %v", filePath, err))

		languages = append(languages, lang)
		tags = append(tags, language.MustParse(lang))
		locales[lang] = &Localizer{l: i18n.NewLocalizer(bundle, lang), lang: lang, logger: logger}

		logEvent.Str(lang, filePath)
	}
	matcher = language.NewMatcher(tags)
	logEvent.Msg("Localiztion files loaded")
}

// GetLocalizer picks the best supported language for an Accept-Language header value
// (or a bare tag like "ar"). Falls back to the first configured language.
// Returns nil if InitL10n was never called.
func GetLocalizer(acceptLanguage string) *Localizer {
	mu.RLock()
	defer mu.RUnlock()

	if len(languages) == 0 {
		return nil
	}

	if l, ok := locales[acceptLanguage]; ok {
		return l
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return locales[languages[0]]
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index >= len(languages) {
		return locales[languages[0]]
	}
	return locales[languages[index]]
}

func (l *Localizer) Lang() string {
	return l.lang
}

func (l *Localizer) GetWithId(id string) string {
	return l.localizeMsg(id, nil, nil)
}

func (l *Localizer) GetWithData(id string, data map[string]any) string {
	utils.AssertDev(data != nil, "The data map can not be nil")
	utils.AssertDev(len(data) != 0, "The data map should not be empty")

	return l.localizeMsg(id, data, nil)
}

func (l *Localizer) localizeMsg(id string, data any, pluralCount any) string {
	cfg := &i18n.LocalizeConfig{
		DefaultMessage: defaultMessage(id),
		TemplateData:   data,
		PluralCount:    pluralCount,
	}

	str, err := l.l.Localize(cfg)
	if err != nil {
		errLog := l.logger.Error().Err(err).Str("id", id).Str("lang", l.lang)
		if d, ok := data.(map[string]any); ok {
			errLog.Fields(d)
		}
		if pluralCount != nil {
			errLog.Any("pluralCount", pluralCount)
		}
		errLog.Msg("Error getting localized message")

		str = id
	}

	return str
}

func defaultMessage(id string) *i18n.Message {
	return &i18n.Message{
		ID:    id,
		Other: id,
		Zero:  id,
		One:   id,
		Two:   id,
		Few:   id,
		Many:  id,
	}
}
