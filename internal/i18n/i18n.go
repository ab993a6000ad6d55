// Package i18n holds the string tables of the scoreboard and picks the
// initial language from the browser locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"k8s.io/klog/v2"
)

// Lang is a supported language tag.
type Lang string

const (
	Zh Lang = "zh" // Simplified Chinese.
	En Lang = "en"
	Tw Lang = "tw" // Traditional Chinese.
)

// Default is used when nothing better is known.
const Default = Zh

// Languages lists the supported languages in picker order.
var Languages = []Lang{Zh, En, Tw}

var tables = map[Lang]map[string]string{
	Zh: zhTable,
	En: enTable,
	Tw: twTable,
}

// Name returns the language's own name, as shown in the picker.
func (l Lang) Name() string {
	return tables[l.orDefault()]["languageName"]
}

func (l Lang) orDefault() Lang {
	if _, ok := tables[l]; ok {
		return l
	}
	return Default
}

// Parse validates a persisted language tag.
func Parse(tag string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(tag)))
	_, ok := tables[l]
	return l, ok
}

// T looks up key in l's table. Each "{name}" in the text is replaced by
// params[name]. An unknown key returns the key itself.
func (l Lang) T(key string, params ...map[string]string) string {
	text, ok := tables[l.orDefault()][key]
	if !ok {
		klog.V(1).Infof("i18n: missing key %q for %s", key, l)
		return key
	}
	for _, p := range params {
		for k, v := range p {
			text = strings.ReplaceAll(text, "{"+k+"}", v)
		}
	}
	return text
}

// Translator returns l.T bound as a plain lookup function.
func (l Lang) Translator() func(key string) string {
	return func(key string) string { return l.T(key) }
}

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese, // First entry is the fallback.
	language.English,
	language.TraditionalChinese,
})

// Detect maps a browser locale hint (for instance "en-US", "zh-TW" or
// "zh-Hant-HK") to a supported language. Chinese variants written in
// traditional script map to Tw; other languages fall back to En.
func Detect(locale string) Lang {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default
	}
	tag, err := language.Parse(locale)
	if err != nil {
		klog.Warningf("i18n: cannot parse locale %q: %v", locale, err)
		return En
	}
	if base, _ := tag.Base(); base.String() != "zh" && base.String() != "en" {
		return En
	}
	_, idx, _ := matcher.Match(tag)
	switch idx {
	case 1:
		return En
	case 2:
		return Tw
	}
	return Zh
}
