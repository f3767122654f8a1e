package domain

import "sort"

// Default languages preselected in the translation form
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "de"
)

// Language is a selectable translation language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var languageNames = map[string]string{
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"nl": "Dutch",
	"pt": "Portuguese",
	"ru": "Russian",
	"pl": "Polish",
	"sv": "Swedish",
	"uk": "Ukrainian",
	"zh": "Chinese",
	"ja": "Japanese",
}

// LanguageName returns the display name for a language code
func LanguageName(code string) (string, bool) {
	name, ok := languageNames[code]
	return name, ok
}

// IsSupportedLanguage reports whether code is in the language catalogue
func IsSupportedLanguage(code string) bool {
	_, ok := languageNames[code]
	return ok
}

// Languages returns the catalogue sorted by display name
func Languages() []Language {
	langs := make([]Language, 0, len(languageNames))
	for code, name := range languageNames {
		langs = append(langs, Language{Code: code, Name: name})
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].Name < langs[j].Name
	})
	return langs
}
