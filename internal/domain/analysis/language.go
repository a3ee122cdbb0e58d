package analysis

import "strings"

// Language is the detected language of an inbound message.
type Language string

const (
	LangFrench  Language = "fr"
	LangArabic  Language = "ar"
	LangDarija  Language = "dar"
	LangEnglish Language = "en"
)

var languageAliases = map[string]Language{
	"fr":       LangFrench,
	"fra":      LangFrench,
	"french":   LangFrench,
	"francais": LangFrench,
	"français": LangFrench,
	"ar":       LangArabic,
	"ara":      LangArabic,
	"arabic":   LangArabic,
	"arabe":    LangArabic,
	"dar":      LangDarija,
	"darija":   LangDarija,
	"ma":       LangDarija,
	"en":       LangEnglish,
	"eng":      LangEnglish,
	"english":  LangEnglish,
	"anglais":  LangEnglish,
}

// ParseLanguage maps a raw language string onto the supported set,
// defaulting to French when unrecognized.
func ParseLanguage(s string) Language {
	if lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lang
	}
	return LangFrench
}

func (l Language) String() string {
	return string(l)
}

func (l Language) IsValid() bool {
	switch l {
	case LangFrench, LangArabic, LangDarija, LangEnglish:
		return true
	}
	return false
}
