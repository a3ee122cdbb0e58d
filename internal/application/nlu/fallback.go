package nlu

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
)

// fallbackConfidence is strictly lower than any model-reported confidence,
// so downstream consumers can always tell the two provenances apart.
const fallbackConfidence = 0.6

// contractLoosePattern matches a contract number with embedded whitespace,
// case-insensitive, anywhere in the text.
var contractLoosePattern = regexp.MustCompile(`(?i)f\s*\d(?:\s*\d){6}\s*d`)

var frenchDiacritics = "àâäçéèêëîïôöùûüÿœæÀÂÄÇÉÈÊËÎÏÔÖÙÛÜŸŒÆ"

var fallbackComplaintKeywords = []string{
	"problème", "probleme", "panne", "retard", "plainte", "réclamation",
	"reclamation", "urgent", "pas de connexion", "ne marche pas",
	"مشكل", "مشكلة", "عطل", "تأخير", "شكاية", "شكوى",
}

// ExtractWithHeuristics is the deterministic fallback extractor. It is used
// whenever the model path fails and is exported for direct testing.
func ExtractWithHeuristics(text string) *analysis.Result {
	contractNumber := ""
	if match := contractLoosePattern.FindString(text); match != "" {
		contractNumber = analysis.NormalizeContractNumber(match)
	}

	result := &analysis.Result{
		Language:       detectLanguage(text),
		ContractNumber: contractNumber,
		IsValidFormat:  contractNumber != "",
		IsSpam:         looksLikeSpam(text),
		Confidence:     fallbackConfidence,
		UsedFallback:   true,
	}

	result.Intent = detectIntent(text, contractNumber)
	return result
}

func detectLanguage(text string) analysis.Language {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return analysis.LangArabic
		}
	}
	if strings.ContainsAny(text, frenchDiacritics) {
		return analysis.LangFrench
	}
	if isASCIIAlphanumeric(text) {
		return analysis.LangEnglish
	}
	return analysis.LangFrench
}

func isASCIIAlphanumeric(text string) bool {
	hasLetter := false
	for _, r := range text {
		if r > unicode.MaxASCII {
			return false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func detectIntent(text, contractNumber string) analysis.Intent {
	lower := strings.ToLower(text)
	for _, kw := range fallbackComplaintKeywords {
		if strings.Contains(lower, kw) {
			return analysis.IntentComplaint
		}
	}
	if contractNumber != "" {
		return analysis.IntentStatusCheck
	}
	return analysis.IntentOther
}

func looksLikeSpam(text string) bool {
	trimmed := strings.TrimSpace(text)
	if n := utf8.RuneCountInString(trimmed); n < 3 || n > 500 {
		return true
	}
	if len(strings.Fields(trimmed)) > 50 {
		return true
	}
	return symbolsOnly(trimmed)
}

func symbolsOnly(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
