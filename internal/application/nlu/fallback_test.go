package nlu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
)

func TestExtractWithHeuristics_ContractWithEmbeddedSpaces(t *testing.T) {
	result := ExtractWithHeuristics("statut f 0823846 d svp")

	assert.Equal(t, "F0823846D", result.ContractNumber)
	assert.True(t, result.IsValidFormat)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, analysis.IntentStatusCheck, result.Intent)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestExtractWithHeuristics_LanguageDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want analysis.Language
	}{
		{"arabic script wins", "واش وصل الطلب ديالي F0823846D", analysis.LangArabic},
		{"french diacritics", "où en est mon contrat", analysis.LangFrench},
		{"plain ascii", "hello where is my order", analysis.LangEnglish},
		{"mixed arabic and latin", "contrat مشكل", analysis.LangArabic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractWithHeuristics(tt.text)
			assert.Equal(t, tt.want, result.Language)
		})
	}
}

func TestExtractWithHeuristics_ComplaintKeywords(t *testing.T) {
	result := ExtractWithHeuristics("j'ai un problème avec ma connexion")
	assert.Equal(t, analysis.IntentComplaint, result.Intent)

	result = ExtractWithHeuristics("عندي مشكل في الخط")
	assert.Equal(t, analysis.IntentComplaint, result.Intent)

	// Complaint keyword wins over the presence of a contract number.
	result = ExtractWithHeuristics("panne sur le contrat F0823846D")
	assert.Equal(t, analysis.IntentComplaint, result.Intent)
	assert.Equal(t, "F0823846D", result.ContractNumber)
}

func TestExtractWithHeuristics_NoSignal(t *testing.T) {
	result := ExtractWithHeuristics("Bonjour")

	assert.Equal(t, analysis.IntentOther, result.Intent)
	assert.Empty(t, result.ContractNumber)
	assert.False(t, result.IsSpam)
}

func TestExtractWithHeuristics_Spam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"too short", "ok", true},
		{"too long", strings.Repeat("a", 501), true},
		{"too many tokens", strings.Repeat("mot ", 51), true},
		{"symbols only", "!!! ??? ***", true},
		{"normal message", "où en est mon dossier", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractWithHeuristics(tt.text)
			assert.Equal(t, tt.want, result.IsSpam)
		})
	}
}

func TestExtractWithHeuristics_RejectsMalformedContract(t *testing.T) {
	// Wrong digit count cannot normalize to the canonical format.
	result := ExtractWithHeuristics("mon contrat F123D")
	assert.Empty(t, result.ContractNumber)
	assert.False(t, result.IsValidFormat)
}
