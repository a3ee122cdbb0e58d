package complaint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

func TestDetect_NotAComplaint(t *testing.T) {
	detection := NewDetector().Detect("bonjour, merci pour votre aide", analysis.LangFrench)

	assert.False(t, detection.IsComplaint)
	assert.Zero(t, detection.Confidence)
}

func TestDetect_Categories(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang analysis.Language
		want vo.Category
	}{
		{"delay fr", "toujours pas de technicien, ça fait un retard énorme", analysis.LangFrench, vo.CategoryDelay},
		{"quality fr", "la connexion est lente et instable, coupure permanente", analysis.LangFrench, vo.CategoryQuality},
		{"service fr", "le technicien n'est pas venu au rendez-vous", analysis.LangFrench, vo.CategoryService},
		{"billing fr", "on m'a prélevé deux fois sur la facture", analysis.LangFrench, vo.CategoryBilling},
		{"general fr", "je suis mécontent, c'est inacceptable", analysis.LangFrench, vo.CategoryGeneral},
		{"delay ar", "مازال في انتظار التقني، تأخير كبير", analysis.LangArabic, vo.CategoryDelay},
		{"quality ar", "الخط بطيء وفيه انقطاع", analysis.LangArabic, vo.CategoryQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detection := NewDetector().Detect(tt.text, tt.lang)
			assert.True(t, detection.IsComplaint)
			assert.Equal(t, tt.want, detection.Category)
		})
	}
}

func TestDetect_TieBreakIsDeterministic(t *testing.T) {
	// One delay keyword and one billing keyword: delay wins by fixed order.
	detection := NewDetector().Detect("retard sur la facture", analysis.LangFrench)

	assert.True(t, detection.IsComplaint)
	assert.Equal(t, vo.CategoryDelay, detection.Category)
}

func TestDetect_Priority(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang analysis.Language
		want vo.Priority
	}{
		{"urgent keyword", "problème urgent depuis 2 semaines", analysis.LangFrench, vo.PriorityHigh},
		{"weeks elapsed", "panne depuis 3 semaines", analysis.LangFrench, vo.PriorityHigh},
		{"arabic urgent", "مشكل عاجل في الخط", analysis.LangArabic, vo.PriorityHigh},
		{"days elapsed", "coupure depuis 2 jours", analysis.LangFrench, vo.PriorityMedium},
		{"repeated attempts", "j'ai appelé plusieurs fois pour cette panne", analysis.LangFrench, vo.PriorityMedium},
		{"no urgency", "petit problème de facturation", analysis.LangFrench, vo.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detection := NewDetector().Detect(tt.text, tt.lang)
			assert.True(t, detection.IsComplaint)
			assert.Equal(t, tt.want, detection.Priority)
		})
	}
}

func TestDetect_ConfidenceScalesWithMatches(t *testing.T) {
	weak := NewDetector().Detect("petite panne", analysis.LangFrench)
	strong := NewDetector().Detect("panne, coupure, débit lent, connexion instable, ne marche pas", analysis.LangFrench)

	assert.Greater(t, strong.Confidence, weak.Confidence)
	assert.LessOrEqual(t, strong.Confidence, 1.0)
}

func TestDetect_UnknownLanguageUsesFrenchKeywords(t *testing.T) {
	detection := NewDetector().Detect("big probleme with my line", analysis.LangEnglish)

	assert.True(t, detection.IsComplaint)
}
