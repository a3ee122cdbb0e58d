// Package complaint scores free text against bilingual keyword sets to
// decide whether a message is a complaint, pick its category and assign an
// initial priority.
package complaint

import (
	"strings"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

// Detection is the classifier output for one message.
type Detection struct {
	IsComplaint bool
	Category    vo.Category
	Priority    vo.Priority
	Confidence  float64
}

// Detector classifies complaints from message text.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect scores the text against the keyword set for the detected language.
// Languages without their own keyword set fall back to French. Ties on the
// category count are broken by the fixed order in CategoryTieBreakOrder.
func (d *Detector) Detect(text string, lang analysis.Language) Detection {
	keywords, ok := categoryKeywords[lang]
	if !ok {
		keywords = categoryKeywords[analysis.LangFrench]
	}

	lower := strings.ToLower(text)
	counts := make(map[vo.Category]int, len(keywords))
	total := 0
	for category, words := range keywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				counts[category]++
				total++
			}
		}
	}

	if total == 0 {
		return Detection{}
	}

	best := vo.CategoryGeneral
	bestCount := -1
	for _, category := range vo.CategoryTieBreakOrder {
		if counts[category] > bestCount {
			best = category
			bestCount = counts[category]
		}
	}

	confidence := float64(total) / 5
	if confidence > 1 {
		confidence = 1
	}

	return Detection{
		IsComplaint: true,
		Category:    best,
		Priority:    detectPriority(text),
		Confidence:  confidence,
	}
}

// detectPriority is independent of the category scoring: urgency keywords
// decide high then medium, defaulting to low.
func detectPriority(text string) vo.Priority {
	for _, p := range highUrgencyPatterns {
		if p.MatchString(text) {
			return vo.PriorityHigh
		}
	}
	for _, p := range mediumUrgencyPatterns {
		if p.MatchString(text) {
			return vo.PriorityMedium
		}
	}
	return vo.PriorityLow
}
