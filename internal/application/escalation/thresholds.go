package escalation

import (
	"time"

	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

// Priority-keyed age thresholds driving the three escalation rules. All
// windows are measured from complaint creation.
var (
	// autoEscalateAfter hands the complaint to the external provider.
	autoEscalateAfter = map[vo.Priority]time.Duration{
		vo.PriorityHigh:   8 * time.Hour,
		vo.PriorityMedium: 48 * time.Hour,
		vo.PriorityLow:    168 * time.Hour,
	}

	// reminderSchedule lists the ordered reminder points, in hours. Each
	// fires at most once per complaint.
	reminderSchedule = map[vo.Priority][]int{
		vo.PriorityHigh:   {2, 4, 6},
		vo.PriorityMedium: {12, 24, 36},
		vo.PriorityLow:    {24, 48, 72},
	}

	// bumpAfter raises the internal priority one level. High is listed for
	// completeness but never bumps further.
	bumpAfter = map[vo.Priority]time.Duration{
		vo.PriorityHigh:   4 * time.Hour,
		vo.PriorityMedium: 24 * time.Hour,
		vo.PriorityLow:    72 * time.Hour,
	}
)
