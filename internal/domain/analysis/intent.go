package analysis

import "strings"

// Intent is the classified purpose of an inbound message.
type Intent string

const (
	IntentStatusCheck Intent = "status_check"
	IntentComplaint   Intent = "complaint"
	IntentOther       Intent = "other"
)

var intentAliases = map[string]Intent{
	"status_check": IntentStatusCheck,
	"status":       IntentStatusCheck,
	"statut":       IntentStatusCheck,
	"suivi":        IntentStatusCheck,
	"complaint":    IntentComplaint,
	"reclamation":  IntentComplaint,
	"réclamation":  IntentComplaint,
	"plainte":      IntentComplaint,
	"other":        IntentOther,
	"autre":        IntentOther,
}

// ParseIntent maps a raw intent string onto the supported set,
// defaulting to "other" when unrecognized.
func ParseIntent(s string) Intent {
	if intent, ok := intentAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return intent
	}
	return IntentOther
}

func (i Intent) String() string {
	return string(i)
}

func (i Intent) IsValid() bool {
	switch i {
	case IntentStatusCheck, IntentComplaint, IntentOther:
		return true
	}
	return false
}
