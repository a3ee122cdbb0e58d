// Package response renders the bilingual templated reply for a contract
// status, using a most-specific-match lookup over persisted templates backed
// by a compiled-in default table.
package response

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	"github.com/Belkouche/jarvis-sub000/internal/domain/template"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

// Rendered is the templater output for one status.
type Rendered struct {
	Body           Bilingual
	AllowComplaint bool
}

// Templater resolves and renders response templates.
type Templater struct {
	repo   template.Repository
	logger logger.Interface
}

func NewTemplater(repo template.Repository, log logger.Interface) *Templater {
	return &Templater{repo: repo, logger: log}
}

// Render picks the most specific template for the status and substitutes
// placeholders in both language bodies. At each specificity level the
// persisted templates are consulted before the compiled-in defaults;
// the first match at any level wins before descending to the next.
func (t *Templater) Render(ctx context.Context, status *contract.Status, contractNumber string) Rendered {
	key := template.Key{
		Etat:      status.Etat,
		SousEtat:  status.SousEtat,
		SousEtat2: status.SousEtat2,
	}

	tpl := t.lookup(ctx, key)
	if tpl == nil {
		tpl = &genericTemplate
	}

	rendered := Rendered{
		Body: Bilingual{
			FR: substitute(tpl.BodyFR, status, contractNumber),
			AR: substitute(tpl.BodyAR, status, contractNumber),
		},
		AllowComplaint: tpl.AllowComplaint,
	}

	if rendered.AllowComplaint {
		rendered.Body.FR += ComplaintInvitationSuffix.FR
		rendered.Body.AR += ComplaintInvitationSuffix.AR
	}

	return rendered
}

func (t *Templater) lookup(ctx context.Context, key template.Key) *template.ResponseTemplate {
	for _, candidate := range key.Fallbacks() {
		if tpl := t.lookupPersisted(ctx, candidate); tpl != nil {
			return tpl
		}
		if tpl := lookupDefault(candidate); tpl != nil {
			return tpl
		}
	}
	return nil
}

func (t *Templater) lookupPersisted(ctx context.Context, key template.Key) *template.ResponseTemplate {
	if t.repo == nil {
		return nil
	}
	tpl, err := t.repo.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, template.ErrTemplateNotFound) {
			t.logger.Warnw("template lookup failed", "etat", key.Etat, "error", err)
		}
		return nil
	}
	return tpl
}

func lookupDefault(key template.Key) *template.ResponseTemplate {
	for i := range defaultTemplates {
		tpl := &defaultTemplates[i]
		if tpl.Etat == key.Etat && tpl.SousEtat == key.SousEtat && tpl.SousEtat2 == key.SousEtat2 {
			return tpl
		}
	}
	return nil
}

// placeholderPattern matches {contract}, {etat}, {sous_etat} and {date}
// case-insensitively.
var placeholderPattern = regexp.MustCompile(`(?i)\{(contract|etat|sous_etat|date)\}`)

func substitute(body string, status *contract.Status, contractNumber string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		switch strings.ToLower(strings.Trim(match, "{}")) {
		case "contract":
			return contractNumber
		case "etat":
			return status.Etat
		case "sous_etat":
			return status.SousEtat
		case "date":
			if status.AppointmentDate != nil {
				return status.AppointmentDate.Format("02/01/2006")
			}
			return ""
		}
		return match
	})
}
