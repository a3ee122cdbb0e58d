package response

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	"github.com/Belkouche/jarvis-sub000/internal/domain/template"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type mockTemplateRepo struct {
	FindByKeyFunc func(ctx context.Context, key template.Key) (*template.ResponseTemplate, error)
}

func (m *mockTemplateRepo) FindByKey(ctx context.Context, key template.Key) (*template.ResponseTemplate, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	return nil, template.ErrTemplateNotFound
}

func (m *mockTemplateRepo) Save(ctx context.Context, t *template.ResponseTemplate) error { return nil }
func (m *mockTemplateRepo) Update(ctx context.Context, t *template.ResponseTemplate) error {
	return nil
}
func (m *mockTemplateRepo) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockTemplateRepo) List(ctx context.Context, page, pageSize int) ([]*template.ResponseTemplate, int64, error) {
	return nil, 0, nil
}

func newTestTemplater(repo template.Repository) *Templater {
	return NewTemplater(repo, logger.NewLogger())
}

func TestRender_MostSpecificDefaultWins(t *testing.T) {
	status := &contract.Status{Etat: "En cours", SousEtat: "BO fixe"}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "back-office")
	assert.Contains(t, rendered.Body.FR, "F0823846D")
	assert.True(t, rendered.AllowComplaint)
	// Complaint invitation appended in both languages.
	assert.Contains(t, rendered.Body.FR, ComplaintInvitationSuffix.FR)
	assert.Contains(t, rendered.Body.AR, ComplaintInvitationSuffix.AR)
}

func TestRender_FallsBackToEtatLevel(t *testing.T) {
	status := &contract.Status{Etat: "En cours", SousEtat: "Validation technique"}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	// No default for this sous-état: falls back to the bare "En cours" entry
	// and substitutes {sous_etat}.
	assert.Contains(t, rendered.Body.FR, "Validation technique")
}

func TestRender_ClosedContractDisallowsComplaint(t *testing.T) {
	status := &contract.Status{Etat: "Fermé"}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "installé")
	assert.False(t, rendered.AllowComplaint)
	assert.NotContains(t, rendered.Body.FR, ComplaintInvitationSuffix.FR)
}

func TestRender_UnknownStatusUsesGenericTemplate(t *testing.T) {
	status := &contract.Status{Etat: "Statut inconnu", SousEtat: "Mystère"}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "Statut inconnu")
	assert.Contains(t, rendered.Body.FR, "Mystère")
	assert.Contains(t, rendered.Body.FR, "F0823846D")
}

func TestRender_PersistedOverridesDefaultAtSameLevel(t *testing.T) {
	repo := &mockTemplateRepo{
		FindByKeyFunc: func(ctx context.Context, key template.Key) (*template.ResponseTemplate, error) {
			if key.Etat == "Fermé" && key.SousEtat == "" {
				return &template.ResponseTemplate{
					Etat:           "Fermé",
					BodyFR:         "Contrat {contract} clôturé — merci de votre confiance.",
					BodyAR:         "تم إغلاق العقد {contract}.",
					AllowComplaint: false,
				}, nil
			}
			return nil, template.ErrTemplateNotFound
		},
	}

	rendered := newTestTemplater(repo).Render(context.Background(), &contract.Status{Etat: "Fermé"}, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "clôturé")
	assert.NotContains(t, rendered.Body.FR, "installé")
}

func TestRender_SpecificDefaultBeatsBroaderPersisted(t *testing.T) {
	// A persisted template at the état level must not shadow a compiled-in
	// default at a more specific level.
	repo := &mockTemplateRepo{
		FindByKeyFunc: func(ctx context.Context, key template.Key) (*template.ResponseTemplate, error) {
			if key.Etat == "En cours" && key.SousEtat == "" {
				return &template.ResponseTemplate{
					Etat:   "En cours",
					BodyFR: "override générique",
					BodyAR: "override",
				}, nil
			}
			return nil, template.ErrTemplateNotFound
		},
	}

	status := &contract.Status{Etat: "En cours", SousEtat: "BO fixe"}
	rendered := newTestTemplater(repo).Render(context.Background(), status, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "back-office")
	assert.NotContains(t, rendered.Body.FR, "override générique")
}

func TestRender_DatePlaceholder(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	status := &contract.Status{Etat: "En cours", SousEtat: "Planifié", AppointmentDate: &date}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	assert.Contains(t, rendered.Body.FR, "15/03/2026")
	assert.Contains(t, rendered.Body.AR, "15/03/2026")
}

func TestRender_MissingDateRendersEmpty(t *testing.T) {
	status := &contract.Status{Etat: "En cours", SousEtat: "Planifié"}

	rendered := newTestTemplater(&mockTemplateRepo{}).Render(context.Background(), status, "F0823846D")

	assert.NotContains(t, rendered.Body.FR, "{date}")
}

func TestKeyFallbacks(t *testing.T) {
	full := template.Key{Etat: "En cours", SousEtat: "BO fixe", SousEtat2: "Relance"}
	assert.Equal(t, []template.Key{
		full,
		{Etat: "En cours", SousEtat: "BO fixe"},
		{Etat: "En cours"},
	}, full.Fallbacks())

	bare := template.Key{Etat: "Fermé"}
	assert.Equal(t, []template.Key{{Etat: "Fermé"}}, bare.Fallbacks())
}
