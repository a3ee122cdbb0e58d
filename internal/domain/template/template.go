// Package template defines the bilingual response templates keyed by the
// external system's status hierarchy.
package template

import (
	"context"
	"errors"
)

// ErrTemplateNotFound is returned by FindByKey when no persisted template
// matches the exact key.
var ErrTemplateNotFound = errors.New("response template not found")

// ResponseTemplate maps a status key to its FR/AR reply bodies. The two
// bodies are independent authored texts, never translated from each other.
type ResponseTemplate struct {
	ID             uint
	Etat           string
	SousEtat       string // empty means "any"
	SousEtat2      string // empty means "any"
	BodyFR         string
	BodyAR         string
	AllowComplaint bool
}

// Key is the 3-level specificity key for template lookup.
type Key struct {
	Etat      string
	SousEtat  string
	SousEtat2 string
}

// Fallbacks returns the lookup keys from most to least specific:
// (etat, sous_etat, sous_etat_2) → (etat, sous_etat) → (etat).
func (k Key) Fallbacks() []Key {
	keys := []Key{}
	if k.SousEtat != "" && k.SousEtat2 != "" {
		keys = append(keys, k)
	}
	if k.SousEtat != "" {
		keys = append(keys, Key{Etat: k.Etat, SousEtat: k.SousEtat})
	}
	keys = append(keys, Key{Etat: k.Etat})
	return keys
}

// Repository is the persistence port for operator-managed templates.
// Persisted templates take precedence over the compiled-in defaults at each
// specificity level.
type Repository interface {
	FindByKey(ctx context.Context, key Key) (*ResponseTemplate, error)
	Save(ctx context.Context, t *ResponseTemplate) error
	Update(ctx context.Context, t *ResponseTemplate) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*ResponseTemplate, int64, error)
}
