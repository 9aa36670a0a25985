package services

import (
	"context"
	"strings"

	"github.com/ashish-aa/skillmesh/internal/client/api"
	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

// OfferDraft is the skill offer under edit.
type OfferDraft struct {
	Title       string
	Category    string
	Subcategory string
	Description string
}

// OfferService backs the skill-offer form. Unlike the profile draft, the
// offer draft resets after a successful submit since one account posts
// many offers.
type OfferService struct {
	form

	gw  api.Gateway
	log logging.Logger

	Draft OfferDraft

	lastID string
}

// NewOfferService constructs an OfferService bound to the given gateway.
func NewOfferService(gw api.Gateway, log logging.Logger) *OfferService {
	return &OfferService{gw: gw, log: log}
}

// LastID returns the store-assigned id of the most recently posted offer.
func (s *OfferService) LastID() string {
	return s.lastID
}

// Submit validates the draft and posts it under the given account. On
// success the draft resets to empty; on failure it is kept for correction.
func (s *OfferService) Submit(ctx context.Context, accountID string) {
	if accountID == "" {
		s.reject("sign in to post a skill offer")
		return
	}
	if strings.TrimSpace(s.Draft.Title) == "" {
		s.reject("title is required")
		return
	}
	if strings.TrimSpace(s.Draft.Category) == "" {
		s.reject("category is required")
		return
	}
	if !models.ValidCategory(s.Draft.Category) {
		s.reject("unknown category: " + s.Draft.Category)
		return
	}
	if strings.TrimSpace(s.Draft.Description) == "" {
		s.reject("description is required")
		return
	}

	if !s.begin() {
		return
	}

	offer := models.SkillOffer{
		Title:       strings.TrimSpace(s.Draft.Title),
		Category:    s.Draft.Category,
		Subcategory: strings.TrimSpace(s.Draft.Subcategory),
		Description: strings.TrimSpace(s.Draft.Description),
	}

	id, err := s.gw.AddSkillOffer(ctx, accountID, offer)
	if err != nil {
		s.log.Warn(ctx, "skill offer submit failed", "error", err)
		s.finish(Result{State: StateError, Message: errorMessage(err)})
		return
	}

	s.lastID = id
	s.Draft = OfferDraft{}
	s.finish(Result{State: StateSuccess})
}

// List returns the account's posted offers, newest last.
func (s *OfferService) List(ctx context.Context, accountID string) ([]models.SkillOffer, error) {
	return s.gw.ListSkillOffers(ctx, accountID)
}
