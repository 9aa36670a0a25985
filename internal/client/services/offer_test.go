package services

import (
	"context"
	"sync"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/stretchr/testify/require"
)

func validOfferDraft() OfferDraft {
	return OfferDraft{
		Title:       "Guitar lessons",
		Category:    "Music",
		Subcategory: "Instrumental",
		Description: "Beginner friendly acoustic guitar lessons.",
	}
}

func TestOfferSubmit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		mutate    func(*OfferDraft)
		message   string
	}{
		{"not authenticated", "", func(d *OfferDraft) {}, "sign in to post a skill offer"},
		{"blank title", "acc-1", func(d *OfferDraft) { d.Title = " " }, "title is required"},
		{"blank category", "acc-1", func(d *OfferDraft) { d.Category = "" }, "category is required"},
		{"unknown category", "acc-1", func(d *OfferDraft) { d.Category = "Knitting" }, "unknown category: Knitting"},
		{"blank description", "acc-1", func(d *OfferDraft) { d.Description = "" }, "description is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			s := NewOfferService(gw, testLogger())
			s.Draft = validOfferDraft()
			tt.mutate(&s.Draft)

			s.Submit(context.Background(), tt.accountID)

			require.Equal(t, StateError, s.Result().State)
			require.Equal(t, tt.message, s.Result().Message)
			require.Zero(t, gw.addOfferCalls)
		})
	}
}

func TestOfferSubmit_Success_ResetsDraft(t *testing.T) {
	gw := &fakeGateway{offerID: "offer-1"}
	s := NewOfferService(gw, testLogger())
	s.Draft = validOfferDraft()

	s.Submit(context.Background(), "acc-1")

	require.Equal(t, StateSuccess, s.Result().State)
	require.Equal(t, 1, gw.addOfferCalls)
	require.Equal(t, "offer-1", s.LastID())
	require.Equal(t, "Guitar lessons", gw.lastOffer.Title)
	require.Equal(t, OfferDraft{}, s.Draft)
}

func TestOfferSubmit_Failure_KeepsDraft(t *testing.T) {
	gw := &fakeGateway{err: common.ErrStore}
	s := NewOfferService(gw, testLogger())
	s.Draft = validOfferDraft()

	s.Submit(context.Background(), "acc-1")

	require.Equal(t, StateError, s.Result().State)
	require.Equal(t, validOfferDraft(), s.Draft)
	require.False(t, s.Submitting())
}

func TestOfferSubmit_SingleFlight(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{}), offerID: "offer-1"}
	s := NewOfferService(gw, testLogger())
	s.Draft = validOfferDraft()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Submit(context.Background(), "acc-1")
	}()

	require.Eventually(t, s.Submitting, waitFor, tick)
	s.Submit(context.Background(), "acc-1")

	close(gw.release)
	wg.Wait()

	require.Equal(t, 1, gw.addOfferCalls)
}
