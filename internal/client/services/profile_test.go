package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ashish-aa/skillmesh/internal/client/location"
	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/stretchr/testify/require"
)

func validProfileDraft() ProfileDraft {
	return ProfileDraft{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestProfileSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProfileDraft)
		message string
	}{
		{"blank first name", func(d *ProfileDraft) { d.FirstName = "  " }, "first name is required"},
		{"blank last name", func(d *ProfileDraft) { d.LastName = "" }, "last name is required"},
		{"missing birth date", func(d *ProfileDraft) { d.DateOfBirth = time.Time{} }, "date of birth is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			s := NewProfileService(gw, &fakeUploader{}, testLogger())
			s.Draft = validProfileDraft()
			tt.mutate(&s.Draft)

			s.Submit(context.Background(), "acc-1")

			require.Equal(t, StateError, s.Result().State)
			require.Equal(t, tt.message, s.Result().Message)
			require.Zero(t, gw.putProfileCalls)
		})
	}
}

func TestProfileSubmit_NoPicture(t *testing.T) {
	gw := &fakeGateway{}
	up := &fakeUploader{}
	s := NewProfileService(gw, up, testLogger())
	s.Draft = validProfileDraft()
	s.Draft.Location = "Berlin, Germany"

	s.Submit(context.Background(), "acc-1")

	require.Equal(t, StateSuccess, s.Result().State)
	require.Empty(t, s.Result().Warning)
	require.Zero(t, up.calls)
	require.Equal(t, 1, gw.putProfileCalls)
	require.Equal(t, "Ada", gw.lastProfile.FirstName)
	require.Equal(t, "2000-06-15", gw.lastProfile.DateOfBirth)
	require.Equal(t, "Berlin, Germany", gw.lastProfile.Location)
	require.Empty(t, gw.lastProfile.PictureURL)
	require.True(t, gw.lastProfile.Completed)
}

func TestProfileSubmit_WithPicture(t *testing.T) {
	gw := &fakeGateway{}
	up := &fakeUploader{url: "https://cdn.example.com/profile_images/acc-1/x.jpg"}
	s := NewProfileService(gw, up, testLogger())
	s.Draft = validProfileDraft()
	s.Draft.PicturePath = "/tmp/me.jpg"

	s.Submit(context.Background(), "acc-1")

	require.Equal(t, StateSuccess, s.Result().State)
	require.Equal(t, 1, up.calls)
	require.Equal(t, up.url, gw.lastProfile.PictureURL)
}

func TestProfileSubmit_UploadFails_ProfileStillWritten(t *testing.T) {
	gw := &fakeGateway{}
	up := &fakeUploader{err: common.ErrUpload}
	s := NewProfileService(gw, up, testLogger())
	s.Draft = validProfileDraft()
	s.Draft.PicturePath = "/tmp/me.jpg"

	s.Submit(context.Background(), "acc-1")

	// partial success: record saved with an empty picture reference and the
	// failure surfaced distinctly from plain success
	require.Equal(t, StateSuccess, s.Result().State)
	require.Equal(t, WarningPictureUpload, s.Result().Warning)
	require.Equal(t, 1, gw.putProfileCalls)
	require.Empty(t, gw.lastProfile.PictureURL)
}

func TestProfileSubmit_StoreFails_DraftKept(t *testing.T) {
	gw := &fakeGateway{err: common.ErrStore}
	s := NewProfileService(gw, &fakeUploader{}, testLogger())
	s.Draft = validProfileDraft()

	s.Submit(context.Background(), "acc-1")

	require.Equal(t, StateError, s.Result().State)
	require.Equal(t, "Ada", s.Draft.FirstName)
	require.False(t, s.Submitting())
}

func TestProfileSubmit_SingleFlight(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{})}
	s := NewProfileService(gw, &fakeUploader{}, testLogger())
	s.Draft = validProfileDraft()

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

	require.Equal(t, 1, gw.putProfileCalls)
}

func TestSubmitCategories(t *testing.T) {
	gw := &fakeGateway{}
	s := NewProfileService(gw, &fakeUploader{}, testLogger())

	s.SubmitCategories(context.Background(), "acc-1", nil)
	require.Equal(t, StateError, s.Result().State)
	require.Zero(t, gw.categoriesCalls)

	s.SubmitCategories(context.Background(), "acc-1", []string{"Knitting"})
	require.Equal(t, StateError, s.Result().State)
	require.Zero(t, gw.categoriesCalls)

	s.SubmitCategories(context.Background(), "acc-1", []string{"Music", "Programming"})
	require.Equal(t, StateSuccess, s.Result().State)
	require.Equal(t, []string{"Music", "Programming"}, gw.lastCategories)
}

func TestProfileAge(t *testing.T) {
	s := NewProfileService(&fakeGateway{}, &fakeUploader{}, testLogger())
	s.Draft.DateOfBirth = time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC) }
	require.Equal(t, 24, s.Age())

	s.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	require.Equal(t, 25, s.Age())
}

func TestResolveLocation(t *testing.T) {
	gw := &fakeGateway{}
	s := NewProfileService(gw, &fakeUploader{}, testLogger())

	denied := location.StaticProvider{}
	err := s.ResolveLocation(context.Background(), denied)
	require.ErrorIs(t, err, common.ErrPermissionDenied)
	require.Empty(t, s.Draft.Location)

	granted := location.StaticProvider{
		Coords:  location.Coordinates{Latitude: 52.52, Longitude: 13.405},
		Enabled: true,
	}
	err = s.ResolveLocation(context.Background(), granted)
	require.NoError(t, err)
	require.Equal(t, "Berlin, Germany", s.Draft.Location)
}
