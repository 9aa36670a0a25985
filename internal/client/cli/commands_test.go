package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/stretchr/testify/require"
)

func TestSelectCategories_RoutesToSkillOffer(t *testing.T) {
	gw := &fakeGateway{exists: true, profile: models.Profile{Completed: true}}
	a := newTestApp(gw, &memStore{})
	a.session = authedSession()
	a.destination = navigation.CategorySelection
	a.reader = rdr("1,2\n")

	require.NoError(t, a.SelectCategories(context.Background()))
	require.Equal(t, navigation.SkillOffer, a.destination)
	require.Equal(t, []string{"Art & Creativity", "Business & Professional"}, gw.profile.Categories)
}

func TestPostOffer_RoutesToMainArea(t *testing.T) {
	gw := &fakeGateway{offerID: "offer-1"}
	a := newTestApp(gw, &memStore{})
	a.session = authedSession()
	a.destination = navigation.SkillOffer

	answers := []string{"Guitar lessons", "Beginner friendly."}
	origST := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	defer func() { getSimpleText = origST }()

	// picks category 5 (Music) and subcategory 2 (Instrumental)
	a.reader = rdr("5\n2\n")

	require.NoError(t, a.PostOffer(context.Background()))
	require.Equal(t, navigation.MainArea, a.destination)
	require.Len(t, gw.offers, 1)
	require.Equal(t, "Guitar lessons", gw.offers[0].Title)
	require.Equal(t, "Music", gw.offers[0].Category)
	require.Equal(t, "Instrumental", gw.offers[0].Subcategory)
}

func TestCommandGating(t *testing.T) {
	a := newTestApp(&fakeGateway{}, &memStore{})

	a.destination = navigation.Welcome
	require.True(t, a.available("signin"))
	require.False(t, a.available("offer"))

	a.destination = navigation.VerifyEmail
	require.True(t, a.available("verify"))
	require.False(t, a.available("profile"))

	a.destination = navigation.MainArea
	require.True(t, a.available("offer"))
	require.True(t, a.available("list"))
	require.False(t, a.available("signup"))
}
