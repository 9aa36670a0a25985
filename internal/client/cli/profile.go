package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/ashish-aa/skillmesh/internal/client/services"
	"github.com/ashish-aa/skillmesh/internal/common"
)

// CompleteProfile walks the user through the profile form and submits it.
// Location and picture are optional; a failed picture upload does not
// block the profile itself.
func (a *App) CompleteProfile(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	dob, err := GetDate(a.reader, "Date of birth", os.Stdout)
	if err != nil {
		return err
	}

	draft := services.ProfileDraft{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dob,
	}
	a.profile.Draft = draft

	if !dob.IsZero() {
		fmt.Printf("Age: %d\n", a.profile.Age())
	}

	locCtx, cancelLoc := a.requestCtx(ctx)
	err = a.profile.ResolveLocation(locCtx, a.locations)
	cancelLoc()
	switch {
	case err == nil:
		fmt.Println("Location:", a.profile.Draft.Location)
	case errors.Is(err, common.ErrPermissionDenied):
		// no location access, the profile can still be completed
	default:
		a.log.Warn(ctx, "location lookup failed", "error", err)
	}

	picture, err := getSimpleText(a.reader, "Path to profile picture (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	a.profile.Draft.PicturePath = picture

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()
	a.profile.Submit(reqCtx, a.session.Account.ID)

	res := a.profile.Result()
	if res.State != services.StateSuccess {
		fmt.Println(res.Message)
		return nil
	}
	if res.Warning != "" {
		fmt.Println(res.Warning)
	} else {
		fmt.Println("Profile saved.")
	}

	a.navigate(navigation.CategorySelection)
	return nil
}

// SelectCategories reads the interest picks and stores them.
func (a *App) SelectCategories(ctx context.Context) error {
	picks, err := GetMultiChoice(a.reader, "Pick your interests:", models.Categories, os.Stdout)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()
	a.profile.SubmitCategories(reqCtx, a.session.Account.ID, picks)

	res := a.profile.Result()
	if res.State != services.StateSuccess {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Println("Categories saved.")
	a.navigate(navigation.SkillOffer)
	return nil
}
