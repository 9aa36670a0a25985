package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/client/navigation"
	"github.com/ashish-aa/skillmesh/internal/client/services"
)

// PostOffer walks the user through the skill-offer form and posts it.
func (a *App) PostOffer(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}

	catIdx, err := GetChoice(a.reader, "Category:", models.Categories, os.Stdout)
	if err != nil {
		return err
	}
	category := ""
	if catIdx >= 0 {
		category = models.Categories[catIdx]
	}

	subcategory := ""
	if subs, ok := models.Subcategories[category]; ok {
		subIdx, err := GetChoice(a.reader, "Subcategory (empty to skip):", subs, os.Stdout)
		if err != nil {
			return err
		}
		if subIdx >= 0 {
			subcategory = subs[subIdx]
		}
	} else {
		if subcategory, err = getSimpleText(a.reader, "Subcategory (empty to skip)", os.Stdout); err != nil {
			return err
		}
	}

	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	a.offers.Draft = services.OfferDraft{
		Title:       title,
		Category:    category,
		Subcategory: subcategory,
		Description: description,
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()
	a.offers.Submit(reqCtx, a.session.Account.ID)

	res := a.offers.Result()
	if res.State != services.StateSuccess {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Println("Skill offer posted.")
	a.navigate(navigation.MainArea)
	return nil
}

// ListOffers prints the account's posted offers.
func (a *App) ListOffers(ctx context.Context) error {
	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	offers, err := a.offers.List(reqCtx, a.session.Account.ID)
	if err != nil {
		fmt.Println("Could not load your offers. Try again.")
		return nil
	}
	if len(offers) == 0 {
		fmt.Println("No offers posted yet.")
		return nil
	}
	for _, o := range offers {
		line := o.Title + " [" + o.Category
		if o.Subcategory != "" {
			line += " / " + o.Subcategory
		}
		line += "]"
		fmt.Println(line)
		fmt.Println("  " + o.Description)
	}
	return nil
}
