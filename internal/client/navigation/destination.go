// Package navigation decides which screen the user should land on: the
// initial destination at launch and the post-auth destination derived from
// remote profile state. Destinations are abstract targets; the presentation
// layer maps them to actual screens.
package navigation

// Destination is an abstract navigation target.
type Destination string

const (
	// Welcome is the entry screen for unauthenticated users.
	Welcome Destination = "welcome"

	// VerifyEmail prompts for the manual email-verification round trip.
	VerifyEmail Destination = "verifyEmail"

	// ProfileForm collects the onboarding profile.
	ProfileForm Destination = "profile"

	// CategorySelection asks the user to pick interest categories.
	CategorySelection Destination = "categorySelection"

	// SkillOffer collects the user's first skill offer.
	SkillOffer Destination = "skillOffer"

	// MainArea hands off to the rest of the product.
	MainArea Destination = "main"
)
