package navigation

// GateInput is the remote profile state the completion gate consumes. All
// fields come from a fresh profile lookup; FirstLogin distinguishes an
// interactive sign-in from a restored session.
type GateInput struct {
	ProfileExists    bool
	ProfileCompleted bool
	HasCategories    bool
	FirstLogin       bool
}

// Decision is the gate's outcome: where to go, plus an optional
// user-visible notice to show before navigating.
type Decision struct {
	Destination Destination
	Notice      string
}

// NoticeCompleteProfile is shown when a user signs in with an incomplete
// profile.
const NoticeCompleteProfile = "Complete your profile"

// Decide routes a user based on profile state. Rules are evaluated in
// order; the first match wins:
//
//  1. no profile                          -> ProfileForm
//  2. profile exists, not completed      -> ProfileForm, with notice
//  3. completed, no categories           -> CategorySelection
//  4. completed, categories chosen       -> SkillOffer on a fresh sign-in,
//     MainArea for a restored session
//
// "Completed but no categories" is a normal state (categories are chosen in
// a later step, and older profiles predate the field), never an error.
func Decide(in GateInput) Decision {
	switch {
	case !in.ProfileExists:
		return Decision{Destination: ProfileForm}
	case !in.ProfileCompleted:
		return Decision{Destination: ProfileForm, Notice: NoticeCompleteProfile}
	case !in.HasCategories:
		return Decision{Destination: CategorySelection}
	case in.FirstLogin:
		return Decision{Destination: SkillOffer}
	default:
		return Decision{Destination: MainArea}
	}
}
