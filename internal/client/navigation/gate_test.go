package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecide_FullTable(t *testing.T) {
	tests := []struct {
		name       string
		in         GateInput
		want       Destination
		wantNotice string
	}{
		{
			name: "no profile",
			in:   GateInput{ProfileExists: false, FirstLogin: true},
			want: ProfileForm,
		},
		{
			name: "no profile, stale flags ignored",
			in:   GateInput{ProfileExists: false, ProfileCompleted: true, HasCategories: true},
			want: ProfileForm,
		},
		{
			name:       "profile exists, not completed",
			in:         GateInput{ProfileExists: true, ProfileCompleted: false},
			want:       ProfileForm,
			wantNotice: NoticeCompleteProfile,
		},
		{
			name:       "not completed, categories present",
			in:         GateInput{ProfileExists: true, ProfileCompleted: false, HasCategories: true},
			want:       ProfileForm,
			wantNotice: NoticeCompleteProfile,
		},
		{
			name: "completed without categories",
			in:   GateInput{ProfileExists: true, ProfileCompleted: true, HasCategories: false},
			want: CategorySelection,
		},
		{
			name: "completed with categories, fresh sign-in",
			in:   GateInput{ProfileExists: true, ProfileCompleted: true, HasCategories: true, FirstLogin: true},
			want: SkillOffer,
		},
		{
			name: "completed with categories, restored session",
			in:   GateInput{ProfileExists: true, ProfileCompleted: true, HasCategories: true, FirstLogin: false},
			want: MainArea,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.in)
			require.Equal(t, tc.want, got.Destination)
			require.Equal(t, tc.wantNotice, got.Notice)
		})
	}
}

func TestDecide_NoticeOnlyOnIncompleteProfile(t *testing.T) {
	for _, exists := range []bool{true, false} {
		for _, completed := range []bool{true, false} {
			for _, cats := range []bool{true, false} {
				d := Decide(GateInput{ProfileExists: exists, ProfileCompleted: completed, HasCategories: cats})
				if exists && !completed {
					require.Equal(t, NoticeCompleteProfile, d.Notice)
				} else {
					require.Empty(t, d.Notice)
				}
			}
		}
	}
}
