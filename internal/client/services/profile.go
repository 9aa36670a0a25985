package services

import (
	"context"
	"strings"
	"time"

	"github.com/ashish-aa/skillmesh/internal/client/api"
	"github.com/ashish-aa/skillmesh/internal/client/blob"
	"github.com/ashish-aa/skillmesh/internal/client/location"
	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/datex"
	"github.com/ashish-aa/skillmesh/internal/logging"
)

// WarningPictureUpload is set on the Result when the profile was saved but
// the picture upload failed, so the surface can tell partial success apart
// from plain success.
const WarningPictureUpload = "profile saved, but the picture upload failed"

// ProfileDraft is the profile under edit. PicturePath points at a local
// image file; empty means no picture was picked.
type ProfileDraft struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Location    string
	PicturePath string
}

// ProfileService backs the profile completion form. A picked picture is
// uploaded first and the profile record is written only after the upload
// has resolved, so the record never references an in-flight upload.
type ProfileService struct {
	form

	gw       api.Gateway
	uploader blob.Uploader
	log      logging.Logger
	now      func() time.Time

	Draft ProfileDraft
}

// NewProfileService constructs a ProfileService over the gateway and the
// image uploader.
func NewProfileService(gw api.Gateway, uploader blob.Uploader, log logging.Logger) *ProfileService {
	return &ProfileService{gw: gw, uploader: uploader, log: log, now: time.Now}
}

// Age derives the drafted date of birth into years for display. It is not
// persisted; the backend stores the date itself.
func (s *ProfileService) Age() int {
	return datex.Age(s.Draft.DateOfBirth, s.now())
}

// ResolveLocation fills the draft's location from the device position.
// Permission denial leaves the draft untouched and is reported so the
// surface can show a transient notice; the profile can be completed
// without a location either way.
func (s *ProfileService) ResolveLocation(ctx context.Context, p location.Provider) error {
	addr, err := location.Resolve(ctx, p, s.gw)
	if err != nil {
		return err
	}
	s.Draft.Location = addr
	return nil
}

// Submit validates the draft and writes the profile record for the given
// account. An upload failure does not block the write: the record is saved
// with an empty picture reference and the Result carries
// WarningPictureUpload. On any store failure the draft is kept for
// correction and resubmission.
func (s *ProfileService) Submit(ctx context.Context, accountID string) {
	if strings.TrimSpace(s.Draft.FirstName) == "" {
		s.reject("first name is required")
		return
	}
	if strings.TrimSpace(s.Draft.LastName) == "" {
		s.reject("last name is required")
		return
	}
	if s.Draft.DateOfBirth.IsZero() {
		s.reject("date of birth is required")
		return
	}

	if !s.begin() {
		return
	}

	var warning string
	pictureURL := ""
	if s.Draft.PicturePath != "" {
		url, err := s.uploader.UploadImage(ctx, accountID, s.Draft.PicturePath)
		if err != nil {
			s.log.Warn(ctx, "picture upload failed", "error", err)
			warning = WarningPictureUpload
		} else {
			pictureURL = url
		}
	}

	profile := models.Profile{
		FirstName:   strings.TrimSpace(s.Draft.FirstName),
		LastName:    strings.TrimSpace(s.Draft.LastName),
		DateOfBirth: datex.FormatServerDate(s.Draft.DateOfBirth),
		Location:    s.Draft.Location,
		PictureURL:  pictureURL,
		Completed:   true,
		CreatedAt:   s.now(),
	}

	if err := s.gw.PutProfile(ctx, accountID, profile); err != nil {
		s.log.Warn(ctx, "profile write failed", "error", err)
		s.finish(Result{State: StateError, Message: errorMessage(err)})
		return
	}

	s.finish(Result{State: StateSuccess, Warning: warning})
}

// SubmitCategories writes the category selection for the account. At least
// one category is required and every pick must come from the catalog.
func (s *ProfileService) SubmitCategories(ctx context.Context, accountID string, categories []string) {
	if len(categories) == 0 {
		s.reject("pick at least one category")
		return
	}
	for _, c := range categories {
		if !models.ValidCategory(c) {
			s.reject("unknown category: " + c)
			return
		}
	}

	if !s.begin() {
		return
	}

	if err := s.gw.UpdateCategories(ctx, accountID, categories); err != nil {
		s.log.Warn(ctx, "category update failed", "error", err)
		s.finish(Result{State: StateError, Message: errorMessage(err)})
		return
	}

	s.finish(Result{State: StateSuccess})
}

// Load fetches the account's stored profile, reporting whether one exists.
func (s *ProfileService) Load(ctx context.Context, accountID string) (models.Profile, bool, error) {
	profile, exists, err := s.gw.GetProfile(ctx, accountID)
	if err != nil {
		return models.Profile{}, false, err
	}
	if !exists {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}
