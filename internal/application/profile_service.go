package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	"github.com/oksasatya/go-social-network/pkg/helpers"
)

type ProfileService struct {
	Profiles repo.ProfileRepository
	Users    repo.UserRepository
	Logger   *logrus.Logger
	NewID    func() string
	Now      func() time.Time
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		Profiles: profiles,
		Users:    users,
		Logger:   logger,
		NewID:    uuid.NewString,
		Now:      time.Now,
	}
}

// ProfileInput is the writable part of a profile. Skills is comma separated.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Designation    string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// SplitSkills turns "go, sql ,docker" into ["go","sql","docker"].
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProfileService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *ProfileService) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

func orBlank(v string) string {
	if v == "" {
		return entity.BlankTo
	}
	return v
}

func strPtr(v string) *string { return &v }

// nonEmpty returns nil for "" so Create leaves unset links out of the document.
func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (in ProfileInput) apply(p *entity.Profile) {
	p.Company = in.Company
	p.Website = in.Website
	p.Location = in.Location
	p.Designation = in.Designation
	p.Skills = SplitSkills(in.Skills)
	p.Bio = in.Bio
	p.GithubUsername = in.GithubUsername
}

// Create builds the caller's profile. A user has at most one.
func (s *ProfileService) Create(ctx context.Context, id entity.Identity, in ProfileInput) (*entity.Profile, error) {
	if _, err := s.Users.GetByID(ctx, id.UserID); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	_, err := s.Profiles.GetByUserID(ctx, id.UserID)
	switch {
	case err == nil:
		return nil, ErrProfileExists
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	now := s.now()
	p := &entity.Profile{
		UserID:     id.UserID,
		Experience: []entity.Experience{},
		Education:  []entity.Education{},
		Social: entity.Social{
			Youtube:   nonEmpty(in.Youtube),
			Twitter:   nonEmpty(in.Twitter),
			Facebook:  nonEmpty(in.Facebook),
			Linkedin:  nonEmpty(in.Linkedin),
			Instagram: nonEmpty(in.Instagram),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(p)
	if err := s.Profiles.Create(ctx, p); err != nil {
		return nil, notDuplicate(err, ErrProfileExists)
	}
	s.attachUsers(ctx, p)
	return p, nil
}

// Update rewrites the caller's profile fields and all social links.
// Experience and education entries are kept.
func (s *ProfileService) Update(ctx context.Context, id entity.Identity, in ProfileInput) (*entity.Profile, error) {
	return s.mutateOwn(ctx, id.UserID, func(p *entity.Profile) error {
		in.apply(p)
		p.Social = entity.Social{
			Youtube:   strPtr(in.Youtube),
			Twitter:   strPtr(in.Twitter),
			Facebook:  strPtr(in.Facebook),
			Linkedin:  strPtr(in.Linkedin),
			Instagram: strPtr(in.Instagram),
		}
		return nil
	})
}

func (s *ProfileService) Mine(ctx context.Context, id entity.Identity) (*entity.Profile, error) {
	return s.ByUserID(ctx, id.UserID)
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	s.attachUsers(ctx, p)
	return p, nil
}

func (s *ProfileService) ByID(ctx context.Context, profileID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	s.attachUsers(ctx, p)
	return p, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*entity.Profile, error) {
	ps, err := s.Profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	s.attachUsers(ctx, ps...)
	return ps, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, id entity.Identity, in ExperienceInput) (*entity.Profile, error) {
	entryID := s.newID()
	return s.mutateOwn(ctx, id.UserID, func(p *entity.Profile) error {
		p.AddExperience(entity.Experience{
			ID:          entryID,
			Title:       in.Title,
			Company:     in.Company,
			Location:    in.Location,
			From:        in.From,
			To:          orBlank(in.To),
			Current:     in.Current,
			Description: in.Description,
		})
		return nil
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, id entity.Identity, expID string) (*entity.Profile, error) {
	return s.mutateOwn(ctx, id.UserID, func(p *entity.Profile) error {
		if !p.RemoveExperience(expID) {
			return ErrExperienceNotFound
		}
		return nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, id entity.Identity, in EducationInput) (*entity.Profile, error) {
	entryID := s.newID()
	return s.mutateOwn(ctx, id.UserID, func(p *entity.Profile) error {
		p.AddEducation(entity.Education{
			ID:           entryID,
			School:       in.School,
			Degree:       in.Degree,
			FieldOfStudy: in.FieldOfStudy,
			From:         in.From,
			To:           orBlank(in.To),
			Current:      in.Current,
			Description:  in.Description,
		})
		return nil
	})
}

func (s *ProfileService) RemoveEducation(ctx context.Context, id entity.Identity, eduID string) (*entity.Profile, error) {
	return s.mutateOwn(ctx, id.UserID, func(p *entity.Profile) error {
		if !p.RemoveEducation(eduID) {
			return ErrEducationNotFound
		}
		return nil
	})
}

func (s *ProfileService) mutateOwn(ctx context.Context, userID string, fn func(*entity.Profile) error) (*entity.Profile, error) {
	p, err := mutateWithRetry(ctx,
		func(ctx context.Context) (*entity.Profile, error) {
			p, err := s.Profiles.GetByUserID(ctx, userID)
			if err != nil {
				return nil, notFoundAs(err, ErrProfileNotFound)
			}
			return p, nil
		},
		func(p *entity.Profile) error {
			if err := fn(p); err != nil {
				return err
			}
			p.UpdatedAt = s.now()
			return nil
		},
		s.Profiles.Save,
	)
	if err != nil {
		return nil, err
	}
	s.attachUsers(ctx, p)
	return p, nil
}

// attachUsers embeds the owner's summary. A failed lookup leaves profiles without it.
func (s *ProfileService) attachUsers(ctx context.Context, ps ...*entity.Profile) {
	if s.Users == nil || len(ps) == 0 {
		return
	}
	ids := make([]string, 0, len(ps))
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		helpers.LogWarn(s.Logger, "profile owner lookup failed", err, logrus.Fields{"count": len(ids)})
		return
	}
	byID := make(map[string]*entity.UserSummary, len(users))
	for _, u := range users {
		byID[u.ID] = u.Summary()
	}
	for _, p := range ps {
		p.User = byID[p.UserID]
	}
}
