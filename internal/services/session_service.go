package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/parsa-a/HealthTrackBack/internal/kvstore"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoProfile    = errors.New("no active profile")
)

// SessionState is the resolution outcome for a client's session. A session
// is Uninitialized until hydrated, then either Anonymous or Authenticated;
// Authenticated only becomes Anonymous through an explicit sign-out.
type SessionState string

const (
	StateUninitialized SessionState = "uninitialized"
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

type Session struct {
	State   SessionState    `json:"state"`
	Profile *models.Profile `json:"profile,omitempty"`
}

type profileStore interface {
	Insert(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	UpdatePartial(ctx context.Context, id string, in repository.UpdateProfileInput) (*models.Profile, error)
}

// SessionService owns the "current profile" linkage for each client. The
// remote store is the source of truth for profiles; the kv store holds only
// a weak reference (the profile id) plus the remembered-name picker list,
// both namespaced by the client's opaque id.
type SessionService struct {
	profiles profileStore
	kv       kvstore.Store
	newID    func() string
}

func NewSessionService(profiles profileStore, kv kvstore.Store) *SessionService {
	return &SessionService{
		profiles: profiles,
		kv:       kv,
		newID:    uuid.NewString,
	}
}

// CreateOrAdopt creates a profile under the given username, or adopts the
// existing one when the name is already taken. Username acts as a soft
// unique key: the store does not enforce uniqueness, so this is a documented
// lookup-then-insert policy, not a constraint. Two concurrent creations with
// the same name can still race and produce two rows; lookups then return an
// arbitrary single match.
func (s *SessionService) CreateOrAdopt(ctx context.Context, clientID, name, department, stage string) (*Session, error) {
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	stage = strings.TrimSpace(stage)
	if clientID == "" || name == "" || department == "" || stage == "" {
		return nil, ErrInvalidInput
	}

	profile, err := s.profiles.FindByUsername(ctx, name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}

	if profile == nil {
		profile = &models.Profile{
			ID:                 s.newID(),
			Username:           name,
			Department:         department,
			Stage:              stage,
			LanguagePreference: "en",
		}
		if err := s.profiles.Insert(ctx, profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	}

	if err := s.adopt(ctx, clientID, profile); err != nil {
		return nil, err
	}
	return &Session{State: StateAuthenticated, Profile: profile}, nil
}

// LoadByName adopts an existing profile by exact username match.
func (s *SessionService) LoadByName(ctx context.Context, clientID, name string) (*Session, error) {
	name = strings.TrimSpace(name)
	if clientID == "" || name == "" {
		return nil, ErrInvalidInput
	}

	profile, err := s.profiles.FindByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup profile: %w", err)
	}

	if err := s.adopt(ctx, clientID, profile); err != nil {
		return nil, err
	}
	return &Session{State: StateAuthenticated, Profile: profile}, nil
}

// Current hydrates the session from the persisted profile id. A missing key
// or a persisted id that no longer resolves yields Anonymous; a failing
// store yields an error, never a silent Anonymous.
func (s *SessionService) Current(ctx context.Context, clientID string) (*Session, error) {
	if clientID == "" {
		return nil, ErrInvalidInput
	}

	profileID, err := s.kv.Get(ctx, profileIDKey(clientID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return &Session{State: StateAnonymous}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	profile, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Stale linkage: the remote row is gone, drop the reference.
			_ = s.kv.Delete(ctx, profileIDKey(clientID))
			return &Session{State: StateAnonymous}, nil
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	return &Session{State: StateAuthenticated, Profile: profile}, nil
}

// UpdateProfile merges partial fields remotely and returns the merged
// profile; callers mirror the response, there is no re-fetch to confirm.
func (s *SessionService) UpdateProfile(ctx context.Context, clientID string, in repository.UpdateProfileInput) (*models.Profile, error) {
	session, err := s.Current(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.State != StateAuthenticated {
		return nil, ErrNoProfile
	}

	profile, err := s.profiles.UpdatePartial(ctx, session.Profile.ID, in)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// SignOut clears the persisted linkage. The remote profile row and the
// remembered-name list are left untouched.
func (s *SessionService) SignOut(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidInput
	}
	return s.kv.Delete(ctx, profileIDKey(clientID))
}

// RememberedNames returns the names previously used on this client, most
// recent last, for the "load previous profile" picker.
func (s *SessionService) RememberedNames(ctx context.Context, clientID string) ([]string, error) {
	if clientID == "" {
		return nil, ErrInvalidInput
	}

	raw, err := s.kv.Get(ctx, namesKey(clientID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read remembered names: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("decode remembered names: %w", err)
	}
	return names, nil
}

func (s *SessionService) adopt(ctx context.Context, clientID string, profile *models.Profile) error {
	if err := s.kv.Set(ctx, profileIDKey(clientID), profile.ID); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return s.rememberName(ctx, clientID, profile.Username)
}

func (s *SessionService) rememberName(ctx context.Context, clientID, name string) error {
	names, err := s.RememberedNames(ctx, clientID)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(names)+1)
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	kept = append(kept, name)

	encoded, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("encode remembered names: %w", err)
	}
	return s.kv.Set(ctx, namesKey(clientID), string(encoded))
}

func profileIDKey(clientID string) string {
	return "session:" + clientID + ":profile_id"
}

func namesKey(clientID string) string {
	return "session:" + clientID + ":names"
}
