package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/parsa-a/HealthTrackBack/internal/kvstore"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/repository"
)

type stubProfileStore struct {
	profiles    map[string]*models.Profile // by id
	insertCalls int
	findErr     error
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{profiles: make(map[string]*models.Profile)}
}

func (s *stubProfileStore) Insert(_ context.Context, profile *models.Profile) error {
	s.insertCalls++
	copied := *profile
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *stubProfileStore) FindByID(_ context.Context, id string) (*models.Profile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	profile, ok := s.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (s *stubProfileStore) FindByUsername(_ context.Context, username string) (*models.Profile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, profile := range s.profiles {
		if profile.Username == username {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubProfileStore) UpdatePartial(_ context.Context, id string, in repository.UpdateProfileInput) (*models.Profile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if in.FullName != nil {
		profile.FullName = in.FullName
	}
	if in.LanguagePreference != nil {
		profile.LanguagePreference = *in.LanguagePreference
	}
	copied := *profile
	return &copied, nil
}

func newTestSessionService() (*SessionService, *stubProfileStore) {
	store := newStubProfileStore()
	return NewSessionService(store, kvstore.NewMemoryStore()), store
}

func TestCreateOrAdoptCreatesProfileAndAdoptsIt(t *testing.T) {
	service, store := newTestSessionService()

	session, err := service.CreateOrAdopt(context.Background(), "client-1", "Alice", "CS", "First")
	if err != nil {
		t.Fatalf("CreateOrAdopt: %v", err)
	}
	if session.State != StateAuthenticated {
		t.Fatalf("expected authenticated, got %q", session.State)
	}
	if session.Profile.ID == "" {
		t.Fatal("expected a generated profile id")
	}
	if store.insertCalls != 1 {
		t.Fatalf("expected 1 insert, got %d", store.insertCalls)
	}

	current, err := service.Current(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.State != StateAuthenticated || current.Profile.ID != session.Profile.ID {
		t.Fatalf("expected adopted profile, got %+v", current)
	}
}

// Creating twice with the same name must result in exactly one remote row,
// with both calls succeeding and adopting the same profile.
func TestCreateOrAdoptIsIdempotentByName(t *testing.T) {
	service, store := newTestSessionService()

	first, err := service.CreateOrAdopt(context.Background(), "client-1", "Alice", "CS", "First")
	if err != nil {
		t.Fatalf("first CreateOrAdopt: %v", err)
	}
	second, err := service.CreateOrAdopt(context.Background(), "client-2", "Alice", "EE", "Second")
	if err != nil {
		t.Fatalf("second CreateOrAdopt: %v", err)
	}

	if store.insertCalls != 1 {
		t.Fatalf("expected exactly 1 insert, got %d", store.insertCalls)
	}
	if first.Profile.ID != second.Profile.ID {
		t.Fatalf("expected same adopted id, got %q and %q", first.Profile.ID, second.Profile.ID)
	}
	// The adopting call keeps the existing classification fields.
	if second.Profile.Department != "CS" {
		t.Fatalf("expected existing profile untouched, got %q", second.Profile.Department)
	}
}

func TestCreateOrAdoptValidatesInput(t *testing.T) {
	service, _ := newTestSessionService()

	cases := [][3]string{
		{"", "CS", "First"},
		{"  ", "CS", "First"},
		{"Alice", "", "First"},
		{"Alice", "CS", ""},
	}
	for _, tc := range cases {
		if _, err := service.CreateOrAdopt(context.Background(), "client-1", tc[0], tc[1], tc[2]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", tc, err)
		}
	}
}

func TestLoadByNameNotFound(t *testing.T) {
	service, _ := newTestSessionService()

	if _, err := service.LoadByName(context.Background(), "client-1", "Nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// A failed load leaves the client anonymous.
	session, err := service.Current(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if session.State != StateAnonymous {
		t.Fatalf("expected anonymous, got %q", session.State)
	}
}

func TestCurrentIsAnonymousWithoutLinkage(t *testing.T) {
	service, _ := newTestSessionService()

	session, err := service.Current(context.Background(), "fresh-client")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if session.State != StateAnonymous || session.Profile != nil {
		t.Fatalf("expected anonymous without profile, got %+v", session)
	}
}

func TestCurrentSurfacesStoreFailures(t *testing.T) {
	store := newStubProfileStore()
	service := NewSessionService(store, kvstore.NewMemoryStore())

	if _, err := service.CreateOrAdopt(context.Background(), "client-1", "Alice", "CS", "First"); err != nil {
		t.Fatalf("CreateOrAdopt: %v", err)
	}

	store.findErr = errors.New("store down")
	if _, err := service.Current(context.Background(), "client-1"); err == nil {
		t.Fatal("expected store failure to surface, not anonymous")
	}
}

func TestSignOutClearsLinkageButKeepsNames(t *testing.T) {
	service, store := newTestSessionService()

	if _, err := service.CreateOrAdopt(context.Background(), "client-1", "Alice", "CS", "First"); err != nil {
		t.Fatalf("CreateOrAdopt: %v", err)
	}
	if err := service.SignOut(context.Background(), "client-1"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	session, err := service.Current(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if session.State != StateAnonymous {
		t.Fatalf("expected anonymous after sign-out, got %q", session.State)
	}

	// The remote row and the picker list both survive a sign-out.
	if len(store.profiles) != 1 {
		t.Fatalf("expected remote profile to survive, got %d rows", len(store.profiles))
	}
	names, err := service.RememberedNames(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("RememberedNames: %v", err)
	}
	if len(names) != 1 || names[0] != "Alice" {
		t.Fatalf("expected remembered [Alice], got %v", names)
	}
}

func TestRememberedNamesDeduplicatesMostRecentLast(t *testing.T) {
	service, _ := newTestSessionService()
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Alice"} {
		if _, err := service.CreateOrAdopt(ctx, "client-1", name, "CS", "First"); err != nil {
			t.Fatalf("CreateOrAdopt(%s): %v", name, err)
		}
	}

	names, err := service.RememberedNames(ctx, "client-1")
	if err != nil {
		t.Fatalf("RememberedNames: %v", err)
	}
	if len(names) != 2 || names[0] != "Bob" || names[1] != "Alice" {
		t.Fatalf("expected [Bob Alice], got %v", names)
	}
}

func TestUpdateProfileRequiresCurrentProfile(t *testing.T) {
	service, _ := newTestSessionService()

	full := "Alice Smith"
	_, err := service.UpdateProfile(context.Background(), "client-1", repository.UpdateProfileInput{FullName: &full})
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	service, _ := newTestSessionService()
	ctx := context.Background()

	if _, err := service.CreateOrAdopt(ctx, "client-1", "Alice", "CS", "First"); err != nil {
		t.Fatalf("CreateOrAdopt: %v", err)
	}

	lang := "fa"
	profile, err := service.UpdateProfile(ctx, "client-1", repository.UpdateProfileInput{LanguagePreference: &lang})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.LanguagePreference != "fa" {
		t.Fatalf("expected language fa, got %q", profile.LanguagePreference)
	}
	if profile.Username != "Alice" {
		t.Fatalf("expected untouched username, got %q", profile.Username)
	}
}

func TestStaleLinkageResolvesToAnonymous(t *testing.T) {
	service, store := newTestSessionService()
	ctx := context.Background()

	session, err := service.CreateOrAdopt(ctx, "client-1", "Alice", "CS", "First")
	if err != nil {
		t.Fatalf("CreateOrAdopt: %v", err)
	}

	// Simulate the remote row disappearing out from under the linkage.
	delete(store.profiles, session.Profile.ID)

	current, err := service.Current(ctx, "client-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.State != StateAnonymous {
		t.Fatalf("expected anonymous for stale linkage, got %q", current.State)
	}
}
