package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ibarberis/hablabot/internal/database"
	"github.com/ibarberis/hablabot/internal/lang"
	"github.com/ibarberis/hablabot/internal/users"
)

// fakeStore is an in-memory Store for exercising the service without
// SQLite. getErr forces read faults; saveErr forces write faults.
type fakeStore struct {
	languages map[int64]string
	saved     []*database.User
	getErr    error
	saveErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{languages: make(map[int64]string)}
}

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) SaveUser(_ context.Context, user *database.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.languages[user.UserID] = user.Language
	f.saved = append(f.saved, user)
	return nil
}

func (f *fakeStore) GetUserLanguage(_ context.Context, userID int64) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	l, ok := f.languages[userID]
	if !ok {
		return "", database.ErrUserNotFound
	}
	return l, nil
}

func (f *fakeStore) CountUsers(context.Context) (int64, error) {
	return int64(len(f.languages)), nil
}

func (f *fakeStore) RunSQLMaintenance(context.Context) error { return nil }

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		setup func(*fakeStore)
		want  lang.Language
	}{
		{
			name:  "unknown user defaults to spanish",
			setup: func(*fakeStore) {},
			want:  lang.Spanish,
		},
		{
			name: "stored english",
			setup: func(f *fakeStore) {
				f.languages[1] = "english"
			},
			want: lang.English,
		},
		{
			name: "stored spanish",
			setup: func(f *fakeStore) {
				f.languages[1] = "spanish"
			},
			want: lang.Spanish,
		},
		{
			name: "corrupt stored value defaults",
			setup: func(f *fakeStore) {
				f.languages[1] = "klingon"
			},
			want: lang.Default,
		},
		{
			name: "read fault degrades to default",
			setup: func(f *fakeStore) {
				f.getErr = errors.New("disk on fire")
			},
			want: lang.Default,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			tc.setup(store)
			svc := users.NewService(store, nil)

			if got := svc.Resolve(context.Background(), 1); got != tc.want {
				t.Errorf("Resolve = %s, want %s", got, tc.want)
			}
		})
	}
}

// Resolving an unknown user must not create a profile as a side effect.
func TestResolveDoesNotWrite(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := users.NewService(store, nil)

	svc.Resolve(context.Background(), 99)

	if len(store.saved) != 0 {
		t.Errorf("Resolve wrote %d profiles, want 0", len(store.saved))
	}
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := users.NewService(store, nil)
	ctx := context.Background()

	if err := svc.Bootstrap(ctx, 10, "jdoe", "John", lang.English); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if got := svc.Resolve(ctx, 10); got != lang.English {
		t.Errorf("language after bootstrap = %s, want %s", got, lang.English)
	}

	saved := store.saved[0]
	if !saved.Username.Valid || saved.Username.String != "jdoe" {
		t.Errorf("saved username = %+v, want valid %q", saved.Username, "jdoe")
	}
	if saved.FirstName != "John" {
		t.Errorf("saved first name = %q, want %q", saved.FirstName, "John")
	}
}

func TestBootstrapEmptyUsername(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := users.NewService(store, nil)

	if err := svc.Bootstrap(context.Background(), 11, "", "Ana", lang.Spanish); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if store.saved[0].Username.Valid {
		t.Errorf("empty username should persist as NULL, got %+v", store.saved[0].Username)
	}
}

func TestBootstrapWriteFault(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.saveErr = errors.New("locked")
	svc := users.NewService(store, nil)

	if err := svc.Bootstrap(context.Background(), 12, "", "Ana", lang.Spanish); err == nil {
		t.Error("Bootstrap should surface the store write fault")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		stored string
		want   lang.Language
	}{
		{name: "spanish flips to english", stored: "spanish", want: lang.English},
		{name: "english flips to spanish", stored: "english", want: lang.Spanish},
		{name: "unknown user flips from default", stored: "", want: lang.Default.Toggle()},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			if tc.stored != "" {
				store.languages[20] = tc.stored
			}
			svc := users.NewService(store, nil)
			ctx := context.Background()

			got, err := svc.Toggle(ctx, 20, "u", "U")
			if err != nil {
				t.Fatalf("Toggle failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Toggle = %s, want %s", got, tc.want)
			}
			if persisted := svc.Resolve(ctx, 20); persisted != tc.want {
				t.Errorf("persisted language = %s, want %s", persisted, tc.want)
			}
		})
	}
}

// Two toggles must land back on the starting language.
func TestToggleInvolution(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.languages[30] = "english"
	svc := users.NewService(store, nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, 30, "", "U"); err != nil {
		t.Fatalf("first Toggle failed: %v", err)
	}
	if _, err := svc.Toggle(ctx, 30, "", "U"); err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}

	if got := svc.Resolve(ctx, 30); got != lang.English {
		t.Errorf("language after double toggle = %s, want %s", got, lang.English)
	}
}

func TestToggleWriteFault(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.languages[40] = "spanish"
	store.saveErr = errors.New("locked")
	svc := users.NewService(store, nil)

	got, err := svc.Toggle(context.Background(), 40, "", "U")
	if err == nil {
		t.Fatal("Toggle should surface the store write fault")
	}
	if got != lang.Spanish {
		t.Errorf("failed Toggle returned %s, want the unchanged %s", got, lang.Spanish)
	}
}

func TestCountUsers(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.languages[1] = "spanish"
	store.languages[2] = "english"
	svc := users.NewService(store, nil)

	count, err := svc.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 2 {
		t.Errorf("CountUsers = %d, want 2", count)
	}
}
