// File: services/user/user_test.go
package user

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisanhub/database"
	"artisanhub/database/repository"
	"artisanhub/models"
	"artisanhub/utils"
)

func newService(t *testing.T) (*DefaultUserService, *repository.Repositories) {
	t.Helper()
	repos := repository.New(database.NewMemoryBlobStore())
	svc := &DefaultUserService{
		Users:    repos.Users,
		Session:  repos.Session,
		Bookings: repos.Bookings,
		Artisans: repos.Artisans,
	}
	return svc, repos
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	resp, err := svc.Register(ctx, "Ahmed", "a@x.tn", "+216 22 333 444", models.RoleArtisan)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, models.RoleArtisan, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Bookings)
	assert.Empty(t, resp.User.ReviewsGiven)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, resp.User.ID, current.ID)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	first, err := svc.Register(ctx, "Ahmed", "a@x.tn", "", models.RoleArtisan)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "a@x.tn", "", models.RoleClient)
	assert.True(t, utils.HasCode(err, utils.CodeConflict))

	// The store still holds exactly one record with that email.
	users, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)
	count := 0
	for _, u := range users {
		if u.Email == "a@x.tn" {
			count++
			assert.Equal(t, first.User.ID, u.ID)
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegister_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	const workers = 64
	start := make(chan struct{})
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Register(ctx, "Ahmed", "dup@x.tn", "", models.RoleClient)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	succeeded, conflicted := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case utils.HasCode(err, utils.CodeConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)

	users, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)
	count := 0
	for _, u := range users {
		if u.Email == "dup@x.tn" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Register(ctx, "", "a@x.tn", "", models.RoleClient)
	assert.True(t, utils.HasCode(err, utils.CodeValidation))
	_, err = svc.Register(ctx, "Ahmed", "", "", models.RoleClient)
	assert.True(t, utils.HasCode(err, utils.CodeValidation))
	_, err = svc.Register(ctx, "Ahmed", "a@x.tn", "", models.UserRole("admin"))
	assert.True(t, utils.HasCode(err, utils.CodeValidation))
}

func TestLogin_KnownEmailIgnoresPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, "Sami", "sami@x.tn", "", models.RoleClient)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	// Any password works: the lookup is by email only.
	resp, err := svc.Login(ctx, "sami@x.tn", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "sami@x.tn", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, resp.User.ID, current.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), "nobody@x.tn", "pw")
	assert.True(t, utils.HasCode(err, utils.CodeAuth))
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, "Sami", "sami@x.tn", "", models.RoleClient)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSession_RestoredAcrossServiceInstances(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryBlobStore()
	repos := repository.New(store)
	svc := &DefaultUserService{Users: repos.Users, Session: repos.Session, Bookings: repos.Bookings, Artisans: repos.Artisans}

	resp, err := svc.Register(ctx, "Sami", "sami@x.tn", "", models.RoleClient)
	require.NoError(t, err)

	// A fresh service over the same blob store sees the same session, the
	// way a new process restores the pointer at startup.
	repos2 := repository.New(store)
	svc2 := &DefaultUserService{Users: repos2.Users, Session: repos2.Session, Bookings: repos2.Bookings, Artisans: repos2.Artisans}
	current, err := svc2.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, resp.User.ID, current.ID)
}

func TestRebuildUserCaches(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	resp, err := svc.Register(ctx, "Sami", "sami@x.tn", "", models.RoleClient)
	require.NoError(t, err)
	userID := resp.User.ID

	// Authoritative collections gain records the advisory caches never saw.
	require.NoError(t, repos.Artisans.Upsert(ctx, models.Artisan{
		ID: "a1", Name: "Ahmed", Category: models.CategoryPlumbing,
		Reviews: []models.Review{{ID: "r1", UserID: userID, UserName: "Sami", Rating: 5, Date: "2024-01-01"}},
		Rating:  5,
	}))
	require.NoError(t, repos.Bookings.Upsert(ctx, models.Booking{
		ID: "b1", ArtisanID: "a1", UserID: userID,
		Date: "2024-02-01", Time: "10:00", Service: "x", Status: models.BookingPending,
	}))

	require.NoError(t, svc.RebuildUserCaches(ctx))

	rebuilt, err := svc.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, rebuilt.Bookings)
	assert.Equal(t, []string{"r1"}, rebuilt.ReviewsGiven)
}
