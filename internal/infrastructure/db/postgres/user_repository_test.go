package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tunecraft/auth-service/internal/domain/entities"
	"github.com/tunecraft/auth-service/internal/domain/repositories"
)

func newTestRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	// Named in-memory database so every pooled connection sees the same
	// data, but each test still gets its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserModel{}))
	return NewUserRepository(db)
}

func validated(t *testing.T, user *entities.User) *entities.ValidatedUser {
	t.Helper()
	v, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	return v
}

func TestCreateAndFindByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := entities.NewUser("Ada", "Lovelace", "Ada@Example.com", "some-hash")
	user.FavouriteTemplates = []string{"tmpl-1", "tmpl-2"}

	created, err := repo.Create(ctx, validated(t, user))
	require.NoError(t, err)
	assert.Equal(t, user.Id, created.Id)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, []string{"tmpl-1", "tmpl-2"}, created.FavouriteTemplates)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)
	assert.Equal(t, "some-hash", found.Password)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown email is (nil, nil), not an error")
}

func TestCreate_DuplicateEmailHitsUniqueIndex(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := entities.NewUser("Ada", "Lovelace", "ada@example.com", "hash-1")
	_, err := repo.Create(ctx, validated(t, first))
	require.NoError(t, err)

	// Same email, different id: the unique index must reject it even though
	// no caller-side pre-check ran.
	second := entities.NewUser("Other", "Person", "ada@example.com", "hash-2")
	_, err = repo.Create(ctx, validated(t, second))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestFindById(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := entities.NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	_, err := repo.Create(ctx, validated(t, user))
	require.NoError(t, err)

	found, err := repo.FindById(ctx, user.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ada@example.com", found.Email)
}

func TestFindByResetToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	user := entities.NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	user.IssueResetTicket("the-token", now.Add(time.Hour))
	_, err := repo.Create(ctx, validated(t, user))
	require.NoError(t, err)

	found, err := repo.FindByResetToken(ctx, "the-token", now)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)

	// Expired: same value, but the lookup instant is past the expiry.
	expired, err := repo.FindByResetToken(ctx, "the-token", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, expired)

	// Forged: never issued.
	forged, err := repo.FindByResetToken(ctx, "other-token", now)
	require.NoError(t, err)
	assert.Nil(t, forged)

	// Accounts with no ticket must not match an empty probe.
	empty, err := repo.FindByResetToken(ctx, "", now)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestUpdate_ConsumesResetTicket(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	user := entities.NewUser("Ada", "Lovelace", "ada@example.com", "old-hash")
	user.IssueResetTicket("the-token", now.Add(time.Hour))
	_, err := repo.Create(ctx, validated(t, user))
	require.NoError(t, err)

	user.ConsumeResetTicket("new-hash")
	updated, err := repo.Update(ctx, validated(t, user))
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.Password)
	assert.Empty(t, updated.ResetToken)
	assert.True(t, updated.ResetTokenExpiry.IsZero())

	gone, err := repo.FindByResetToken(ctx, "the-token", now)
	require.NoError(t, err)
	assert.Nil(t, gone, "a consumed ticket cannot be replayed")
}
