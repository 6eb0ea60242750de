package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = user

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := repo.Create(context.Background(), domain.User{
		Email:    email,
		Password: string(hash),
		Name:     "Administrator",
		Role:     role,
	})
	require.NoError(t, err)

	return user
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		seeded := seedUser(t, repo, "admin@vectore.com", "Admin123!", "admin")
		svc := NewAuthService(repo)

		user, err := svc.Login(context.Background(), "admin@vectore.com", "Admin123!")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.True(t, user.IsAdmin())
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, "admin@vectore.com", "Admin123!", "admin")
		svc := NewAuthService(repo)

		_, err := svc.Login(context.Background(), "admin@vectore.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		_, err := svc.Login(context.Background(), "ghost@vectore.com", "Admin123!")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_SeedAdmin(t *testing.T) {
	t.Run("creates the account on first boot", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		err := svc.SeedAdmin(context.Background(), "admin@vectore.com", "Admin123!")
		require.NoError(t, err)

		user, err := repo.FindByEmail(context.Background(), "admin@vectore.com")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Admin123!")))
	})

	t.Run("is a no-op when the account exists", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := seedUser(t, repo, "admin@vectore.com", "Admin123!", "admin")
		svc := NewAuthService(repo)

		err := svc.SeedAdmin(context.Background(), "admin@vectore.com", "Other456!")
		require.NoError(t, err)

		user, err := repo.FindByEmail(context.Background(), "admin@vectore.com")
		require.NoError(t, err)
		assert.Equal(t, existing.Password, user.Password)
	})

	t.Run("is a no-op without configured credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		require.NoError(t, svc.SeedAdmin(context.Background(), "", ""))
		assert.Empty(t, repo.users)
	})
}

func TestUserService_GetUser(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "admin@vectore.com", "Admin123!", "admin")
	svc := NewUserService(repo)

	user, err := svc.GetUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@vectore.com", user.Email)

	_, err = svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
