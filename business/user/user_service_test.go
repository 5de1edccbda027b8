package user

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"smartShop/domain"
	"smartShop/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitJWT("unit-test-secret")
	os.Exit(m.Run())
}

type memUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[uint]*domain.User
	nextID  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uint]*domain.User),
		nextID:  1,
	}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++

	// store a snapshot, like a real database would; the service clears the
	// password on the caller's struct after saving
	stored := *user
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return *u, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return *u, nil
}

type memTokenStore struct {
	tokens map[string]string
	err    error
}

func (s *memTokenStore) StoreToken(ctx context.Context, userID, role, token string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.tokens == nil {
		s.tokens = make(map[string]string)
	}
	s.tokens[userID] = token
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	store := &memTokenStore{}
	svc := NewUserService(repo, validator.New(), store)

	created, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ramesh Sharma",
		Email:    "ramesh@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, created.Role)
	assert.Empty(t, created.Password)

	// clearing the returned password must not reach the persisted hash
	stored, err := repo.FindByEmail(context.Background(), "ramesh@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)

	token, loggedIn, err := svc.Login(context.Background(), "ramesh@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.Password)
	assert.Len(t, store.tokens, 1)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, RoleOwner, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), validator.New(), nil)

	_, err := svc.Register(context.Background(), &domain.User{Email: "not-an-email", Password: "secret123"})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), &domain.User{Email: "ok@example.com", Password: "short"})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), &domain.User{Email: "ok@example.com", Password: "secret123", Role: "superadmin"})
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), validator.New(), nil)

	_, err := svc.Register(context.Background(), &domain.User{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &domain.User{Email: "ramesh@example.com", Password: "secret456"})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), validator.New(), nil)

	_, err := svc.Register(context.Background(), &domain.User{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ramesh@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.Error(t, err)
}

func TestLoginSurvivesTokenStoreFailure(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), validator.New(), &memTokenStore{err: errors.New("redis down")})

	_, err := svc.Register(context.Background(), &domain.User{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)

	token, _, err := svc.Login(context.Background(), "ramesh@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
