package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/authdash/dashboard-api/internal/core/domain"
	"github.com/authdash/dashboard-api/internal/pkg/hash"
	"github.com/authdash/dashboard-api/internal/pkg/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func newTestService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, hash.NewBcrypt(bcrypt.MinCost), token.NewService("secret"), time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), "a@x.com", "alice", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pw123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "alice", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@x.com", "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	first, err := svc.Register(context.Background(), "bob@x.com", "bob", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "bob@x.com", "robert", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// First record untouched by the failed attempt.
	stored, err := repo.FindByEmail(context.Background(), "bob@x.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Username != "bob" || stored.ID != first.ID {
		t.Fatalf("first record changed: %+v", stored)
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "carol@x.com", "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := token.NewService("secret").Verify(signed)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if subject != "carol@x.com" {
		t.Fatalf("expected subject carol@x.com, got %q", subject)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "dave@x.com", "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestAuthService_Login_CorruptStoredDigest(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	repo.users["evil@x.com"] = &domain.User{ID: 7, Email: "evil@x.com", Username: "evil", PasswordHash: "truncated"}

	_, _, err := svc.Login(context.Background(), "evil@x.com", "whatever")
	if !errors.Is(err, hash.ErrCorruptDigest) {
		t.Fatalf("expected ErrCorruptDigest, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("corrupt digest must not look like bad credentials")
	}
}
