package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/shared/validation"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.Password) == 0 || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 1
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		user, err := uc.Register(context.Background(), "Alice", "Smith", "alice@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 || user.Fname != "Alice" || user.Lname != "Smith" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("names are trimmed before persisting", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, err := uc.Register(context.Background(), "  Alice ", " Smith  ", "alice@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Fname != "Alice" || created.Lname != "Smith" {
			t.Errorf("expected trimmed names, got %q %q", created.Fname, created.Lname)
		}
	})

	t.Run("whitespace-only names and short password are rejected", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("store must not be mutated on validation failure")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, err := uc.Register(context.Background(), "   ", "", "alice@example.com", "short")

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(verr.Fields) != 3 {
			t.Errorf("expected 3 field errors, got %d: %+v", len(verr.Fields), verr.Fields)
		}
	})

	t.Run("duplicate email error is passed through", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, err := uc.Register(context.Background(), "Alice", "Smith", "alice@example.com", "password123")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &entity.User{ID: 1, Fname: "Alice", Lname: "Smith", Email: "alice@example.com", Password: string(hashed)}

	t.Run("successful login returns user and token", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return stored, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				if userID != 1 || email != "alice@example.com" {
					t.Errorf("unexpected token subject: %d %s", userID, email)
				}
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		user, token, err := uc.Login(context.Background(), "alice@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected token, got %q", token)
		}
		if user.ID != 1 {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		existingRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return stored, nil
			},
		}
		missingRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
		}

		uc := NewAuthUsecase(existingRepo, &mockJWTGenerator{})
		_, _, wrongPassErr := uc.Login(context.Background(), "alice@example.com", "wrong-password")

		uc = NewAuthUsecase(missingRepo, &mockJWTGenerator{})
		_, _, noUserErr := uc.Login(context.Background(), "ghost@example.com", "password123")

		if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassErr)
		}
		if !errors.Is(noUserErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", noUserErr)
		}
		// Enumeration resistance: identical error either way
		if wrongPassErr.Error() != noUserErr.Error() {
			t.Errorf("error messages differ: %q vs %q", wrongPassErr, noUserErr)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return stored, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				return "", errors.New("signing error")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, _, err := uc.Login(context.Background(), "alice@example.com", "password123")

		if err == nil {
			t.Fatal("expected error")
		}
	})
}
