package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/pkg/apperrors"
	"github.com/kaanyld/tutorhub/internal/pkg/auth"
	"github.com/kaanyld/tutorhub/internal/storage"
)

func newAuthService(t *testing.T) (services.AuthService, *auth.JWTService) {
	t.Helper()
	repos := repositories.NewRepositories(storage.NewMemoryMedium(), zerolog.Nop())
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "tutorhub.test",
	})
	return services.NewAuthService(repos.AccountRepository, jwtService, zerolog.Nop()), jwtService
}

func TestAuthService_RegisterParentAndLogin(t *testing.T) {
	svc, jwtService := newAuthService(t)

	registered, err := svc.RegisterParent(dto.RegisterParentRequest{
		Email:     "parent@example.com",
		Password:  "password1",
		FirstName: "Ada",
		LastName:  "Byron",
	})
	if err != nil {
		t.Fatal(err)
	}
	if registered.Account.Role != models.RoleParent {
		t.Fatalf("role: %s", registered.Account.Role)
	}
	if registered.Token.AccessToken == "" || registered.Token.TokenType != "Bearer" {
		t.Fatalf("token response: %#v", registered.Token)
	}

	// the issued token carries the account identity
	claims, err := jwtService.ValidateAndExtractClaims(registered.Token.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if claims.AccountID != registered.Account.ID {
		t.Fatalf("token accountId %s, account %s", claims.AccountID, registered.Account.ID)
	}
	if claims.RoleType != string(models.RoleParent) {
		t.Fatalf("token role: %s", claims.RoleType)
	}

	loggedIn, err := svc.Login(dto.LoginRequest{Email: "parent@example.com", Password: "password1"})
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn.Account.ID != registered.Account.ID {
		t.Fatalf("login resolved to %s", loggedIn.Account.ID)
	}

	if _, err := svc.Login(dto.LoginRequest{Email: "parent@example.com", Password: "nope12345"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("bad password: got %v", err)
	}
}

func TestAuthService_RegisterTutorKeepsProfileFields(t *testing.T) {
	svc, _ := newAuthService(t)

	registered, err := svc.RegisterTutor(dto.RegisterTutorRequest{
		Email:      "tutor@example.com",
		Password:   "password1",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Subjects:   []string{"Math", "Physics"},
		HourlyRate: 55,
	})
	if err != nil {
		t.Fatal(err)
	}
	if registered.Account.Role != models.RoleTutor {
		t.Fatalf("role: %s", registered.Account.Role)
	}
	if len(registered.Account.Subjects) != 2 || registered.Account.HourlyRate != 55 {
		t.Fatalf("tutor profile: %#v", registered.Account)
	}
}

func TestAuthService_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := dto.RegisterParentRequest{
		Email:     "parent@example.com",
		Password:  "password1",
		FirstName: "Ada",
		LastName:  "Byron",
	}
	if _, err := svc.RegisterParent(req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RegisterParent(req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate registration: got %v", err)
	}
}

func TestAuthService_ValidationErrors(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct {
		name string
		req  dto.RegisterParentRequest
	}{
		{name: "missing email", req: dto.RegisterParentRequest{Password: "password1", FirstName: "A", LastName: "B"}},
		{name: "bad email", req: dto.RegisterParentRequest{Email: "not-an-email", Password: "password1", FirstName: "A", LastName: "B"}},
		{name: "short password", req: dto.RegisterParentRequest{Email: "a@b.co", Password: "short", FirstName: "A", LastName: "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RegisterParent(tc.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
