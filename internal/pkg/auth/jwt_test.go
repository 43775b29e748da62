package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/pkg/auth"
)

func testService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "tutorhub.test",
	})
}

func testAccount() *models.Account {
	account := &models.Account{
		Email: "tutor@example.com",
		Role:  models.RoleTutor,
	}
	account.ID = "account-1"
	return account
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(testAccount())
	if err != nil {
		t.Fatal(err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expiresIn: %d", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.AccountID != "account-1" {
		t.Fatalf("accountId: %s", claims.AccountID)
	}
	if claims.Email != "tutor@example.com" {
		t.Fatalf("email: %s", claims.Email)
	}
	if claims.RoleType != string(models.RoleTutor) {
		t.Fatalf("roleType: %s", claims.RoleType)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateToken(testAccount())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, auth.ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := testService(time.Hour)
	verifier := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "tutorhub.test",
	})

	token, _, err := issuer.GenerateToken(testAccount())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.ValidateAndExtractClaims(token); err == nil {
		t.Fatal("token with foreign signature accepted")
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := auth.ExtractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if !auth.CheckPassword(hash, "hunter22") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "hunter23") {
		t.Fatal("wrong password accepted")
	}
}
