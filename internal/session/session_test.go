package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codeedexprojects/fastbag-admin-sub001/pkg/config"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: "subadmin",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestFromProfile(t *testing.T) {
	p := config.Profile{
		APIURL:      "http://api",
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
		UserID:      "7",
		Role:        "subadmin",
		Sections:    []string{"orders", "customers"},
	}
	s, err := FromProfile(p)
	if err != nil {
		t.Fatalf("from profile: %v", err)
	}
	if !s.Permissions.Allows("orders") || s.Permissions.Allows("coupons") {
		t.Fatalf("permissions %+v", s.Permissions)
	}
}

func TestFromProfileNotLoggedIn(t *testing.T) {
	if _, err := FromProfile(config.Profile{APIURL: "http://api"}); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v", err)
	}
}

func TestFromProfileExpired(t *testing.T) {
	p := config.Profile{
		APIURL:      "http://api",
		AccessToken: signedToken(t, time.Now().Add(-time.Minute)),
	}
	if _, err := FromProfile(p); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v", err)
	}
}

func TestParsePermissionsFailClosed(t *testing.T) {
	for _, role := range []string{"", "superuser", "ADMIN "} {
		ps := ParsePermissions(role, []string{"orders"})
		if ps.Allows("orders") {
			t.Fatalf("role %q not fail closed", role)
		}
	}
	if !ParsePermissions("admin", nil).Allows("anything") {
		t.Fatal("admin should see every section")
	}
}

func TestTokenClaims(t *testing.T) {
	tok := signedToken(t, time.Now().Add(time.Hour))
	claims, err := TokenClaims(tok)
	if err != nil {
		t.Fatalf("claims: %v", err)
	}
	if claims.Subject != "7" || claims.Role != "subadmin" {
		t.Fatalf("claims %+v", claims)
	}
	if _, err := TokenClaims("not-a-token"); err == nil {
		t.Fatal("expected decode error")
	}
}
