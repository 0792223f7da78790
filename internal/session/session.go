// Package session builds the immutable per-invocation session context from a
// stored profile: API endpoint, tokens and the principal's permission set.
// Everything downstream receives it explicitly; nothing reads ambient state.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codeedexprojects/fastbag-admin-sub001/pkg/config"
)

// Role is the principal kind encoded in the stored profile.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "subadmin"
)

// PermissionSet is the navigation permission snapshot for one principal.
// RoleAdmin implies the full section universe regardless of Sections.
type PermissionSet struct {
	Role     Role
	Sections map[string]bool
}

// Allows reports whether the principal may see the given section key.
func (p PermissionSet) Allows(key string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	if p.Role != RoleSubAdmin {
		return false
	}
	return p.Sections[key]
}

// Session is the resolved, immutable context for one command invocation.
type Session struct {
	APIURL       string
	AccessToken  string
	RefreshToken string
	UserID       string
	Permissions  PermissionSet
}

var (
	// ErrNotLoggedIn is returned when the profile holds no access token.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrTokenExpired is returned when the stored access token is past its
	// expiry claim.
	ErrTokenExpired = errors.New("session token expired")
)

// FromProfile builds a Session from a stored profile. A missing token or an
// expired one fails so the caller can route the user to login.
func FromProfile(p config.Profile) (*Session, error) {
	if p.AccessToken == "" {
		return nil, ErrNotLoggedIn
	}
	if exp, ok := tokenExpiry(p.AccessToken); ok && time.Now().After(exp) {
		return nil, ErrTokenExpired
	}
	return &Session{
		APIURL:       p.APIURL,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		UserID:       p.UserID,
		Permissions:  ParsePermissions(p.Role, p.Sections),
	}, nil
}

// ParsePermissions converts the stored role and section list into a
// PermissionSet. An unknown or empty role degrades to an empty visible set.
func ParsePermissions(role string, sections []string) PermissionSet {
	ps := PermissionSet{Sections: map[string]bool{}}
	switch Role(role) {
	case RoleAdmin:
		ps.Role = RoleAdmin
	case RoleSubAdmin:
		ps.Role = RoleSubAdmin
		for _, s := range sections {
			if s != "" {
				ps.Sections[s] = true
			}
		}
	}
	return ps
}

// Claims are the access-token claims this client reads. The client holds no
// signing key, so tokens are decoded without verification; the API remains
// the authority and rejects forged tokens with 401.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// TokenClaims decodes the claims of an access token.
func TokenClaims(tok string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &claims, nil
}

func tokenExpiry(tok string) (time.Time, bool) {
	claims, err := TokenClaims(tok)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
