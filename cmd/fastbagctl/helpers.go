package main

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/logger"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/session"
	"github.com/codeedexprojects/fastbag-admin-sub001/pkg/config"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

// currentSession resolves the session for an authenticated command. Missing
// or expired tokens fail with a hint to run login, the CLI analog of
// redirecting an unauthenticated user to the login screen.
func currentSession(cmd *cobra.Command) (*session.Session, error) {
	cfg, prof, err := config.ActiveProfile(cmd)
	if err != nil {
		return nil, err
	}
	p := cfg.Profiles[prof]

	resolved, err := config.Resolve(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: run `fastbagctl login`", session.ErrNotLoggedIn)
	}
	p.APIURL = resolved.APIURL
	p.AccessToken = resolved.Token

	s, err := session.FromProfile(p)
	if err != nil {
		if errors.Is(err, session.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: run `fastbagctl login`", err)
		}
		return nil, err
	}
	logger.L.Debug("session resolved", "profile", prof, "api", s.APIURL, "role", s.Permissions.Role)
	return s, nil
}

// newService builds the API service for an authenticated command.
func newService(cmd *cobra.Command) (*sdk.Service, *session.Session, error) {
	s, err := currentSession(cmd)
	if err != nil {
		return nil, nil, err
	}
	return sdk.New(sdk.ServiceConfig{BaseURL: s.APIURL, Token: s.AccessToken}), s, nil
}

func prompt(label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	var s string
	if _, err := fmt.Scanln(&s); err != nil {
		return def
	}
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func promptSecret(label string) string {
	fmt.Printf("%s: ", label)
	b, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return strings.TrimSpace(string(b))
}

// confirm asks for an explicit yes before a destructive operation.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	var s string
	if _, err := fmt.Scanln(&s); err != nil {
		return false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}

// parseSetFlags turns repeated --set key=value flags into a patch map.
func parseSetFlags(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, errors.New("at least one --set key=value is required")
	}
	patch := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", p)
		}
		switch v {
		case "true":
			patch[k] = true
		case "false":
			patch[k] = false
		default:
			patch[k] = v
		}
	}
	return patch, nil
}

// parseFilterFlags turns repeated --filter key=value flags into a map.
func parseFilterFlags(pairs []string) (map[string]string, error) {
	filters := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --filter %q (want key=value)", p)
		}
		filters[k] = v
	}
	return filters, nil
}
