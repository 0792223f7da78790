package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Resolved is the effective connection configuration for one command
// invocation after merging flags, environment and the active profile.
type Resolved struct {
	APIURL  string
	Token   string
	Profile string
}

func Resolve(cmd *cobra.Command) (Resolved, error) {
	flagURL, _ := cmd.Root().PersistentFlags().GetString("api-url")
	flagToken, _ := cmd.Root().PersistentFlags().GetString("token")

	envURL := os.Getenv("FASTBAG_API_URL")
	envToken := os.Getenv("FASTBAG_TOKEN")

	cfg, err := Load()
	if err != nil {
		cfg = &File{Profiles: map[string]Profile{}}
	}
	prof := cfg.Active
	if p, _ := cmd.Root().PersistentFlags().GetString("profile"); p != "" {
		prof = p
	}
	cp := cfg.Profiles[prof]

	url := firstNonEmpty(flagURL, envURL, cp.APIURL)
	tok := firstNonEmpty(flagToken, envToken, cp.AccessToken)
	if url == "" {
		return Resolved{}, fmt.Errorf("API URL not set (flag/env/config)")
	}
	if tok == "" {
		return Resolved{}, fmt.Errorf("token not set (flag/env/config)")
	}

	return Resolved{
		APIURL:  url,
		Token:   tok,
		Profile: prof,
	}, nil
}

// ActiveProfile returns the profile a command should operate on, honoring the
// --profile flag, without requiring a token to be present yet.
func ActiveProfile(cmd *cobra.Command) (*File, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}
	prof := cfg.Active
	if p, _ := cmd.Root().PersistentFlags().GetString("profile"); p != "" {
		prof = p
	}
	return cfg, prof, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
