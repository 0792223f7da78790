// Package nav declares the back-office section universe and filters it by
// the signed-in principal's permissions.
package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/session"
)

// Item is one sub-entry under a section.
type Item struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Section is one named entry in the navigation universe.
type Section struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Items []Item `yaml:"items,omitempty"`
}

// Universe returns the full ordered section list. Deployments can override
// it with a YAML manifest (LoadManifest); this is the built-in default.
func Universe() []Section {
	return []Section{
		{Key: "dashboard", Label: "Dashboard"},
		{Key: "categories", Label: "Categories", Items: []Item{
			{Key: "categories", Label: "Categories"},
			{Key: "subcategories", Label: "Subcategories"},
		}},
		{Key: "products", Label: "Products", Items: []Item{
			{Key: "grocery", Label: "Grocery"},
			{Key: "food", Label: "Food"},
			{Key: "fashion", Label: "Fashion"},
			{Key: "colors", Label: "Colors"},
		}},
		{Key: "vendors", Label: "Vendors"},
		{Key: "stores", Label: "Stores"},
		{Key: "orders", Label: "Orders"},
		{Key: "bigbuy", Label: "Big Buy Orders"},
		{Key: "coupons", Label: "Coupons"},
		{Key: "carousel", Label: "Carousel Ads"},
		{Key: "subadmins", Label: "Sub Admins"},
		{Key: "customers", Label: "Customers"},
		{Key: "delivery", Label: "Delivery Staff"},
		{Key: "notifications", Label: "Notifications"},
	}
}

type manifest struct {
	Sections []Section `yaml:"sections"`
}

// LoadManifest parses a YAML section manifest. Sections without a key are
// rejected so a broken manifest cannot produce unreachable entries.
func LoadManifest(b []byte) ([]Section, error) {
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse nav manifest: %w", err)
	}
	if len(m.Sections) == 0 {
		return nil, fmt.Errorf("nav manifest declares no sections")
	}
	for i, s := range m.Sections {
		if s.Key == "" {
			return nil, fmt.Errorf("nav manifest section %d has no key", i)
		}
	}
	return m.Sections, nil
}

// Visible returns the subset of universe the principal may see, in declared
// order. Admin sees everything; a sub-admin sees only its allowed section
// keys. Sub-items are never filtered independently: a visible parent shows
// all of them. Sections the principal cannot see are omitted entirely.
func Visible(universe []Section, ps session.PermissionSet) []Section {
	if ps.Role == session.RoleAdmin {
		out := make([]Section, len(universe))
		copy(out, universe)
		return out
	}
	var out []Section
	for _, s := range universe {
		if ps.Allows(s.Key) {
			out = append(out, s)
		}
	}
	return out
}
