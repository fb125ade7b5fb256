package seed

import (
	"errors"
	"testing"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

func TestBuildCatalogDefaultConfig(t *testing.T) {
	config := DefaultPermissionConfig()
	perms, err := BuildCatalog(config)
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}

	if len(perms) != len(config) {
		t.Fatalf("catalog size %d, want %d (one permission per config entry)", len(perms), len(config))
	}

	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		if seen[p.ID] {
			t.Fatalf("duplicate permission id %q", p.ID)
		}
		seen[p.ID] = true
		if !model.ValidAction(p.Action) {
			t.Fatalf("permission %q carries invalid action %q", p.ID, p.Action)
		}
	}
}

func TestBuildCatalogIsDeterministic(t *testing.T) {
	first, err := BuildCatalog(DefaultPermissionConfig())
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := BuildCatalog(DefaultPermissionConfig())
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("catalog sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between builds: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildCatalogSplitsOnFirstColon(t *testing.T) {
	perms, err := BuildCatalog([]CatalogEntry{{Key: "odd", Capability: "audit:log:read"}})
	if err == nil {
		// "log:read" is not a valid action, so this must fail
		t.Fatalf("expected ConfigError, got %+v", perms)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestBuildCatalogRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name       string
		capability string
	}{
		{name: "missing separator", capability: "supplierread"},
		{name: "unknown action", capability: "supplier:destroy"},
		{name: "empty action", capability: "supplier:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildCatalog([]CatalogEntry{{Key: "bad", Capability: tc.capability}})
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("capability %q: expected *ConfigError, got %v", tc.capability, err)
			}
			if cfgErr.Key != "bad" {
				t.Fatalf("ConfigError should name the offending key, got %q", cfgErr.Key)
			}
		})
	}
}

func TestBuildCatalogDerivesIDsFromKeys(t *testing.T) {
	perms, err := BuildCatalog([]CatalogEntry{{Key: "supplier_read", Capability: "supplier:read"}})
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	if perms[0].ID != "perm_supplier_read" {
		t.Fatalf("id %q, want perm_supplier_read", perms[0].ID)
	}
	if perms[0].Resource != "supplier" || perms[0].Action != model.ActionRead {
		t.Fatalf("unexpected split: %+v", perms[0])
	}
}
