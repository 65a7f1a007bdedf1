package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	if cfg.Web.Port != 1816 {
		t.Fatalf("default port = %d", cfg.Web.Port)
	}
	if cfg.Session.TTLHours != 24 {
		t.Fatalf("default TTL = %d", cfg.Session.TTLHours)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yml")
	doc := []byte("web:\n  port: 9090\ndata:\n  products_file: /tmp/p.json\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.Web.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Web.Port)
	}
	if cfg.Data.ProductsFile != "/tmp/p.json" {
		t.Fatalf("products file = %q", cfg.Data.ProductsFile)
	}
	// untouched keys keep their defaults
	if cfg.Web.Host != "0.0.0.0" {
		t.Fatalf("host = %q", cfg.Web.Host)
	}
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if cfg.Web.Port != 1816 || cfg.Web.Host != "0.0.0.0" {
		t.Fatalf("missing file changed defaults: %+v", cfg.Web)
	}
}

func TestEnvOverridesAndSecrets(t *testing.T) {
	t.Setenv("STOREFRONT_WEB_PORT", "7070")
	t.Setenv("STOREFRONT_ADMIN_USERNAME", "boss")
	t.Setenv("STOREFRONT_ADMIN_PASSWORD", "hunter2")

	cfg := LoadConfig("")
	if cfg.Web.Port != 7070 {
		t.Fatalf("port = %d, want 7070", cfg.Web.Port)
	}
	if cfg.Admin.Username != "boss" || cfg.Admin.Password != "hunter2" {
		t.Fatalf("admin = %+v", cfg.Admin)
	}
}

func TestAdminSecretsNeverComeFromYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yml")
	doc := []byte("admin:\n  username: sneaky\n  password: sneaky\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.Admin.Username != "" || cfg.Admin.Password != "" {
		t.Fatalf("yaml set admin secrets: %+v", cfg.Admin)
	}
}
