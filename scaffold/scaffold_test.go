package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/yaml"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	var out bytes.Buffer

	if err := Write(dir, Data{Name: "Ada Lovelace", URL: "https://ada.example.com"}, &out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "folio.yml"))
	if err != nil {
		t.Fatalf("read folio.yml: %v", err)
	}
	if !strings.Contains(string(cfg), `name: "Ada Lovelace"`) {
		t.Errorf("folio.yml missing name:\n%s", cfg)
	}
	if !strings.Contains(string(cfg), `url: "https://ada.example.com"`) {
		t.Errorf("folio.yml missing url:\n%s", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "README.md")); err != nil {
		t.Errorf("public/README.md not created: %v", err)
	}
	if !strings.Contains(out.String(), "folio.yml") {
		t.Errorf("output did not report folio.yml: %q", out.String())
	}
}

func TestWriteRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "folio.yml"), []byte("name: keep\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Write(dir, Data{Name: "X"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error when folio.yml exists")
	}
	got, _ := os.ReadFile(filepath.Join(dir, "folio.yml"))
	if string(got) != "name: keep\n" {
		t.Fatalf("existing file was modified: %q", got)
	}
}

func TestWriteQuotesValues(t *testing.T) {
	dir := t.TempDir()
	data := Data{Name: `Ada "Countess" \ Lovelace: #1`, URL: "https://ada.example.com/?a=1&b=\"2\""}
	if err := Write(dir, data, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "folio.yml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := yaml.Parser().Unmarshal(raw)
	if err != nil {
		t.Fatalf("generated folio.yml does not parse: %v\n%s", err, raw)
	}
	if cfg["name"] != data.Name {
		t.Errorf("name = %q, want %q", cfg["name"], data.Name)
	}
	if cfg["url"] != data.URL {
		t.Errorf("url = %q, want %q", cfg["url"], data.URL)
	}
	if cfg["description"] != data.Name+"'s portfolio" {
		t.Errorf("description = %q", cfg["description"])
	}
}
