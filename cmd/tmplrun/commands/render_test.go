package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/config"
	"github.com/corvidrun/tmplengine/value"
)

func writeTemplateFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestLoadTreeSetParsesEveryTmplFile(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "home.tmpl", "hello {{.Name}}")
	writeTemplateFile(t, dir, "about.tmpl", "about page")
	writeTemplateFile(t, dir, "notes.txt", "ignored, wrong extension")

	cfg := config.Config{TemplateDir: dir}
	ts, err := LoadTreeSet(cfg)
	if err != nil {
		t.Fatalf("LoadTreeSet: %v", err)
	}
	if _, ok := ts.Lookup("home"); !ok {
		t.Error("expected home template to be registered")
	}
	if _, ok := ts.Lookup("about"); !ok {
		t.Error("expected about template to be registered")
	}
	if _, ok := ts.Lookup("notes"); ok {
		t.Error("notes.txt should not have been parsed as a template")
	}
}

func TestRenderWritesEngineOutput(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "home.tmpl", "hello {{.Name}}")

	cfg := config.Config{TemplateDir: dir, RootTemplate: "home"}
	dot := value.Object(map[string]value.Value{"Name": value.String("ada")})

	var buf bytes.Buffer
	if err := Render(&buf, cfg, nil, dot, RenderOptions{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.String() != "hello ada" {
		t.Errorf("Render output = %q, want %q", buf.String(), "hello ada")
	}
}

func TestRenderWithMinifyAndValidate(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "home.tmpl", "<div>\n  <p>hi {{.Name}}</p>\n</div>\n")

	cfg := config.Config{TemplateDir: dir, RootTemplate: "home"}
	dot := value.Object(map[string]value.Value{"Name": value.String("ada")})

	var buf bytes.Buffer
	err := Render(&buf, cfg, nil, dot, RenderOptions{Minify: true, Validate: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Render: empty output")
	}
}
