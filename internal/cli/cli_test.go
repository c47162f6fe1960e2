package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvillar/dqfile/registry"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validAnswers = `
first_name: Dana
last_name: Reyes
date_of_birth: 04/17/1988
ssn: 123-45-6789
phone: 214-555-0100
position: Class A Driver
application_date: 03/02/2026
addr1:
  street: 12 Elm St
  city: Dallas
  state: TX
  zip: "75201"
emp1:
  name: Acme Freight
  from: 01/2020
lic1:
  state: TX
  number: "12345678"
  class: A
  expiration: 04/17/2029
applicant_cert:
  printed_name: Dana Reyes
  signature: Dana Reyes
  date: 03/02/2026
`

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-03-02")
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("version output = %q", out)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "validate", "--answers", writeFile(t, dir, "ok.yaml", validAnswers))
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "answers are valid") {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "validate", "--answers", writeFile(t, dir, "bad.yaml", "first_name: Dana\nssn: 12\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("validate error = %v, want ErrInvalid", err)
	}
	for _, want := range []string{"missing: Last Name", "invalid: Social Security Number"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestFields(t *testing.T) {
	out, err := run(t, "fields", "--page", "9", "--json")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	var defs []registry.FieldDefinition
	if err := json.Unmarshal([]byte(out), &defs); err != nil {
		t.Fatalf("decoding: %v\n%s", err, out)
	}
	if len(defs) != len(registry.FieldsForPage(9)) {
		t.Errorf("got %d definitions, want %d", len(defs), len(registry.FieldsForPage(9)))
	}

	out, err = run(t, "fields", "--required")
	if err != nil {
		t.Fatalf("fields --required: %v", err)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines != len(registry.Required()) {
		t.Errorf("listed %d rows, want %d", lines, len(registry.Required()))
	}
}

func TestExtractList(t *testing.T) {
	out, err := run(t, "extract")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(out, "authorizations") || !strings.Contains(out, "pages 12-15") {
		t.Errorf("section list = %q", out)
	}
}

func TestApplicationWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PDF workflow in short mode")
	}
	dir := t.TempDir()
	answersPath := writeFile(t, dir, "answers.yaml", validAnswers)
	configPath := writeFile(t, dir, "dqfile.toml", "[company]\nname = \"Acme Freight\"\n\n[output]\ncontrol_prefix = \"ACME-\"\n")
	app := filepath.Join(dir, "app.pdf")

	if out, err := run(t, "generate", "--answers", answersPath, "--config", configPath, "--out", app, "--strict"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	out, err := run(t, "inspect", app)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "25 pages") || !strings.Contains(out, "inquiries") {
		t.Errorf("inspect output = %q", out)
	}

	fillPath := writeFile(t, dir, "fill.yaml", "hire_terminal: Dallas\nhire_decision_hired: true\n")
	filled := filepath.Join(dir, "filled.pdf")
	if out, err := run(t, "fill", app, "--answers", fillPath, "--out", filled); err != nil {
		t.Fatalf("fill: %v\n%s", err, out)
	}

	out, err = run(t, "signatures", filled, "--json")
	if err != nil {
		t.Fatalf("signatures: %v", err)
	}
	if !strings.Contains(out, `"name": "applicant_cert_signature"`) || !strings.Contains(out, `"signer": "Dana Reyes"`) {
		t.Errorf("signatures output lacks the applicant signature:\n%s", out)
	}

	flat := filepath.Join(dir, "flat.pdf")
	if out, err := run(t, "flatten", filled, "--out", flat); err != nil {
		t.Fatalf("flatten: %v\n%s", err, out)
	}

	section := filepath.Join(dir, "auth.pdf")
	if out, err := run(t, "extract", flat, "--section", "authorizations", "--out", section); err != nil {
		t.Fatalf("extract: %v\n%s", err, out)
	}
	if _, err := os.Stat(section); err != nil {
		t.Errorf("extract wrote nothing: %v", err)
	}

	merged := filepath.Join(dir, "dq.pdf")
	if out, err := run(t, "merge", flat, section, "--out", merged); err != nil {
		t.Fatalf("merge: %v\n%s", err, out)
	}
}

func TestExtractUnknownSection(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "extract", filepath.Join(dir, "x.pdf"), "--section", "nope"); err == nil {
		t.Error("unknown section accepted")
	}
}

func TestMirrorAndGuide(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "mirror", "--page", "2")
	if err != nil {
		t.Fatalf("mirror: %v", err)
	}
	if !strings.Contains(out, `id="first_name"`) {
		t.Errorf("mirror output lacks first_name")
	}

	png := filepath.Join(dir, "guide.png")
	if _, err := run(t, "guide", "--page", "2", "--scale", "1", "--out", png); err != nil {
		t.Fatalf("guide: %v", err)
	}
	data, err := os.ReadFile(png)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("guide did not write a PNG")
	}
}
