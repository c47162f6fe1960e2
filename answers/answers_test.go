package answers_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/dqfile/answers"
)

func TestParseFlattensNestedKeys(t *testing.T) {
	a, err := answers.Parse([]byte(`
first_name: Dana
last_name: Reyes
acc_none: true
emp1:
  name: Acme Freight
  phone: "555-201-3344"
  fmcsr: yes
addr1:
  zip: "75001"
cmv_years: 7
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"acc_none", "addr1_zip", "cmv_years", "emp1_fmcsr", "emp1_name", "emp1_phone", "first_name", "last_name"}
	if diff := cmp.Diff(want, a.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if got := a.Text("emp1_name"); got != "Acme Freight" {
		t.Errorf("emp1_name = %q", got)
	}
	if got := a.Text("cmv_years"); got != "7" {
		t.Errorf("cmv_years = %q, want 7", got)
	}
	if !a.Bool("acc_none") || !a.Bool("emp1_fmcsr") {
		t.Error("boolean answers did not read as checked")
	}
}

func TestParseJSON(t *testing.T) {
	a, err := answers.Parse([]byte(`{"first_name": "Dana", "lic1": {"state": "TX"}, "age_21_yes": true}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Text("lic1_state") != "TX" || !a.Bool("age_21_yes") {
		t.Errorf("unexpected answers: %v", a)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"list":      "emp:\n  - name: Acme\n",
		"duplicate": "emp1_name: A\nemp1:\n  name: B\n",
		"syntax":    "first_name: [unclosed\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := answers.Parse([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte("first_name: Dana\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := answers.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Text("first_name") != "Dana" {
		t.Errorf("first_name = %q", a.Text("first_name"))
	}
	if _, err := answers.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestTextAndBool(t *testing.T) {
	a := answers.FromMap(map[string]any{
		"s":     "hello",
		"t":     true,
		"f":     false,
		"n":     42,
		"x":     3.5,
		"yes":   " Yes ",
		"check": "x",
		"no":    "no",
	})
	for k, want := range map[string]string{"s": "hello", "t": "Yes", "f": "", "n": "42", "x": "3.5", "missing": ""} {
		if got := a.Text(k); got != want {
			t.Errorf("Text(%q) = %q, want %q", k, got, want)
		}
	}
	for k, want := range map[string]bool{"t": true, "f": false, "n": true, "yes": true, "check": true, "no": false, "s": false, "missing": false} {
		if got := a.Bool(k); got != want {
			t.Errorf("Bool(%q) = %v, want %v", k, got, want)
		}
	}
	if a.Has("f") || !a.Has("s") {
		t.Error("Has reports the wrong state")
	}
}

func TestStrings(t *testing.T) {
	a := answers.FromMap(map[string]any{"acc_none": true, "viol_none": false, "first_name": "Dana", "cmv_years": 7})
	want := map[string]string{"acc_none": "Yes", "viol_none": "Off", "first_name": "Dana", "cmv_years": "7"}
	if diff := cmp.Diff(want, a.Strings()); diff != "" {
		t.Errorf("Strings mismatch (-want +got):\n%s", diff)
	}
}

func TestUnused(t *testing.T) {
	a := answers.FromMap(map[string]any{"emp1_name": "A", "emp9_name": "B", "bogus": "C"})
	got := a.Unused([]string{"emp1_name", "emp2_name"})
	if diff := cmp.Diff([]string{"bogus", "emp9_name"}, got); diff != "" {
		t.Errorf("Unused mismatch (-want +got):\n%s", diff)
	}
}

func TestKeys(t *testing.T) {
	if got := answers.Slot("emp", 3, "name"); got != "emp3_name" {
		t.Errorf("Slot = %q", got)
	}
	if got := answers.TractorSemi.Key("miles"); got != "exp_tractor_semi_miles" {
		t.Errorf("Key = %q", got)
	}
	for _, e := range answers.AllEquipment() {
		if e.Label() == "" || e.Label() == string(e) {
			t.Errorf("%s has no label", e)
		}
		if !strings.HasPrefix(e.Key("driven"), "exp_") {
			t.Errorf("%s key = %q", e, e.Key("driven"))
		}
	}
}
