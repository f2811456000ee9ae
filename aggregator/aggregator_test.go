package aggregator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/xishang0128/xliff-dumper/config"
	"github.com/xishang0128/xliff-dumper/xliff"
)

type unit struct{ id, source, target string }

func xlf(lang string, units ...unit) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="utf-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
  <file datatype="xml" source-language="en-US" target-language="%s" original="Base Application">
    <body>
      <group id="body">
`, lang)
	for _, u := range units {
		target := "<target/>"
		if u.target != "" {
			target = "<target>" + u.target + "</target>"
		}
		fmt.Fprintf(&b, `        <trans-unit id="%s"><source>%s</source>%s</trans-unit>
`, u.id, u.source, target)
	}
	b.WriteString("      </group>\n    </body>\n  </file>\n</xliff>\n")
	return b.String()
}

func newTestAggregator(t *testing.T) (*Aggregator, *test.Hook) {
	t.Helper()
	cfg := config.Default()
	p, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	logger, hook := test.NewNullLogger()
	return New(p, cfg.KnownLanguages, WithLogger(logger)), hook
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestAggregateCaptionUnit(t *testing.T) {
	a, _ := newTestAggregator(t)
	general, caption := a.Aggregate([]xliff.Unit{
		{ID: "Table 17 - Field 5 - Property 2879900210", Source: "Customer", Target: "Kunde"},
		{ID: "Table 17 - Field 5 - Property 1295455071", Source: "Specifies the customer.", Target: "Angiver debitoren."},
	})

	if v, _ := general.Get("Customer"); !reflect.DeepEqual(v, []string{"Kunde"}) {
		t.Errorf("general[Customer] = %v", v)
	}
	if caption.Len() != 1 {
		t.Fatalf("caption mapping has %d keys, want 1", caption.Len())
	}
	if v, _ := caption.Get("Table 17 - Field 5 - Property 2879900210"); !reflect.DeepEqual(v, []string{"Kunde"}) {
		t.Errorf("caption[id] = %v", v)
	}

	merged := Merge(general, caption)
	want := []string{"Customer", "Specifies the customer.", "Table 17 - Field 5 - Property 2879900210"}
	if !reflect.DeepEqual(merged.Keys(), want) {
		t.Errorf("merged keys = %v, want %v", merged.Keys(), want)
	}
}

func TestAggregateCaptionEmptyTarget(t *testing.T) {
	a, _ := newTestAggregator(t)
	_, caption := a.Aggregate([]xliff.Unit{
		{ID: "Table 1 - Field 1 - Property 2879900210", Source: "No.", Target: ""},
	})
	if caption.Len() != 0 {
		t.Fatalf("caption mapping should skip empty targets, got %v", caption.Keys())
	}
}

func TestProcessDir(t *testing.T) {
	a, hook := newTestAggregator(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "Base Application.da-DK.xlf"), xlf("da-DK",
		unit{"Page 1 - Action 1 - Property 2879900210", "Save", "Gem"},
		unit{"Page 2 - Action 1 - Property 2879900210", "Save", "Gem"},
		unit{"Table 17 - Field 5 - Property 2879900210", "Customer", "Kunde"},
		unit{"Codeunit 1 - NamedType 1", "Nothing here", ""},
		unit{"Codeunit 1 - NamedType 2", "Æble &amp; pære", "Æble &amp; pære"},
	))
	writeFile(t, filepath.Join(dir, "Base Application.nb-NO.xlf"), xlf("nb-NO",
		unit{"Page 1 - Action 1 - Property 2879900210", "Save", "Lagre"},
		unit{"Page 2 - Action 1 - Property 2879900210", "Save", "Lagre"},
	))
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a localization file")

	outputs, err := a.ProcessDir(dir)
	if err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("got %d outputs, want 2", len(outputs))
	}
	if outputs[0].Language != "da-DK" || outputs[1].Language != "nb-NO" {
		t.Fatalf("outputs not in filename order: %+v", outputs)
	}
	if !outputs[0].Known || outputs[0].Path != filepath.Join(dir, "da-dk.json") {
		t.Fatalf("unexpected output: %+v", outputs[0])
	}

	da, err := os.ReadFile(filepath.Join(dir, "da-dk.json"))
	if err != nil {
		t.Fatalf("read da-dk.json: %v", err)
	}
	wantDA := `{"Save": ["Gem"], "Customer": ["Kunde"], "Æble & pære": ["Æble & pære"], "Table 17 - Field 5 - Property 2879900210": ["Kunde"]}`
	if string(da) != wantDA {
		t.Fatalf("da-dk.json = %s\nwant %s", da, wantDA)
	}

	nb, err := os.ReadFile(filepath.Join(dir, "nb-no.json"))
	if err != nil {
		t.Fatalf("read nb-no.json: %v", err)
	}
	if string(nb) != `{"Save": ["Lagre"]}` {
		t.Fatalf("nb-no.json = %s", nb)
	}

	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel {
			t.Errorf("unexpected warning for known languages: %s", e.Message)
		}
	}
}

func TestProcessDirIsDeterministic(t *testing.T) {
	a, _ := newTestAggregator(t)
	dir := t.TempDir()
	var units []unit
	for i := 0; i < 50; i++ {
		units = append(units, unit{fmt.Sprintf("Table %d - Field %d - Property 2879900210", i, i), fmt.Sprintf("Source %d", i%7), fmt.Sprintf("Target %d", i)})
	}
	writeFile(t, filepath.Join(dir, "Base Application.sv-SE.xlf"), xlf("sv-SE", units...))

	if _, err := a.ProcessDir(dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := os.ReadFile(filepath.Join(dir, "sv-se.json"))
	if _, err := a.ProcessDir(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := os.ReadFile(filepath.Join(dir, "sv-se.json"))
	if !bytes.Equal(first, second) {
		t.Fatal("output differs between runs")
	}
}

func TestProcessDirUnknownLanguage(t *testing.T) {
	a, hook := newTestAggregator(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Base Application.xx-YY.xlf"), xlf("xx-YY",
		unit{"Page 1 - Control 1", "Hello", "Hej"},
	))

	outputs, err := a.ProcessDir(dir)
	if err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}
	if len(outputs) != 1 || outputs[0].Known {
		t.Fatalf("outputs = %+v", outputs)
	}
	if _, err := os.Stat(filepath.Join(dir, "xx-yy.json")); err != nil {
		t.Fatalf("xx-yy.json not written: %v", err)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel && e.Data["language"] == "xx-YY" {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected an advisory warning for xx-YY")
	}
}

func TestProcessDirEmpty(t *testing.T) {
	a, _ := newTestAggregator(t)
	outputs, err := a.ProcessDir(t.TempDir())
	if err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}
	if len(outputs) != 0 {
		t.Fatalf("outputs = %+v", outputs)
	}
}

func TestProcessDirMalformedAborts(t *testing.T) {
	a, _ := newTestAggregator(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Base Application.da-DK.xlf"), "<xliff><file>")
	writeFile(t, filepath.Join(dir, "Base Application.nb-NO.xlf"), xlf("nb-NO", unit{"a", "Save", "Lagre"}))

	_, err := a.ProcessDir(dir)
	var pe *xliff.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *xliff.ParseError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nb-no.json")); !os.IsNotExist(err) {
		t.Fatal("files after a malformed one must not be processed")
	}
}
