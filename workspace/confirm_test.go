package workspace

import (
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func pipeStdio(t *testing.T, input string) *terminal.Stdio {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	if _, err := w.WriteString(input); err != nil {
		t.Fatal(err)
	}
	w.Close()

	out, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { out.Close() })
	return &terminal.Stdio{In: r, Out: out, Err: out}
}

func TestSurveyConfirmerAcceptsOnlyY(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Y\n", true},
		{"y\n", true},
		{" y \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"x\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		c := SurveyConfirmer{Stdio: pipeStdio(t, tt.input)}
		got, err := c.Confirm("Completed. Continue with clean up?")
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSurveyConfirmerEmptyUsesDefault(t *testing.T) {
	c := SurveyConfirmer{Default: true, Stdio: pipeStdio(t, "\n")}
	got, err := c.Confirm("clean up?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !got {
		t.Error("empty answer with Default should confirm")
	}
}
