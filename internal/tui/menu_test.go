package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/donghojung/mru/internal/mru"
)

func paths(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/x/%02d", i)
	}
	return out
}

func TestNewMenu_CapsItems(t *testing.T) {
	m := NewMenu(paths(12))
	if len(m.Items()) != 9 {
		t.Errorf("len(Items()) = %d, want 9", len(m.Items()))
	}
	if !m.More() {
		t.Error("More() = false, want true")
	}

	m = NewMenu(paths(3))
	if len(m.Items()) != 3 || m.More() {
		t.Errorf("Items()=%d More()=%v, want 3 false", len(m.Items()), m.More())
	}
}

func TestMenuFeed(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		wantState MenuState
		wantPath  string
		wantErr   bool
	}{
		{"valid choice", []string{"2"}, MenuValidated, "/x/01", false},
		{"whitespace trimmed", []string{"  3 \n"}, MenuValidated, "/x/02", false},
		{"quit", []string{"q"}, MenuQuit, "", false},
		{"quit word any case", []string{"QUIT"}, MenuQuit, "", false},
		{"zero rejected", []string{"0"}, MenuPrompting, "", true},
		{"out of range rejected", []string{"4"}, MenuPrompting, "", true},
		{"text rejected", []string{"abc"}, MenuPrompting, "", true},
		{"empty rejected", []string{""}, MenuPrompting, "", true},
		{"re-prompt then valid", []string{"x", "9", "1"}, MenuValidated, "/x/00", false},
		{"terminal state ignores input", []string{"1", "q", "2"}, MenuValidated, "/x/00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenu(paths(3))
			for _, in := range tt.inputs {
				m.Feed(in)
			}

			if m.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", m.State(), tt.wantState)
			}
			path, ok := m.Selected()
			if path != tt.wantPath || ok != (tt.wantPath != "") {
				t.Errorf("Selected() = %q, %v, want %q", path, ok, tt.wantPath)
			}
			if (m.Err() != nil) != tt.wantErr {
				t.Errorf("Err() = %v, wantErr %v", m.Err(), tt.wantErr)
			}
			if tt.wantErr && !errors.Is(m.Err(), mru.ErrInvalidArgument) {
				t.Errorf("Err() = %v, want invalid argument", m.Err())
			}
		})
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenu(paths(2))
	if m.Select(-1) || m.Select(2) {
		t.Error("Select() accepted an out-of-range index")
	}
	if !m.Select(1) {
		t.Fatal("Select(1) = false")
	}
	if m.Select(0) {
		t.Error("Select() accepted input after validation")
	}
	if p, _ := m.Selected(); p != "/x/01" {
		t.Errorf("Selected() = %q", p)
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteList(&buf, []string{"/a", "/b"}, true); err != nil {
		t.Fatalf("WriteList() error = %v", err)
	}
	want := "1) /a\n2) /b\n...\n"
	if buf.String() != want {
		t.Errorf("WriteList() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	_ = WriteList(&buf, []string{"/a"}, false)
	if buf.String() != "1) /a\n" {
		t.Errorf("WriteList() = %q", buf.String())
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
		wantOK   bool
		wantOut  []string
	}{
		{
			name:     "direct choice",
			input:    "2\n",
			wantPath: "/x/01",
			wantOK:   true,
			wantOut:  []string{"1) /x/00", "2) /x/01", "Select [1-3, q]: "},
		},
		{
			name:     "invalid then valid",
			input:    "7\n3\n",
			wantPath: "/x/02",
			wantOK:   true,
			wantOut:  []string{"invalid choice \"7\""},
		},
		{
			name:    "quit",
			input:   "q\n",
			wantOK:  false,
			wantOut: []string{"3) /x/02"},
		},
		{
			name:   "end of input quits",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			path, ok, err := Prompt(strings.NewReader(tt.input), &out, NewMenu(paths(3)))
			if err != nil {
				t.Fatalf("Prompt() error = %v", err)
			}
			if path != tt.wantPath || ok != tt.wantOK {
				t.Errorf("Prompt() = %q, %v, want %q, %v", path, ok, tt.wantPath, tt.wantOK)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestPrompt_ShowsEllipsis(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Prompt(strings.NewReader("q\n"), &out, NewMenu(paths(10)))
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if !strings.Contains(out.String(), "9) /x/08\n...\n") {
		t.Errorf("output missing ellipsis:\n%s", out.String())
	}
	if strings.Contains(out.String(), "/x/09") {
		t.Errorf("output shows entry past the window:\n%s", out.String())
	}
}

func TestNewMenuMore_KeepsCallerOverflow(t *testing.T) {
	m := NewMenuMore(paths(9), true)
	if len(m.Items()) != 9 || !m.More() {
		t.Fatalf("NewMenuMore(9, true) = %d items, more %v", len(m.Items()), m.More())
	}

	var out bytes.Buffer
	if _, _, err := Prompt(strings.NewReader("q\n"), &out, m); err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if !strings.Contains(out.String(), "9) /x/08\n...\n") {
		t.Errorf("output missing ellipsis:\n%s", out.String())
	}

	if m := NewMenuMore(paths(3), false); m.More() {
		t.Error("NewMenuMore(3, false).More() = true")
	}
}
