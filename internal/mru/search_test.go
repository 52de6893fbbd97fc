package mru

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStore(t *testing.T, s *Store, lines ...string) {
	t.Helper()
	require.NoError(t, s.Ensure())
	require.NoError(t, os.WriteFile(s.Path(), []byte(strings.Join(lines, "\n")+"\n"), 0644))
}

func TestSmartCaseSensitive(t *testing.T) {
	tests := []struct {
		patterns []string
		want     bool
	}{
		{nil, false},
		{[]string{"report"}, false},
		{[]string{"Report"}, true},
		{[]string{"foo", "Bar"}, true},
		{[]string{"123", "_-."}, false},
		{[]string{"été"}, false},
		{[]string{"Été"}, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.patterns, ","), func(t *testing.T) {
			assert.Equal(t, tt.want, SmartCaseSensitive(tt.patterns))
		})
	}
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		entry    string
		want     bool
	}{
		{"lowercase matches any case", []string{"report"}, "/tmp/Report.txt", true},
		{"uppercase is case-sensitive", []string{"Report"}, "/tmp/Report.txt", true},
		{"uppercase rejects other case", []string{"Report"}, "/tmp/report.txt", false},
		{"ordered patterns", []string{"foo", "bar"}, "/a/foo_bar.txt", true},
		{"reversed order fails", []string{"bar", "foo"}, "/a/foo_bar.txt", false},
		{"adjacent patterns", []string{"foo", "_bar"}, "/a/foo_bar.txt", true},
		{"regex metacharacters are literal", []string{"a.b"}, "/x/aXb", false},
		{"literal dot", []string{"a.b"}, "/x/a.b", true},
		{"parentheses", []string{"(1)"}, "/x/copy (1).txt", true},
		{"empty pattern matches anything", []string{""}, "/x/y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMatcher(tt.patterns).Match(tt.entry))
		})
	}
}

func TestSearch_SmartCase(t *testing.T) {
	s := New(Config{Path: t.TempDir() + "/files"})
	writeStore(t, s, "/tmp/Report.txt", "/tmp/report.md")

	got, err := s.Search([]string{"report"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/Report.txt", "/tmp/report.md"}, got)

	got, err = s.Search([]string{"Report"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/Report.txt"}, got)
}

func TestSearch_MultiPatternOrder(t *testing.T) {
	s := New(Config{Path: t.TempDir() + "/files"})
	writeStore(t, s, "/a/foo_bar.txt")

	got, err := s.Search([]string{"foo", "bar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/foo_bar.txt"}, got)

	got, err = s.Search([]string{"bar", "foo"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_EmptyPatternsReturnsRecent(t *testing.T) {
	s := New(Config{Path: t.TempDir() + "/files"})
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("/x/%02d", i))
	}
	writeStore(t, s, lines...)

	got, err := s.Search(nil)
	require.NoError(t, err)
	assert.Equal(t, lines[:9], got)
}

func TestSearch_PreservesStoreOrderAndDoesNotMutate(t *testing.T) {
	s := New(Config{Path: t.TempDir() + "/files"})
	writeStore(t, s, "/z/notes.txt", "/a/other", "/m/notes.md")

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	got, err := s.Search([]string{"notes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/z/notes.txt", "/m/notes.md"}, got)

	// Restartable: a second scan sees the same data
	again, err := s.Search([]string{"notes"})
	require.NoError(t, err)
	assert.Equal(t, got, again)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSearch_MissingStore(t *testing.T) {
	s := New(Config{Path: t.TempDir() + "/files"})

	got, err := s.Search([]string{"x"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
