package constants

import "testing"

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		maxLen int
		want   string
	}{
		{
			name:   "fits",
			path:   "/tmp/a.txt",
			maxLen: 20,
			want:   "/tmp/a.txt",
		},
		{
			name:   "exact length",
			path:   "/tmp/a.txt",
			maxLen: 10,
			want:   "/tmp/a.txt",
		},
		{
			name:   "keeps tail",
			path:   "/home/user/projects/report.txt",
			maxLen: 13,
			want:   "...report.txt",
		},
		{
			name:   "smaller than ellipsis",
			path:   "/home/user/a.txt",
			maxLen: 2,
			want:   "xt",
		},
		{
			name:   "zero width",
			path:   "/tmp/a.txt",
			maxLen: 0,
			want:   "",
		},
		{
			name:   "multibyte",
			path:   "/tmp/한국어/파일.txt",
			maxLen: 9,
			want:   "...파일.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncatePath(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	if DefaultMaxEntries != 10000 {
		t.Errorf("DefaultMaxEntries = %d, want 10000", DefaultMaxEntries)
	}
	if PreviewEntries != 9 {
		t.Errorf("PreviewEntries = %d, want 9", PreviewEntries)
	}
}
