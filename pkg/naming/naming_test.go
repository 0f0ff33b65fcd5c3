package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/tidy/pkg/testutil"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantBase string
		wantExt  string
	}{
		{"simple", "report.pdf", "report", ".pdf"},
		{"multi-dot splits final only", "archive.tar.gz", "archive.tar", ".gz"},
		{"no extension", "notes", "notes", ""},
		{"leading dot only", ".bashrc", ".bashrc", ""},
		{"hidden with extension", ".config.yaml", ".config", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := SplitName(tt.filename)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Mkdir("/dst/docs")

	// Free on disk and unreserved: returned unchanged
	got := Resolve(env.FS, "/dst/docs", "report.pdf", nil)
	assert.Equal(t, "/dst/docs/report.pdf", got)
}

func TestResolveDiskCollision(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/dst/docs/report.pdf", "existing")

	got := Resolve(env.FS, "/dst/docs", "report.pdf", nil)
	assert.Equal(t, "/dst/docs/report (2).pdf", got)
}

func TestResolveCountsPastTakenCandidates(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/dst/docs/report.pdf", "1")
	env.WriteFile("/dst/docs/report (2).pdf", "2")
	env.WriteFile("/dst/docs/report (3).pdf", "3")

	got := Resolve(env.FS, "/dst/docs", "report.pdf", nil)
	assert.Equal(t, "/dst/docs/report (4).pdf", got)
}

func TestResolveReservedCollision(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Mkdir("/dst/docs")

	reserved := map[string]struct{}{
		"/dst/docs/report.pdf": {},
	}
	got := Resolve(env.FS, "/dst/docs", "report.pdf", reserved)
	assert.Equal(t, "/dst/docs/report (2).pdf", got)
}

func TestResolveMixedCollisions(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/dst/docs/report.pdf", "on disk")

	reserved := map[string]struct{}{
		"/dst/docs/report (2).pdf": {},
	}
	got := Resolve(env.FS, "/dst/docs", "report.pdf", reserved)
	assert.Equal(t, "/dst/docs/report (3).pdf", got)
}

func TestResolveMultiDotInsertsCounterBeforeFinalExtension(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/dst/archives/backup.tar.gz", "existing")

	got := Resolve(env.FS, "/dst/archives", "backup.tar.gz", nil)
	assert.Equal(t, "/dst/archives/backup.tar (2).gz", got)
}

func TestResolveIsDeterministic(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/dst/docs/report.pdf", "existing")

	first := Resolve(env.FS, "/dst/docs", "report.pdf", nil)
	second := Resolve(env.FS, "/dst/docs", "report.pdf", nil)
	assert.Equal(t, first, second)
}
