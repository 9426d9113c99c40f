package publish

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/exports"

var artifactName = regexp.MustCompile(`^([A-Za-z0-9_-]*)_[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.pptx$`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishWritesArtifact(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewPublisher(fs, testDir, discardLogger())

	res, err := p.Publish([]byte("pptx bytes"), "Q3 report: final!")
	require.NoError(t, err)

	m := artifactName.FindStringSubmatch(res.Filename)
	require.NotNil(t, m, "unexpected filename %q", res.Filename)
	assert.Equal(t, "Q3_report__final_", m[1])
	assert.Equal(t, res.Filename, res.Path)
	assert.Equal(t, MIMEType, res.Filetype)
	assert.Equal(t, "1 KB", res.Filesize)

	data, err := afero.ReadFile(fs, filepath.Join(testDir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, "pptx bytes", string(data))
}

func TestPublishEmptyBaseName(t *testing.T) {
	p := NewPublisher(afero.NewMemMapFs(), testDir, discardLogger())
	res, err := p.Publish([]byte("x"), "")
	require.NoError(t, err)
	m := artifactName.FindStringSubmatch(res.Filename)
	require.NotNil(t, m, "unexpected filename %q", res.Filename)
	assert.Empty(t, m[1])
	assert.True(t, strings.HasPrefix(res.Filename, "_"), res.Filename)
}

func TestPublishReusesExistingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "keep.txt"), []byte("keep"), 0o644))

	p := NewPublisher(fs, testDir, discardLogger())
	_, err := p.Publish([]byte("x"), "deck")
	require.NoError(t, err)

	entries, err := afero.ReadDir(fs, testDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPublishDirectoryError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	p := NewPublisher(fs, testDir, discardLogger())

	_, err := p.Publish([]byte("x"), "deck")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectory), err.Error())
}

func TestPublishWriteError(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll(testDir, 0o755))
	p := NewPublisher(afero.NewReadOnlyFs(base), testDir, discardLogger())

	_, err := p.Publish([]byte("x"), "deck")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite), err.Error())

	entries, err := afero.ReadDir(base, testDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{0, "1 KB"},
		{500, "1 KB"},
		{1024, "1 KB"},
		{1025, "1 KB"},
		{1700, "2 KB"},
		{10 * 1024, "10 KB"},
		{10*1024 + 400, "10 KB"},
		{1_048_000, "1023 KB"},
		{1024*1024 - 1, "1024 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024*1024 + 1024*1024/2, "1.50 MB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report", "report"},
		{"Q3 report.v2", "Q3_report_v2"},
		{"../../etc/passwd", "______etc_passwd"},
		{"naïve-résumé", "na_ve-r_sum_"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestSanitizeFilenameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	allowed := regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

	properties.Property("output only uses the allowed charset", prop.ForAll(
		func(s string) bool {
			return allowed.MatchString(SanitizeFilename(s))
		},
		gen.AnyString(),
	))

	properties.Property("sanitizing twice changes nothing", prop.ForAll(
		func(s string) bool {
			once := SanitizeFilename(s)
			return SanitizeFilename(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("one output rune per input rune", prop.ForAll(
		func(s string) bool {
			return len([]rune(SanitizeFilename(s))) == len([]rune(s))
		},
		gen.AnyString(),
	))

	properties.Property("identifiers pass through unchanged", prop.ForAll(
		func(s string) bool {
			return SanitizeFilename(s) == s
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

func TestPublishNamesAreUniqueProperty(t *testing.T) {
	p := NewPublisher(afero.NewMemMapFs(), testDir, discardLogger())
	properties := gopter.NewProperties(nil)

	properties.Property("same base name never collides", prop.ForAll(
		func(base string) bool {
			a, err := p.Publish([]byte("a"), base)
			if err != nil {
				return false
			}
			b, err := p.Publish([]byte("b"), base)
			if err != nil {
				return false
			}
			return a.Filename != b.Filename && artifactName.MatchString(a.Filename)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestFormatSizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("below one MB reports KB", prop.ForAll(
		func(n int) bool {
			return strings.HasSuffix(FormatSize(n), " KB")
		},
		gen.IntRange(0, 1024*1024-1),
	))

	properties.Property("KB value stays within half a KB of the size", prop.ForAll(
		func(n int) bool {
			var kb int
			if _, err := fmt.Sscanf(FormatSize(n), "%d KB", &kb); err != nil {
				return false
			}
			return kb >= 1 && math.Abs(float64(kb)-float64(n)/1024) <= 0.5+1.0/1024
		},
		gen.IntRange(1024, 1024*1024-1),
	))

	properties.Property("from one MB reports MB", prop.ForAll(
		func(n int) bool {
			return strings.HasSuffix(FormatSize(n), " MB")
		},
		gen.IntRange(1024*1024, 1<<31-1),
	))

	properties.TestingRun(t)
}
