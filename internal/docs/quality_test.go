package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func goodDoc() string {
	return `# Checkconnect

Some introduction text that is long enough to pass the minimum length check
for the default configuration of the quality checker.

## Installation

` + "```sh\ngo install checkconnect\n```" + `

## Usage

See [the docs](https://example.com/docs).

## Configuration

Nothing to configure.
`
}

func TestCheckFileCleanDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "index.md", goodDoc())

	checker := NewChecker(DefaultConfig())
	checker.CheckFile(path)

	assert.False(t, checker.HasIssues())
}

func TestCheckFileIssues(t *testing.T) {
	testCases := []struct {
		name          string
		fileName      string
		content       string
		expectedIssue string
	}{
		{
			name:          "too short",
			fileName:      "short.md",
			content:       "# Tiny",
			expectedIssue: "Content too short",
		},
		{
			name:          "missing main header",
			fileName:      "noheader.md",
			content:       strings.Repeat("plain text without any header\n", 10),
			expectedIssue: "Missing main header",
		},
		{
			name:          "no code examples",
			fileName:      "nocode.md",
			content:       "# Title\n\n" + strings.Repeat("prose ", 50),
			expectedIssue: "No code examples found",
		},
		{
			name:          "missing required sections",
			fileName:      "nosections.md",
			content:       "# Title\n\n```sh\nok\n```\n\n" + strings.Repeat("prose ", 50),
			expectedIssue: "Missing required sections",
		},
		{
			name:          "invalid link",
			fileName:      "badlink.md",
			content:       goodDoc() + "\nBroken [link](C:\\temp\\file).\n",
			expectedIssue: "Invalid link: C:\\temp\\file",
		},
		{
			name:          "unsupported language suffix",
			fileName:      "index.xx.md",
			content:       goodDoc(),
			expectedIssue: "Unsupported language: xx",
		},
		{
			name:          "broken front matter",
			fileName:      "frontmatter.md",
			content:       "---\ntitle: [unclosed\n---\n" + goodDoc(),
			expectedIssue: "Invalid front matter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeDoc(t, dir, tc.fileName, tc.content)

			checker := NewChecker(DefaultConfig())
			checker.CheckFile(path)

			require.True(t, checker.HasIssues())
			issues := checker.Issues()[path]
			found := false
			for _, issue := range issues {
				if strings.Contains(issue, tc.expectedIssue) {
					found = true
				}
			}
			assert.True(t, found, "expected an issue containing %q, got %v", tc.expectedIssue, issues)
		})
	}
}

func TestCheckFileValidFrontMatter(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Checkconnect\ndescription: Connectivity checker\n---\n" + goodDoc()
	path := writeDoc(t, dir, "meta.md", content)

	checker := NewChecker(DefaultConfig())
	checker.CheckFile(path)

	assert.False(t, checker.HasIssues(), "issues: %v", checker.Issues())
}

func TestCheckTranslationsReportsMissing(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", goodDoc())
	writeDoc(t, dir, "index.de.md", goodDoc())

	cfg := DefaultConfig()
	cfg.SupportedLanguages = []string{"de", "es"}

	checker := NewChecker(cfg)
	require.NoError(t, checker.CheckTranslations(dir))

	require.True(t, checker.HasIssues())
	assert.NotContains(t, checker.Issues(), "Missing de translations")
	assert.Contains(t, checker.Issues(), "Missing es translations")
	assert.Equal(t, []string{"index.md"}, checker.Issues()["Missing es translations"])
}

func TestCheckDirectoryWalks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guide"), 0755))
	writeDoc(t, dir, "index.md", goodDoc())
	writeDoc(t, filepath.Join(dir, "guide"), "short.md", "# Tiny")
	writeDoc(t, dir, "notes.txt", "not markdown, ignored")

	checker := NewChecker(DefaultConfig())
	require.NoError(t, checker.CheckDirectory(dir))

	assert.Len(t, checker.Issues(), 1)
	assert.Contains(t, checker.Issues(), filepath.Join(dir, "guide", "short.md"))
}

func TestReportOutput(t *testing.T) {
	checker := NewChecker(DefaultConfig())

	var clean bytes.Buffer
	checker.Report(&clean)
	assert.Contains(t, clean.String(), "Documentation quality check passed!")

	checker.addIssues("docs/index.md", []string{"Missing main header"})

	var failed bytes.Buffer
	checker.Report(&failed)
	assert.Contains(t, failed.String(), "Documentation Quality Report")
	assert.Contains(t, failed.String(), "docs/index.md")
	assert.Contains(t, failed.String(), "Missing main header")
}
