// Package docs implements the documentation quality and translation coverage
// checks for Markdown trees that follow the "name.lang.md" suffix scheme.
package docs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var (
	mainHeaderRe = regexp.MustCompile(`(?m)^#\s.+`)
	sectionRe    = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// files that legitimately carry no code examples
var codeExampleExempt = map[string]bool{
	"changelog": true,
	"license":   true,
}

// Checker inspects Markdown files for quality issues and collects them per
// file for the final report.
type Checker struct {
	cfg    Config
	issues map[string][]string
	order  []string
}

func NewChecker(cfg Config) *Checker {
	return &Checker{
		cfg:    cfg,
		issues: make(map[string][]string),
	}
}

// CheckDirectory walks dir and checks every Markdown file in it.
func (c *Checker) CheckDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		c.CheckFile(path)
		return nil
	})
}

// CheckFile runs all content checks against a single Markdown file.
func (c *Checker) CheckFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		c.addIssues(path, []string{fmt.Sprintf("Error reading file: %v", err)})
		return
	}

	if issues := c.checkContent(path, string(content)); len(issues) > 0 {
		c.addIssues(path, issues)
	}
}

func (c *Checker) checkContent(path, content string) []string {
	var issues []string

	if len(content) < c.cfg.MinLength {
		issues = append(issues, fmt.Sprintf("Content too short (%d chars)", len(content)))
	}

	body, fmIssue := stripFrontMatter(content)
	if fmIssue != "" {
		issues = append(issues, fmIssue)
	}

	if !mainHeaderRe.MatchString(body) {
		issues = append(issues, "Missing main header")
	}

	stem := strings.SplitN(filepath.Base(path), ".", 2)[0]
	if c.cfg.CodeExampleRequired && !codeExampleExempt[strings.ToLower(stem)] && !strings.Contains(body, "```") {
		issues = append(issues, "No code examples found")
	}

	if len(c.cfg.RequiredSections) > 0 {
		sections := make(map[string]bool)
		for _, m := range sectionRe.FindAllStringSubmatch(body, -1) {
			sections[strings.TrimSpace(m[1])] = true
		}

		var missing []string
		for _, required := range c.cfg.RequiredSections {
			if !sections[required] {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			issues = append(issues, fmt.Sprintf("Missing required sections: %s", strings.Join(missing, ", ")))
		}
	}

	if c.cfg.ImageRequired && !imageRe.MatchString(body) {
		issues = append(issues, "No images found")
	}

	for _, m := range linkRe.FindAllStringSubmatch(body, -1) {
		url := m[2]
		if !strings.HasPrefix(url, "http") &&
			!strings.HasPrefix(url, "#") &&
			!strings.HasPrefix(url, "/") &&
			!strings.HasPrefix(url, "..") {
			issues = append(issues, fmt.Sprintf("Invalid link: %s", url))
		}
	}

	if lang, ok := languageSuffix(filepath.Base(path)); ok && !c.cfg.supportsLanguage(lang) {
		issues = append(issues, fmt.Sprintf("Unsupported language: %s", lang))
	}

	return issues
}

// stripFrontMatter removes a leading YAML front matter block and reports an
// issue string when the block does not parse.
func stripFrontMatter(content string) (string, string) {
	if !strings.HasPrefix(content, "---\n") {
		return content, ""
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return content, "Unterminated front matter block"
	}

	meta := make(map[string]any)
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return content, fmt.Sprintf("Invalid front matter: %v", err)
	}

	body := rest[end+len("\n---"):]
	return strings.TrimPrefix(body, "\n"), ""
}

// languageSuffix extracts the language code of "name.lang.md" file names.
func languageSuffix(fileName string) (string, bool) {
	parts := strings.Split(fileName, ".")
	if len(parts) <= 2 {
		return "", false
	}

	return parts[len(parts)-2], true
}

// CheckTranslations flags base documents missing a translation in any of the
// supported languages.
func (c *Checker) CheckTranslations(dir string) error {
	baseDocs := make(map[string]bool)
	translated := make(map[string]map[string]bool)
	for _, lang := range c.cfg.SupportedLanguages {
		translated[lang] = make(map[string]bool)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		name := d.Name()
		if lang, ok := languageSuffix(name); ok && c.cfg.supportsLanguage(lang) {
			parts := strings.Split(name, ".")
			base := strings.Join(parts[:len(parts)-2], ".") + ".md"
			translated[lang][base] = true
			return nil
		}

		baseDocs[name] = true
		return nil
	})
	if err != nil {
		return err
	}

	for _, lang := range c.cfg.SupportedLanguages {
		var missing []string
		for doc := range baseDocs {
			if !translated[lang][doc] {
				missing = append(missing, doc)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			c.addIssues(fmt.Sprintf("Missing %s translations", lang), missing)
		}
	}

	return nil
}

func (c *Checker) addIssues(key string, issues []string) {
	if _, seen := c.issues[key]; !seen {
		c.order = append(c.order, key)
	}
	c.issues[key] = append(c.issues[key], issues...)
	log.Debug().Str("file", key).Strs("issues", issues).Msg("documentation issues recorded")
}

// Issues returns the collected issues keyed by file (or translation group).
func (c *Checker) Issues() map[string][]string {
	return c.issues
}

func (c *Checker) HasIssues() bool {
	return len(c.issues) > 0
}

// Report writes a human-readable summary of all collected issues.
func (c *Checker) Report(w io.Writer) {
	if !c.HasIssues() {
		fmt.Fprintln(w, colorize("Documentation quality check passed!", ansiGreen))
		return
	}

	fmt.Fprintln(w, colorize("Documentation Quality Report", ansiRed))
	for _, key := range c.order {
		fmt.Fprintf(w, "%s:\n", colorize(key, ansiMagenta))
		for _, issue := range c.issues[key] {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}
}

const (
	ansiGreen   = "\033[32m"
	ansiRed     = "\033[31m"
	ansiMagenta = "\033[35m"
	ansiReset   = "\033[0m"
)

func colorize(s, color string) string {
	return color + s + ansiReset
}
