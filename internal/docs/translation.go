package docs

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// TranslationStats holds the raw document inventory used for coverage
// calculation. English documents use the plain "name.md" scheme, translations
// use "name.lang.md".
type TranslationStats struct {
	EnglishDocs    map[string]bool
	TranslatedDocs map[string]map[string]bool
}

// CollectTranslationStats walks dir and classifies every Markdown file by its
// dot-separated name parts: two parts is an English document, three parts is
// a translation. Anything else is ignored.
func CollectTranslationStats(dir string) (TranslationStats, error) {
	stats := TranslationStats{
		EnglishDocs:    make(map[string]bool),
		TranslatedDocs: make(map[string]map[string]bool),
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		parts := strings.Split(d.Name(), ".")
		switch len(parts) {
		case 2:
			stats.EnglishDocs[d.Name()] = true
			log.Debug().Str("file", d.Name()).Msg("detected English doc")
		case 3:
			lang := parts[1]
			base := parts[0] + ".md"
			if stats.TranslatedDocs[lang] == nil {
				stats.TranslatedDocs[lang] = make(map[string]bool)
			}
			stats.TranslatedDocs[lang][base] = true
			log.Debug().Str("file", d.Name()).Str("lang", lang).Msg("detected translated doc")
		}

		return nil
	})
	if err != nil {
		return TranslationStats{}, err
	}

	return stats, nil
}

// Coverage computes the translation coverage percentage: the number of
// English documents that have a translation, summed over all observed
// languages, relative to the full languages x documents matrix.
func Coverage(dir string) (float64, error) {
	stats, err := CollectTranslationStats(dir)
	if err != nil {
		return 0, err
	}

	totalDocs := len(stats.EnglishDocs)
	totalLangs := len(stats.TranslatedDocs)
	if totalDocs == 0 || totalLangs == 0 {
		return 0, nil
	}

	translated := 0
	for lang, bases := range stats.TranslatedDocs {
		count := 0
		for base := range bases {
			if stats.EnglishDocs[base] {
				count++
			}
		}
		translated += count
		log.Debug().Str("lang", lang).Int("translated", count).Msg("language coverage")
	}

	return float64(translated) / float64(totalLangs*totalDocs) * 100, nil
}
