// Package definitions builds the verb → description mapping out of a
// wiktionary dump and persists it for the query layer.
package definitions

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/oriolrp/verbdefs/internal/dump"
	"github.com/oriolrp/verbdefs/internal/htmlcheck"
	"github.com/oriolrp/verbdefs/internal/infinitives"
	"github.com/oriolrp/verbdefs/internal/wikitext"
)

// verbMarker identifies pages that document a Catalan verb.
const verbMarker = "{{ca-verb"

// progressEvery controls how often dump progress is logged.
const progressEvery = 10000

// Source emits dump pages in document order. *dump.Reader satisfies it.
type Source interface {
	Next() (*dump.Page, error)
}

// Builder drives extraction over a dump.
type Builder struct {
	log     *slog.Logger
	workers int
}

// NewBuilder creates a Builder extracting up to workers pages concurrently.
func NewBuilder(log *slog.Logger, workers int) *Builder {
	if workers <= 0 {
		workers = 4
	}
	return &Builder{log: log, workers: workers}
}

// Report pairs the infinitives that got a definition with those that did
// not, preserving the original list order.
type Report struct {
	Defined   []string
	Undefined []string
}

// Build drains the dump source and returns the canonical-key → description
// mapping plus a coverage report over the target infinitives. Pages whose
// canonical title is not a target infinitive, that carry no verb marker, or
// that yield an empty description are skipped. When two pages share a key
// the later one in dump order wins, regardless of extraction order.
func (b *Builder) Build(src Source, ordered []string, set infinitives.Set) (map[string]string, Report, error) {
	type result struct {
		idx  int
		key  string
		desc string
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []result
	)
	sem := make(chan struct{}, b.workers)

	pages := 0
	for {
		page, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Report{}, fmt.Errorf("read dump: %w", err)
		}

		pages++
		if pages%progressEvery == 0 {
			b.log.Info("dump progress", "pages", humanize.Comma(int64(pages)))
		}

		key := infinitives.StripReflexive(strings.ToLower(strings.TrimSpace(page.Title)))
		if !set[key] {
			continue
		}

		text := page.Revision.Text
		if !strings.Contains(text, verbMarker) {
			b.log.Debug("discard non-verb page", "title", page.Title)
			continue
		}

		idx := pages
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			desc := wikitext.ExtractDescription(text, set)
			if desc == "" {
				b.log.Debug("discard empty description", "key", key)
				return
			}
			if tags := htmlcheck.UnclosedTags(desc); len(tags) > 0 {
				b.log.Warn("definition leaves lists unterminated",
					"key", key, "tags", strings.Join(tags, ","))
			}

			mu.Lock()
			results = append(results, result{idx: idx, key: key, desc: desc})
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Duplicate keys must resolve by dump order, not completion order.
	sort.Slice(results, func(i, j int) bool { return results[i].idx < results[j].idx })

	mapping := make(map[string]string, len(results))
	for _, r := range results {
		mapping[r.key] = r.desc
	}

	var report Report
	for _, inf := range ordered {
		if _, ok := mapping[inf]; ok {
			report.Defined = append(report.Defined, inf)
		} else {
			report.Undefined = append(report.Undefined, inf)
		}
	}

	b.log.Info("build complete",
		"pages", humanize.Comma(int64(pages)),
		"defined", len(report.Defined),
		"undefined", len(report.Undefined))

	return mapping, report, nil
}
