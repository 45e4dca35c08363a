package extract

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/genstandards/internal/model"
)

// CSS selectors for the parts of the index page we read.
const (
	selectorSection     = "section.family-grouping"
	selectorSectionName = "h2"
	selectorItem        = "div.tr-list__item"
	selectorItemHeader  = "div.tr-list__item__header"
	selectorItemHeading = "h3"
	selectorAnchor      = "a"
	selectorMaturity    = "span.maturity-level"
	selectorMetadata    = "dl.inline"
	selectorMetaGroup   = "div"
	selectorMetaKey     = "dt"
	selectorMetaValue   = "dd"
)

// Metadata keys, after lowercasing the first word of the <dt> text.
const (
	metaKeyTags       = "tags"
	metaKeyDeliverers = "deliverers"
)

// translationKeys are the spellings used for the translations key.
// Nested markup inside <dt> can glue "for" to the first word.
var translationKeys = map[string]bool{
	"translation":     true,
	"translations":    true,
	"translationfor":  true,
	"translationsfor": true,
}

// Extractor reads index entries from the technical reports page.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Catalog extracts all entries and groups them by section.
func (e *Extractor) Catalog(content io.Reader) (*model.Catalog, error) {
	entries, err := e.Extract(content)
	if err != nil {
		return nil, err
	}
	return model.NewCatalog(entries), nil
}

// Extract parses the document and returns its entries in document order.
// It stops at the first entry that cannot be built.
func (e *Extractor) Extract(content io.Reader) ([]model.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	entries := make([]model.Entry, 0)
	var extractErr error

	doc.Find(selectorSection).EachWithBreak(func(_ int, sec *goquery.Selection) bool {
		sectionName := strippedText(sec.Find(selectorSectionName).First())

		sec.Find(selectorItem).EachWithBreak(func(_ int, item *goquery.Selection) bool {
			entry, err := e.extractEntry(sectionName, item)
			if err != nil {
				extractErr = err
				return false
			}
			entries = append(entries, entry)
			return true
		})

		return extractErr == nil
	})

	if extractErr != nil {
		return nil, extractErr
	}

	e.logger.Debug("extracted entries", "count", len(entries))
	return entries, nil
}

// metadata collects the definition list values of one item.
type metadata struct {
	tags         []string
	deliverers   []model.WorkingGroup
	translations []model.Link
}

// extractEntry builds one entry from a div.tr-list__item.
func (e *Extractor) extractEntry(section string, item *goquery.Selection) (model.Entry, error) {
	anchor := item.Find(selectorItemHeader).First().
		Find(selectorItemHeading).First().
		Find(selectorAnchor).First()
	href, ok := selectionAttr(anchor, "href")
	if !ok {
		return model.Entry{}, fmt.Errorf("%w: item without header link in section %q", ErrMalformedEntry, section)
	}
	title := model.NewLink(strippedText(anchor), href)

	label := strippedText(item.Find(selectorMaturity).First())
	status, err := model.ParseStatus(label)
	if err != nil {
		return model.Entry{}, fmt.Errorf("%q in section %q: %w", title.Text, section, err)
	}

	meta := e.extractMetadata(item.Find(selectorMetadata).First())

	return model.NewEntry(section, title, status, meta.tags, meta.deliverers, meta.translations)
}

// extractMetadata reads the key/value groups of a dl.inline.
func (e *Extractor) extractMetadata(dl *goquery.Selection) metadata {
	meta := metadata{
		tags:         make([]string, 0),
		deliverers:   make([]model.WorkingGroup, 0),
		translations: make([]model.Link, 0),
	}

	dl.Find(selectorMetaGroup).Each(func(_ int, group *goquery.Selection) {
		key := model.NormalizeLabel(firstToken(strippedText(group.Find(selectorMetaKey).First())))
		values := group.Find(selectorMetaValue)

		switch {
		case key == metaKeyTags:
			values.Each(func(_ int, dd *goquery.Selection) {
				meta.tags = append(meta.tags, strings.TrimSpace(dd.Text()))
			})
		case key == metaKeyDeliverers:
			meta.deliverers = append(meta.deliverers, e.valueLinks(key, values)...)
		case translationKeys[key]:
			meta.translations = append(meta.translations, e.valueLinks(key, values)...)
		default:
			// Other metadata (editors, dates, ...) is not reported.
		}
	})

	return meta
}

// valueLinks returns the first anchor of each <dd> as a Link.
func (e *Extractor) valueLinks(key string, values *goquery.Selection) []model.Link {
	links := make([]model.Link, 0, values.Length())
	values.Each(func(_ int, dd *goquery.Selection) {
		a := dd.Find(selectorAnchor).First()
		href, ok := selectionAttr(a, "href")
		if !ok {
			e.logger.Debug("skipping metadata value without link",
				"key", key,
				"text", strings.TrimSpace(dd.Text()),
			)
			return
		}
		links = append(links, model.NewLink(strings.TrimSpace(a.Text()), href))
	})
	return links
}
