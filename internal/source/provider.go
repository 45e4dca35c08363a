package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// Default provider settings.
const (
	// DefaultSourceURL is the W3C technical reports index.
	DefaultSourceURL = "https://www.w3.org/TR/"

	// DefaultCachePath is where the fetched index is kept between runs.
	DefaultCachePath = "./standards.html"
)

// Provider returns the index document from cache or from the network.
type Provider struct {
	client    *resty.Client
	sourceURL string
	cachePath string
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger

	// fetched is true when the last Document call went to the network.
	fetched bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithSourceURL sets the URL of the index page.
func WithSourceURL(u string) ProviderOption {
	return func(p *Provider) {
		p.sourceURL = u
	}
}

// WithCachePath sets the cache file path.
func WithCachePath(path string) ProviderOption {
	return func(p *Provider) {
		p.cachePath = path
	}
}

// WithUserAgent sets the User-Agent header of the request.
// An empty value keeps the client default.
func WithUserAgent(ua string) ProviderOption {
	return func(p *Provider) {
		p.userAgent = ua
	}
}

// WithTimeout sets the request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) {
		p.timeout = d
	}
}

// WithClient sets the resty client used for fetching.
func WithClient(client *resty.Client) ProviderOption {
	return func(p *Provider) {
		p.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a Provider for DefaultSourceURL cached at
// DefaultCachePath unless overridden by options.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		sourceURL: DefaultSourceURL,
		cachePath: DefaultCachePath,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.client == nil {
		p.client = resty.New()
	}
	p.client.SetRetryCount(0)
	if p.timeout > 0 {
		p.client.SetTimeout(p.timeout)
	}
	if p.userAgent != "" {
		p.client.SetHeader("User-Agent", p.userAgent)
	}

	return p
}

// SourceURL returns the URL the document is fetched from.
func (p *Provider) SourceURL() string {
	return p.sourceURL
}

// CachePath returns the cache file path.
func (p *Provider) CachePath() string {
	return p.cachePath
}

// Fetched reports whether the last Document call fetched from the network.
func (p *Provider) Fetched() bool {
	return p.fetched
}

// Document returns the full text of the index page.
// The cache file is used whenever it exists; otherwise the page is fetched
// and written to the cache before being returned.
func (p *Provider) Document(ctx context.Context) (string, error) {
	p.fetched = false

	text, err := p.readCache()
	if err == nil {
		p.logger.Info("using cached index page", "path", p.cachePath)
		return text, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	text, err = p.fetch(ctx)
	if err != nil {
		return "", err
	}
	p.fetched = true

	if err := p.writeCache(text); err != nil {
		return "", err
	}
	p.logger.Info("cached index page", "path", p.cachePath, "bytes", len(text))

	return text, nil
}

// readCache returns the cached document. A missing file yields an error
// matching fs.ErrNotExist.
func (p *Provider) readCache() (string, error) {
	data, err := os.ReadFile(p.cachePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("failed to read cache %s: %w", p.cachePath, err)
	}
	return string(data), nil
}

// fetch downloads the index page and decodes it to UTF-8 text.
func (p *Provider) fetch(ctx context.Context) (string, error) {
	p.logger.Info("fetching index page", "url", p.sourceURL)

	res, err := p.client.R().
		SetContext(ctx).
		Get(p.sourceURL)
	if err != nil {
		return "", fmt.Errorf("%w: GET %s: %w", ErrTransport, p.sourceURL, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("%w: GET %s: %s", ErrTransport, p.sourceURL, res.Status())
	}

	p.logger.Debug("index page fetched",
		"url", p.sourceURL,
		"status", res.StatusCode(),
		"bytes", len(res.Body()),
		"elapsed", res.Time(),
	)

	reader, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%w: decode body of %s: %w", ErrTransport, p.sourceURL, err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: decode body of %s: %w", ErrTransport, p.sourceURL, err)
	}

	return string(decoded), nil
}

// writeCache stores the document, creating parent directories as needed.
func (p *Provider) writeCache(text string) error {
	dir := filepath.Dir(p.cachePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	if err := os.WriteFile(p.cachePath, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", p.cachePath, err)
	}
	return nil
}
