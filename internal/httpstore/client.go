// Package httpstore is the remote content backend. It reads another
// instance's public JSON API and is read-only.
package httpstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultRPS     = 5
)

type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRate caps outgoing requests. rps <= 0 disables throttling.
func WithRate(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New points a client at baseURL, e.g. "https://shop.example/api/v1".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: store url %q", domain.ErrInvalidInput, baseURL)
	}
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRPS), DefaultRPS),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

type collection[T any] struct {
	c      *Client
	path   string
	fields func(T) filter.Getter
	order  []filter.Order
}

// List fetches the whole remote collection and filters it locally.
func (r collection[T]) List(ctx context.Context, q filter.Query) ([]T, error) {
	var all []T
	if err := r.c.getJSON(ctx, r.path, &all); err != nil {
		return nil, err
	}
	return filter.Apply(all, q.WithDefaultSort(r.order...), r.fields)
}

func (r collection[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.c.getJSON(ctx, r.path+"/"+url.PathEscape(id), &out)
	return out, err
}

func (collection[T]) Create(context.Context, *T) error   { return domain.ErrReadOnly }
func (collection[T]) Update(context.Context, *T) error   { return domain.ErrReadOnly }
func (collection[T]) Delete(context.Context, string) error { return domain.ErrReadOnly }

type settings struct{ c *Client }

func (s settings) Get(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	err := s.c.getJSON(ctx, "/settings", &out)
	return out, err
}

func (settings) Put(context.Context, domain.Settings) error { return domain.ErrReadOnly }

func (c *Client) Promos() content.Collection[domain.Promo] {
	return collection[domain.Promo]{c: c, path: "/promos", fields: content.PromoFields, order: content.NewestFirst}
}

func (c *Client) Articles() content.Collection[domain.Article] {
	return collection[domain.Article]{c: c, path: "/articles", fields: content.ArticleFields, order: content.NewestFirst}
}

func (c *Client) Products() content.Collection[domain.Product] {
	return collection[domain.Product]{c: c, path: "/products", fields: content.ProductFields, order: content.NewestFirst}
}

func (c *Client) Sponsors() content.Collection[domain.Sponsor] {
	return collection[domain.Sponsor]{c: c, path: "/sponsors", fields: content.SponsorFields, order: content.SponsorOrder}
}

func (c *Client) Settings() content.SettingsStore { return settings{c: c} }

var _ content.Store = (*Client)(nil)
