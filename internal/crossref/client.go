package crossref

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the CrossRef REST API base URL.
	BaseURL = "https://api.crossref.org"

	// ConnectTimeout bounds the TCP dial; TotalTimeout bounds the whole
	// request including body read.
	ConnectTimeout = 7 * time.Second
	TotalTimeout   = 15 * time.Second

	// RateLimit keeps the client well inside CrossRef's polite-pool
	// guidance.
	RateLimit = 2.0
)

// yearPaths is the fallback order for publication years in a works
// record, most authoritative first. Each path addresses the year
// component of a [[year, month, day]]-shaped date-parts field.
var yearPaths = []string{
	"message.published-print.date-parts.0.0",
	"message.published-online.date-parts.0.0",
	"message.issued.date-parts.0.0",
	"message.created.date-parts.0.0",
}

// Client queries the CrossRef works endpoint for bibliographic records.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for tests and mirrors).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithMailto attaches a contact address to requests, which routes them
// through CrossRef's polite pool.
func WithMailto(mailto string) Option {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a CrossRef works client with bounded latency.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: TotalTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: ConnectTimeout}).DialContext,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL: BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the works record for doi and extracts the first
// author's raw name and the publication year. Lookup never fails a
// document: network errors, non-2xx responses, and malformed records
// all yield empty strings, and DOIs that do not match the DOI grammar
// skip the request entirely.
func (c *Client) Lookup(ctx context.Context, doi string) (author, year string) {
	if !IsDOI(doi) {
		return "", ""
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", ""
	}

	var body string
	req := requests.URL(c.baseURL + "/works/" + doi).
		Client(c.httpClient).
		Accept("application/json").
		ToString(&body)
	if c.mailto != "" {
		req = req.Param("mailto", c.mailto)
	}
	if err := req.Fetch(ctx); err != nil {
		return "", ""
	}

	record := gjson.Parse(body)
	return firstAuthor(record), firstYear(record)
}

// firstAuthor extracts a raw author name from a works record: the first
// author's family name if present, else the last whitespace-separated
// token of that author's display name.
func firstAuthor(record gjson.Result) string {
	a := record.Get("message.author.0")
	if !a.Exists() {
		return ""
	}
	if family := strings.TrimSpace(a.Get("family").String()); family != "" {
		return family
	}
	fields := strings.Fields(a.Get("name").String())
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// firstYear walks yearPaths and returns the first present year component.
func firstYear(record gjson.Result) string {
	for _, path := range yearPaths {
		v := record.Get(path)
		if v.Exists() && v.Int() > 0 {
			return strconv.FormatInt(v.Int(), 10)
		}
	}
	return ""
}
