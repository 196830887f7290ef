package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodySize  = 4 << 20
	DefaultMaxRedirects = 5
)

const ErrBodyTooLarge = errs.ErrorKind("httpclient: response body too large")

type Config struct {
	// Enable debug mode
	Debug bool

	// Default headers
	Headers map[string]string

	// Timeout of a whole request. Default is 10s.
	Timeout time.Duration

	// MaxBodySize caps the response body, both as received and after
	// content decoding. Default is 4 MiB.
	MaxBodySize int

	// MaxRedirects followed by Fetch. Default is 5, negative disables.
	MaxRedirects int
}

// Client fetches documents from absolute http(s) URLs, as found in
// on-chain metadata.
type Client struct {
	client *fasthttp.Client
	Config
}

func New(config Config) *Client {
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}
	if config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
	return &Client{
		client: &fasthttp.Client{
			MaxResponseBodySize: config.MaxBodySize,
			ReadTimeout:         config.Timeout,
			WriteTimeout:        config.Timeout,
		},
		Config: config,
	}
}

type RequestOptions struct {
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	// MaxBodySize bounds DecodedBody in UnmarshalBody. Zero is unbounded.
	MaxBodySize int
	fasthttp.Response
}

// IsSuccess reports a 2xx status code.
func (r *HttpResponse) IsSuccess() bool {
	code := r.StatusCode()
	return code >= 200 && code < 300
}

func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.DecodedBody(r.MaxBodySize)
	if err != nil {
		return errors.WithStack(err)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	switch {
	case strings.HasPrefix(contentType, "application/json"), strings.HasPrefix(contentType, "text/plain"):
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(errs.ParsingError, "can't unmarshal json body from %s: %v", r.URL, err)
		}
		return nil
	default:
		return errors.Wrapf(errs.Unsupported, "unsupported content type %q from %s", contentType, r.URL)
	}
}

// DecodedBody returns the body with its Content-Encoding removed. At most
// limit decoded bytes are read, so a small compressed body can't expand
// past it. A limit of zero or less reads everything.
func (r *HttpResponse) DecodedBody(limit int) ([]byte, error) {
	raw := r.Body()
	var rd io.Reader
	switch enc := strings.ToLower(strings.TrimSpace(string(r.Header.ContentEncoding()))); enc {
	case "", "identity":
		if limit > 0 && len(raw) > limit {
			return nil, errors.Wrapf(ErrBodyTooLarge, "%d bytes from %s exceeds %d", len(raw), r.URL, limit)
		}
		return raw, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(errs.ParsingError, "can't read gzip body from %s: %v", r.URL, err)
		}
		defer zr.Close()
		rd = zr
	case "deflate":
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(errs.ParsingError, "can't read deflate body from %s: %v", r.URL, err)
		}
		defer zr.Close()
		rd = zr
	case "br":
		rd = brotli.NewReader(bytes.NewReader(raw))
	case "zstd":
		zr, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(errs.ParsingError, "can't read zstd body from %s: %v", r.URL, err)
		}
		defer zr.Close()
		rd = zr
	default:
		return nil, errors.Wrapf(errs.Unsupported, "unsupported content encoding %q from %s", enc, r.URL)
	}

	if limit > 0 {
		rd = io.LimitReader(rd, int64(limit)+1)
	}
	body, err := io.ReadAll(rd)
	if err != nil {
		return nil, errors.Wrapf(errs.ParsingError, "can't decode body from %s: %v", r.URL, err)
	}
	if limit > 0 && len(body) > limit {
		return nil, errors.Wrapf(ErrBodyTooLarge, "decoded body from %s exceeds %d bytes", r.URL, limit)
	}
	return body, nil
}

// Fetch issues a GET to an absolute http(s) URL, following redirects.
func (h *Client) Fetch(ctx context.Context, rawURL string, reqOptions RequestOptions) (*HttpResponse, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Wrapf(errs.InvalidArgument, "unsupported url %q", rawURL)
	}
	if len(reqOptions.Query) > 0 {
		query := u.Query()
		for k, values := range reqOptions.Query {
			for _, v := range values {
				query.Add(k, v)
			}
		}
		u.RawQuery = query.Encode()
	}
	return h.get(ctx, u.String(), reqOptions.Header)
}

func (h *Client) get(ctx context.Context, url string, header map[string]string) (*HttpResponse, error) {
	start := time.Now()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		if h.Debug {
			logger.DebugContext(ctx, "Finished request",
				slog.String("package", "httpclient"),
				slog.String("url", url),
				slog.Int("status_code", resp.StatusCode()),
				slog.Int("resp_content_length", len(resp.Body())),
				slog.Duration("duration", time.Since(start)),
			)
		}
		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	req.Header.SetMethod(fasthttp.MethodGet)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	req.SetRequestURI(url)

	timeout := h.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if err := h.do(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, errors.Wrapf(errs.Timeout, "url: %s", url)
		}
		if errors.Is(err, fasthttp.ErrBodyTooLarge) {
			return nil, errors.Wrapf(ErrBodyTooLarge, "url: %s", url)
		}
		return nil, errors.Wrapf(err, "url: %s", url)
	}

	httpResponse := HttpResponse{URL: url, MaxBodySize: h.MaxBodySize}
	resp.CopyTo(&httpResponse.Response)
	return &httpResponse, nil
}

// do follows up to MaxRedirects redirects, the whole chain bounded by one
// timeout.
func (h *Client) do(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for redirects := 0; ; redirects++ {
		if err := h.client.DoDeadline(req, resp, deadline); err != nil {
			return errors.WithStack(err)
		}
		if !fasthttp.StatusCodeIsRedirect(resp.StatusCode()) || redirects >= h.MaxRedirects {
			return nil
		}
		location := resp.Header.Peek(fasthttp.HeaderLocation)
		if len(location) == 0 {
			return nil
		}
		req.URI().UpdateBytes(location)
		resp.Reset()
	}
}
