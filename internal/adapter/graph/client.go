package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
)

// Client talks to the Graph (Marketing) API. It implements the AdPlatform,
// Catalog, StatusMutator, PostResolver and GeoResolver ports.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	logger  *slog.Logger
	posts   singleflight.Group
}

// NewClient builds a client that retries reads on transport failures and
// 5xx/429 answers. Writes are sent once. The logger receives retry
// diagnostics.
func NewClient(cfg configs.Graph, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.Logger = logger
	rc.CheckRetry = retryPolicy
	// Keep the last response so the error envelope can still be parsed.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Version != "" {
		base += "/" + strings.Trim(cfg.Version, "/")
	}

	return &Client{
		http:    rc,
		baseURL: base,
		logger:  logger,
	}
}

type idempotentKey struct{}

// retryPolicy retries only requests marked idempotent. A write that failed
// to connect never reached the platform, so it is retried as well.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if idempotent, _ := ctx.Value(idempotentKey{}).(bool); idempotent {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true, nil
	}
	return false, nil
}

// APIError is the error envelope returned by the platform.
type APIError struct {
	Status      int
	Code        int
	Subcode     int
	Type        string
	Message     string
	UserMessage string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("graph: (#%d) %s", e.Code, e.Message)
	if e.UserMessage != "" && e.UserMessage != e.Message {
		msg += ": " + e.UserMessage
	}
	return msg
}

func parseAPIError(status int, body gjson.Result) *APIError {
	e := body.Get("error")
	apiErr := &APIError{
		Status:      status,
		Code:        int(e.Get("code").Int()),
		Subcode:     int(e.Get("error_subcode").Int()),
		Type:        e.Get("type").String(),
		Message:     e.Get("message").String(),
		UserMessage: e.Get("error_user_msg").String(),
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, token, path string, params url.Values) (gjson.Result, error) {
	return c.do(ctx, token, http.MethodGet, path, params)
}

func (c *Client) post(ctx context.Context, token, path string, params url.Values) (gjson.Result, error) {
	return c.do(ctx, token, http.MethodPost, path, params)
}

// do sends one request. GET parameters go in the query string, POST
// parameters form-encoded in the body.
func (c *Client) do(ctx context.Context, token, method, path string, params url.Values) (gjson.Result, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var body io.Reader
	if method == http.MethodGet {
		ctx = context.WithValue(ctx, idempotentKey{}, true)
		if len(params) > 0 {
			endpoint += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return gjson.Result{}, err
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req.Request)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	result := gjson.ParseBytes(raw)

	if resp.StatusCode >= http.StatusBadRequest || result.Get("error").Exists() {
		apiErr := parseAPIError(resp.StatusCode, result)
		c.logger.Warn("graph request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("code", apiErr.Code),
			slog.String("message", apiErr.Message),
		)
		return result, apiErr
	}
	return result, nil
}

// accountPath returns the edge path of an ad account, adding the "act_"
// prefix when the configured id is bare.
func accountPath(acct domain.Account, edge string) string {
	id := acct.AdAccountID
	if !strings.HasPrefix(id, "act_") {
		id = "act_" + id
	}
	return id + "/" + edge
}
