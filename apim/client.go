// Package apim talks to the consumer api of the remote api management backend
package apim

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrRemoteError is returned when the backend answered with an errors document
	ErrRemoteError = errors.New("api management backend returned an error")
	// ErrInvalidResponse is returned for responses that are not json documents
	ErrInvalidResponse = errors.New("invalid response from api management backend")
)

const defaultPrefix = "/consumer-api"

// Client is a consumer api client
type Client struct {
	log     *zap.Logger
	http    *http.Client
	base    string
	prefix  string
	token   string
	limiter *rate.Limiter
}

// New returns a client for the configured consumer api
func New(log *zap.Logger, cfg *config.PortalConfiguration) (*Client, error) {
	if cfg.ConsumerAPI == "" {
		return nil, errors.New("portal.consumer-api is not set")
	}
	if _, err := url.Parse(cfg.ConsumerAPI); err != nil {
		return nil, fmt.Errorf("portal.consumer-api is not a valid url: %w", err)
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	prefix := cfg.ConsumerAPIPrefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return &Client{
		log:     log,
		http:    &http.Client{Timeout: timeout},
		base:    strings.TrimRight(cfg.ConsumerAPI, "/"),
		prefix:  "/" + strings.Trim(prefix, "/"),
		token:   cfg.APIToken,
		limiter: limiter,
	}, nil
}

// RemoveFullyQualifiedURL turns an absolute backend url into the path relative to the consumer api,
// relative urls only lose the consumer api prefix
func (c *Client) RemoveFullyQualifiedURL(raw string) string {
	return RemoveFullyQualifiedURL(raw, c.prefix)
}

// RemoveFullyQualifiedURL strips scheme, host and prefix from raw
func RemoveFullyQualifiedURL(raw string, prefix string) string {
	if raw == "" {
		return raw
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.EscapedPath()
		if u.RawQuery != "" {
			path += "?" + u.RawQuery
		}
	}
	if prefix != "" && prefix != "/" {
		if path == prefix {
			return "/"
		}
		if strings.HasPrefix(path, prefix+"/") {
			path = strings.TrimPrefix(path, prefix)
		}
	}
	return path
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, headers map[string]string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+c.RemoveFullyQualifiedURL(path), reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("consumer api request failed", zap.String("method", method), sanitize.UserInputString("path", path), zap.Error(err))
		return nil, 0, err
	}
	defer res.Body.Close()
	data, err := io.ReadAll(io.LimitReader(res.Body, 10<<20))
	if err != nil {
		return nil, res.StatusCode, err
	}
	c.log.Debug("consumer api request", zap.String("method", method), sanitize.UserInputString("path", path), zap.Int("status", res.StatusCode))
	return data, res.StatusCode, nil
}

// ApplicationDetails fetches an application document, documents carrying an errors key yield ErrRemoteError
func (c *Client) ApplicationDetails(ctx context.Context, appURL string) (map[string]interface{}, error) {
	data, status, err := c.do(ctx, http.MethodGet, appURL, nil, nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidResponse
	}
	if gjson.GetBytes(data, "errors").Exists() || status >= http.StatusBadRequest {
		c.log.Warn("consumer api returned errors", sanitize.UserInputString("app_url", appURL), zap.Int("status", status))
		return nil, ErrRemoteError
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var result map[string]interface{}
	if err := dec.Decode(&result); err != nil {
		return nil, ErrInvalidResponse
	}
	return result, nil
}

// ChangePassword changes the password of the user at the backend
func (c *Client) ChangePassword(ctx context.Context, username string, oldPassword string, newPassword string) (bool, error) {
	body := map[string]string{
		"current_password": oldPassword,
		"password":         newPassword,
	}
	data, status, err := c.do(ctx, http.MethodPost, "/me/change-password", body, map[string]string{
		"X-IBM-Consumer-User": username,
	})
	if err != nil {
		return false, err
	}
	if status >= http.StatusBadRequest || gjson.GetBytes(data, "errors").Exists() {
		msg := gjson.GetBytes(data, "errors.0.message").String()
		c.log.Warn("password change rejected", sanitize.UserInputString("username", username), zap.Int("status", status), sanitize.UserInputString("message", msg))
		return false, nil
	}
	return true, nil
}
