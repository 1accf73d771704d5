package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
	"github.com/tcfw/starnotary/internal/config"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/storage"
)

// APIError is a non 2xx response from the daemon
type APIError struct {
	Status   int
	Message  string
	Findings []storage.Finding
}

func (e *APIError) Error() string {
	return fmt.Sprintf("daemon responded %d: %s", e.Status, e.Message)
}

type Client struct {
	base    *url.URL
	hc      *http.Client
	retries int
	bo      backoff.Backoff
}

func NewClient() (*Client, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	return NewClientWithURL(cfg.API().DaemonURL.String(), cfg.API().Retries)
}

func NewClientWithURL(base string, retries int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrap(err, "parsing daemon address")
	}

	return &Client{
		base:    u,
		hc:      &http.Client{Timeout: 30 * time.Second},
		retries: retries,
		bo: backoff.Backoff{
			Min:    100 * time.Millisecond,
			Max:    5 * time.Second,
			Factor: 2,
			Jitter: true,
		},
	}, nil
}

func (c *Client) RequestValidation(ctx context.Context, address string) (*ValidationResponse, error) {
	res := &ValidationResponse{}
	if err := c.do(ctx, http.MethodPost, "/requestValidation", &ValidationRequest{Address: address}, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) SubmitStar(ctx context.Context, req *SubmitStarRequest) (*BlockResponse, error) {
	res := &BlockResponse{}
	if err := c.do(ctx, http.MethodPost, "/submitstar", req, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) BlockByHeight(ctx context.Context, h uint64) (*BlockResponse, error) {
	res := &BlockResponse{}
	if err := c.do(ctx, http.MethodGet, "/block/height/"+strconv.FormatUint(h, 10), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) BlockByHash(ctx context.Context, hash string) (*BlockResponse, error) {
	res := &BlockResponse{}
	if err := c.do(ctx, http.MethodGet, "/block/hash/"+hash, nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) StarsByOwner(ctx context.Context, address string) ([]*storage.Star, error) {
	res := []*storage.Star{}
	if err := c.do(ctx, http.MethodGet, "/blocks/"+address, nil, &res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) Chain(ctx context.Context) ([]*BlockResponse, error) {
	res := []*BlockResponse{}
	if err := c.do(ctx, http.MethodGet, "/chain", nil, &res); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) Height(ctx context.Context) (int64, error) {
	res := &HeightResponse{}
	if err := c.do(ctx, http.MethodGet, "/chain/height", nil, res); err != nil {
		return 0, err
	}

	return res.Height, nil
}

func (c *Client) Validate(ctx context.Context) (*ValidateResponse, error) {
	res := &ValidateResponse{}
	if err := c.do(ctx, http.MethodGet, "/validate", nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// do sends the request, retrying with backoff only while the daemon cannot
// be reached. Responses, including errors, are never retried.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		body = b
	}

	u := c.base.ResolveReference(&url.URL{Path: path})
	bo := c.bo

	var res *http.Response
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
		if err != nil {
			return errors.Wrap(err, "building request")
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		res, err = c.hc.Do(req)
		if err == nil {
			break
		}

		if attempt >= c.retries || ctx.Err() != nil {
			return errors.Wrap(err, "contacting daemon")
		}

		d := bo.Duration()
		logging.Entry().
			WithField("waiting", d).
			WithField("attempt", attempt+1).
			Debug("daemon unreachable, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		e := &ErrorResponse{}
		if err := json.Unmarshal(data, e); err != nil || e.Error == "" {
			e.Error = http.StatusText(res.StatusCode)
		}
		return &APIError{Status: res.StatusCode, Message: e.Error, Findings: e.Findings}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "decoding response")
	}

	return nil
}
