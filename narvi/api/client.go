package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/sign"
	"github.com/alapierre/go-narvi-client/narvi/util"
)

// DefaultTimeout bounds every remote call. There are no retries: request ids
// are minted fresh per dispatch, so a retried call is a new call to the
// platform and can duplicate a write that actually committed.
const DefaultTimeout = 30 * time.Second

type Client interface {
	Dispatch(ctx context.Context, path, method string, params Params) (Result, error)
	Get(ctx context.Context, path string, query map[string]any) (Result, error)
	Post(ctx context.Context, path string, payload any) (Result, error)
	Patch(ctx context.Context, path string, payload any) (Result, error)
}

// Params carries the optional request parts. Query and Payload both enter
// the signature in canonical form.
type Params struct {
	Query   map[string]any
	Payload any
}

// Config is assembled once at startup and injected; the signer inside holds
// the process-wide read-only private key.
type Config struct {
	APIKeyID string
	BaseURL  string
	BaasURL  string
	Signer   *sign.Signer
	Timeout  time.Duration
}

type client struct {
	rest *resty.Client
	conf Config
}

func New(conf Config) Client {
	if conf.Timeout == 0 {
		conf.Timeout = DefaultTimeout
	}

	restyClient := resty.New().SetTimeout(conf.Timeout)
	return &client{rest: restyClient, conf: conf}
}

// Dispatch signs and sends one request. Transport failures and non-2xx
// responses come back as a failed Result, never as a Go error; the returned
// error is non-nil only when the request could not be signed at all.
func (c *client) Dispatch(ctx context.Context, path, method string, params Params) (Result, error) {

	fullURL := c.resolve(path)
	requestID := uuid.NewString()

	var query any
	if len(params.Query) > 0 {
		query = params.Query
	}

	signature, err := c.conf.Signer.Sign(fullURL, method, requestID, query, params.Payload)
	if err != nil {
		return Result{}, err
	}

	log.Debugf("dispatch %s %s request_id=%s", strings.ToUpper(method), fullURL, requestID)

	r := c.rest.R().
		SetContext(ctx).
		SetHeader("API-KEY-ID", c.conf.APIKeyID).
		SetHeader("API-REQUEST-ID", requestID).
		SetHeader("API-REQUEST-SIGNATURE", signature).
		SetHeader("Content-Type", "application/json")

	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	if params.Payload != nil {
		r.SetBody(params.Payload)
	}
	for k, v := range params.Query {
		r.SetQueryParam(k, stringify(v))
	}

	resp, err := r.Execute(strings.ToUpper(method), fullURL)
	if err != nil {
		// Network or timeout failure, no HTTP status to report.
		log.Debugf("dispatch %s failed: %v", path, err)
		return Result{Success: false, Error: err.Error()}, nil
	}

	printTraceInfo(fullURL, resp)

	if resp.IsError() {
		return newErrorResult(resp.StatusCode(), resp.Body()), nil
	}

	return Result{Success: true, StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func (c *client) Get(ctx context.Context, path string, query map[string]any) (Result, error) {
	return c.Dispatch(ctx, path, "GET", Params{Query: query})
}

func (c *client) Post(ctx context.Context, path string, payload any) (Result, error) {
	return c.Dispatch(ctx, path, "POST", Params{Payload: payload})
}

func (c *client) Patch(ctx context.Context, path string, payload any) (Result, error) {
	return c.Dispatch(ctx, path, "PATCH", Params{Payload: payload})
}

// resolve picks the host: provisioning paths live on the BaaS base, the rest
// on the standard REST base.
func (c *client) resolve(path string) string {
	if strings.HasPrefix(path, "/baas/") {
		return c.conf.BaasURL + path
	}
	return c.conf.BaseURL + path
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func printTraceInfo(endpoint string, resp *resty.Response) {

	if !util.HttpTraceEnabled() {
		return
	}

	ti := resp.Request.TraceInfo()
	log.WithFields(log.Fields{
		"url":         endpoint,
		"status":      resp.Status(),
		"time":        resp.Time(),
		"conn_time":   ti.ConnTime,
		"server_time": ti.ServerTime,
		"total_time":  ti.TotalTime,
	}).Debug("request trace")
}
