// Package client provides REST access to the FastBag admin API. It owns the
// transport concerns: bearer auth, request ids, multipart uploads and the
// normalization of the API's two list response shapes.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client issues authenticated calls against one API base URL.
type Client struct {
	base string
	http *resty.Client
}

type Option func(*Client)

// WithToken sets the Authorization token.
func WithToken(tok string) Option {
	return func(c *Client) {
		c.http.SetAuthToken(tok)
	}
}

// WithTimeout bounds every request. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// New returns a Client for the given base URL.
func New(base string, opts ...Option) *Client {
	c := &Client{base: base, http: resty.New().SetTimeout(30 * time.Second)}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) r(ctx context.Context) *resty.Request {
	// The API always answers JSON but is sloppy about Content-Type, so
	// response parsing is forced rather than sniffed.
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		ForceContentType("application/json")
}

// Credentials is the login endpoint's response.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       FlexID `json:"user_id"`
}

// Login exchanges a mobile number and password for a token pair. The bearer
// token is installed on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, mobileNumber, password string) (Credentials, error) {
	var creds Credentials
	resp, err := c.r(ctx).
		SetBody(map[string]string{"mobile_number": mobileNumber, "password": password}).
		SetResult(&creds).
		Post(c.base + "/adminapp/login/")
	if err != nil {
		return Credentials{}, err
	}
	if resp.IsError() {
		return Credentials{}, apiErr(resp)
	}
	if creds.AccessToken == "" {
		return Credentials{}, fmt.Errorf("login response carried no access token")
	}
	c.http.SetAuthToken(creds.AccessToken)
	return creds, nil
}

// FetchPage requests one page of a list resource and normalizes the response
// into a PageResult.
func (c *Client) FetchPage(ctx context.Context, path string, q PageQuery) (PageResult, error) {
	req := c.r(ctx).
		SetQueryParam("page", strconv.Itoa(q.Page)).
		SetQueryParam("page_size", strconv.Itoa(q.PageSize))
	if q.Ordering != "" {
		req.SetQueryParam("ordering", q.Ordering)
	}
	for k, v := range q.Filters {
		req.SetQueryParam(k, v)
	}
	resp, err := req.Get(c.base + path)
	if err != nil {
		return PageResult{}, err
	}
	if resp.IsError() {
		return PageResult{}, apiErr(resp)
	}
	return normalizePage(resp.Body())
}

// Get fetches a single resource into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req := c.r(ctx)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Get(c.base + path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// Post creates a resource. When out is non-nil the echoed record is decoded
// into it.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

// Patch partially updates a resource. Endpoints that echo the updated record
// decode into out; status-only endpoints succeed on 200/204 with an empty
// body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPatch, path, body, out)
}

// Put replaces a resource.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req := c.r(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Execute(method, c.base+path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// Delete removes a resource. 200 and 204 both count as success.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.r(ctx).Delete(c.base + path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// PostMultipart submits form fields plus one file part, used by endpoints
// that accept an attached image (carousel ads, product photos).
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	req := c.r(ctx).SetFormData(fields)
	if file != nil {
		req.SetFileReader(fileField, fileName, file)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(c.base + path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

func apiErr(resp *resty.Response) error {
	msg := apiMessage(resp.Body())
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

// apiMessage pulls a human message out of an error body when the API
// provides one.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Detail != "":
		return payload.Detail
	default:
		return payload.Error
	}
}
