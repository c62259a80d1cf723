// Package tb3http provides a tb3.Client implementation that talks to the tb3
// backend over HTTP.
package tb3http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	"tb3/pkg/domain"
	"tb3/pkg/serrors"
	"tb3/pkg/tb3"
)

// Client issues requests against the tb3 REST surface and fulfills the
// tb3.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the HTTP requests
	baseURL    string       // baseURL is the backend root without a trailing slash
	token      string       // token is sent as a bearer token when not empty
}

// Ensure Client conforms to the tb3.Client interface at compile time.
var _ tb3.Client = (*Client)(nil)

// New constructs a Client for the backend at baseURL. An empty token sends no
// Authorization header.
func New(httpClient *http.Client, baseURL, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}, nil
}

// Call invokes the named operation with path params, an optional query and
// JSON body, and returns the raw response body.
func (c *Client) Call(ctx context.Context, op string, params []string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, op, params, query, body)
}

func (c *Client) do(ctx context.Context, op string, params []string, query url.Values, body any) ([]byte, error) {
	ep, ok := tb3.Lookup(op)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown operation %q", op)
	}
	path, err := ep.Expand(params...)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := sonic.ConfigStd.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(op, resp.StatusCode, b)
	}

	return b, nil
}

// responseError converts a non-2xx response into a semantic error. The kind
// comes from the body's code when the backend sent one, from the status otherwise.
func responseError(op string, status int, body []byte) error {
	kind := serrors.FromHTTPStatus(status)
	msg := strings.TrimSpace(string(body))

	var eb tb3.ErrorBody
	if err := sonic.ConfigStd.Unmarshal(body, &eb); err == nil && (eb.Code != "" || eb.Message != "") {
		if k, ok := serrors.ParseKind(eb.Code); ok {
			kind = k
		}
		msg = eb.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	return serrors.With(kind, "%s failed: %s", op, msg)
}

func (c *Client) get(ctx context.Context, op string, out any, params ...string) error {
	b, err := c.do(ctx, op, params, nil, nil)
	if err != nil {
		return err
	}

	return decode(b, out)
}

func decode(b []byte, out any) error {
	if err := sonic.ConfigStd.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// Health implements tb3.Client.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var out domain.Health
	if err := c.get(ctx, tb3.OpHealth, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Accounts implements tb3.Client.
func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	var env tb3.AccountsEnvelope
	if err := c.get(ctx, tb3.OpAccounts, &env); err != nil {
		return nil, err
	}

	return env.Accounts, nil
}

// Edges implements tb3.Client.
func (c *Client) Edges(ctx context.Context) ([]domain.Edge, error) {
	var env tb3.EdgesEnvelope
	if err := c.get(ctx, tb3.OpEdges, &env); err != nil {
		return nil, err
	}

	return env.Edges, nil
}

// Edge implements tb3.Client.
func (c *Client) Edge(ctx context.Context, addr string) (*domain.Edge, error) {
	var env tb3.EdgeEnvelope
	if err := c.get(ctx, tb3.OpEdge, &env, addr); err != nil {
		return nil, err
	}

	return &env.Edge, nil
}

// Tasks implements tb3.Client.
func (c *Client) Tasks(ctx context.Context) ([]domain.Task, error) {
	var env tb3.TasksEnvelope
	if err := c.get(ctx, tb3.OpTasks, &env); err != nil {
		return nil, err
	}

	return env.Tasks, nil
}

// Task implements tb3.Client.
func (c *Client) Task(ctx context.Context, taskID string) (*domain.Task, error) {
	var env tb3.TaskEnvelope
	if err := c.get(ctx, tb3.OpTask, &env, taskID); err != nil {
		return nil, err
	}

	return &env.Task, nil
}

// LogsByTask implements tb3.Client.
func (c *Client) LogsByTask(ctx context.Context, taskID string) ([]domain.LogSummary, error) {
	var env tb3.LogsEnvelope
	if err := c.get(ctx, tb3.OpLogsByTask, &env, taskID); err != nil {
		return nil, err
	}

	return env.Log, nil
}

// LogsAll implements tb3.Client.
func (c *Client) LogsAll(ctx context.Context) ([]domain.LogSummary, error) {
	var env tb3.LogsEnvelope
	if err := c.get(ctx, tb3.OpLogsAll, &env); err != nil {
		return nil, err
	}

	return env.Log, nil
}

// AuditLogs implements tb3.Client.
func (c *Client) AuditLogs(ctx context.Context, taskID string) (*domain.AuditReport, error) {
	var out domain.AuditReport
	if err := c.get(ctx, tb3.OpAuditLogs, &out, taskID); err != nil {
		return nil, err
	}

	return &out, nil
}

// Proposals implements tb3.Client.
func (c *Client) Proposals(ctx context.Context) ([]domain.Proposal, error) {
	var env tb3.ProposalsEnvelope
	if err := c.get(ctx, tb3.OpProposals, &env); err != nil {
		return nil, err
	}

	return env.Proposals, nil
}

// ApproveProposal implements tb3.Client.
func (c *Client) ApproveProposal(ctx context.Context, id string) (*domain.TxResult, error) {
	b, err := c.do(ctx, tb3.OpApproveProposal, []string{id}, nil, nil)
	if err != nil {
		return nil, err
	}

	var out domain.TxResult
	if err := decode(b, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RejectProposal implements tb3.Client. An empty reason is left out of the query.
func (c *Client) RejectProposal(ctx context.Context, id, reason string) (*domain.TxResult, error) {
	var query url.Values
	if reason != "" {
		query = url.Values{tb3.ReasonParam: {reason}}
	}

	b, err := c.do(ctx, tb3.OpRejectProposal, []string{id}, query, nil)
	if err != nil {
		return nil, err
	}

	var out domain.TxResult
	if err := decode(b, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Propagations implements tb3.Client.
func (c *Client) Propagations(ctx context.Context) ([]domain.Propagation, error) {
	var env tb3.PropagationsEnvelope
	if err := c.get(ctx, tb3.OpPropagations, &env); err != nil {
		return nil, err
	}

	return env.Propagations, nil
}

// DemoStatus implements tb3.Client.
func (c *Client) DemoStatus(ctx context.Context) (*domain.DemoStatus, error) {
	var out domain.DemoStatus
	if err := c.get(ctx, tb3.OpDemoStatus, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DemoSeed implements tb3.Client.
func (c *Client) DemoSeed(ctx context.Context, req domain.DemoSeedRequest) (*domain.DemoSeedResult, error) {
	b, err := c.do(ctx, tb3.OpDemoSeed, nil, nil, req)
	if err != nil {
		return nil, err
	}

	var out domain.DemoSeedResult
	if err := decode(b, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
