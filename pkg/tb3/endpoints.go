package tb3

import (
	"net/http"
	"net/url"
	"strings"

	"tb3/pkg/serrors"
)

// Operation names of the tb3 REST surface.
const (
	OpHealth          = "health"
	OpAccounts        = "accounts"
	OpEdges           = "edges"
	OpEdge            = "edge"
	OpTasks           = "tasks"
	OpTask            = "task"
	OpLogsByTask      = "logsByTask"
	OpLogsAll         = "logsAll"
	OpAuditLogs       = "auditLogs"
	OpProposals       = "proposals"
	OpApproveProposal = "approveProposal"
	OpRejectProposal  = "rejectProposal"
	OpPropagations    = "propagations"
	OpDemoStatus      = "demoStatus"
	OpDemoSeed        = "demoSeed"
)

// Endpoint binds an operation name to its HTTP method and path template.
// Path placeholders use the {name} form of net/http patterns.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

//nolint: gochecknoglobals
var endpoints = []Endpoint{
	{Name: OpHealth, Method: http.MethodGet, Path: "/health"},
	{Name: OpAccounts, Method: http.MethodGet, Path: "/accounts"},
	{Name: OpEdges, Method: http.MethodGet, Path: "/edges"},
	{Name: OpEdge, Method: http.MethodGet, Path: "/edges/{addr}"},
	{Name: OpTasks, Method: http.MethodGet, Path: "/tasks"},
	{Name: OpTask, Method: http.MethodGet, Path: "/tasks/{taskId}"},
	{Name: OpLogsByTask, Method: http.MethodGet, Path: "/tasks/{taskId}/logs"},
	{Name: OpLogsAll, Method: http.MethodGet, Path: "/logs"},
	{Name: OpAuditLogs, Method: http.MethodGet, Path: "/audit/tasks/{taskId}/logs"},
	{Name: OpProposals, Method: http.MethodGet, Path: "/governance/proposals"},
	{Name: OpApproveProposal, Method: http.MethodPost, Path: "/governance/proposals/{id}/approve"},
	{Name: OpRejectProposal, Method: http.MethodPost, Path: "/governance/proposals/{id}/reject"},
	{Name: OpPropagations, Method: http.MethodGet, Path: "/reputation/propagations"},
	{Name: OpDemoStatus, Method: http.MethodGet, Path: "/demo/status"},
	{Name: OpDemoSeed, Method: http.MethodPost, Path: "/demo/seed"},
}

// Endpoints returns every operation of the REST surface in a stable order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)

	return out
}

// Lookup finds an endpoint by operation name.
func Lookup(name string) (Endpoint, bool) {
	for _, e := range endpoints {
		if e.Name == name {
			return e, true
		}
	}

	return Endpoint{}, false
}

// Params returns the placeholder names of the path template, in order.
func (e Endpoint) Params() []string {
	var out []string
	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return out
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return out
		}
		out = append(out, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Expand substitutes params into the path template in order, path-escaping
// each value.
func (e Endpoint) Expand(params ...string) (string, error) {
	names := e.Params()
	if len(names) != len(params) {
		return "", serrors.With(serrors.ErrBadRequest,
			"%s expects %d parameter(s), got %d", e.Name, len(names), len(params))
	}

	path := e.Path
	for i, name := range names {
		if params[i] == "" {
			return "", serrors.With(serrors.ErrBadRequest, "%s: empty value for %s", e.Name, name)
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(params[i]), 1)
	}

	return path, nil
}

// Pattern returns the net/http ServeMux pattern of the endpoint, e.g.
// "GET /edges/{addr}".
func (e Endpoint) Pattern() string {
	return e.Method + " " + e.Path
}
