// Package dashboard serves the server-rendered tb3 dashboard. Pages are
// resolved through a history-mode route table and rendered from data fetched
// with a tb3.Client.
package dashboard

import (
	"fmt"
	"net/url"
	"strings"
)

// View names the page a route renders.
type View string

const (
	ViewDashboard  View = "Dashboard"
	ViewEdgeDetail View = "EdgeDetail"
	ViewLogsAudit  View = "LogsAudit"
	ViewGovernance View = "Governance"
)

// Route maps a path template to a named view. Path segments starting with ':'
// capture a parameter.
type Route struct {
	Path string
	Name string
	View View
}

// Routes returns the dashboard route table.
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "dashboard", View: ViewDashboard},
		{Path: "/edge/:addr", Name: "edgeDetail", View: ViewEdgeDetail},
		{Path: "/audit", Name: "audit", View: ViewLogsAudit},
		{Path: "/governance", Name: "governance", View: ViewGovernance},
	}
}

type compiledRoute struct {
	Route
	segments []string
}

// Router resolves request paths against a validated route table.
type Router struct {
	routes []compiledRoute
	byName map[string]int
}

// NewRouter validates routes and returns a Router. Names must be unique,
// paths rooted at "/" and parameter names non-empty and unique per path.
func NewRouter(routes []Route) (*Router, error) {
	r := &Router{byName: make(map[string]int, len(routes))}

	for i, rt := range routes {
		if rt.Name == "" {
			return nil, fmt.Errorf("route %d has no name", i)
		}
		if rt.View == "" {
			return nil, fmt.Errorf("route %q has no view", rt.Name)
		}
		if _, ok := r.byName[rt.Name]; ok {
			return nil, fmt.Errorf("duplicate route name %q", rt.Name)
		}
		segments, err := splitTemplate(rt.Path)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", rt.Name, err)
		}

		r.byName[rt.Name] = len(r.routes)
		r.routes = append(r.routes, compiledRoute{Route: rt, segments: segments})
	}

	return r, nil
}

func splitTemplate(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("path %q must start with /", path)
	}
	if path == "/" {
		return nil, nil
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	seen := map[string]struct{}{}
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("path %q has an empty segment", path)
		}
		name, ok := strings.CutPrefix(s, ":")
		if !ok {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("path %q has an unnamed parameter", path)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("path %q repeats parameter %q", path, name)
		}
		seen[name] = struct{}{}
	}

	return segments, nil
}

// Routes returns the validated table in declaration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt.Route)
	}

	return out
}

// Resolve matches path against the table and returns the first matching
// route with its unescaped parameters. A trailing slash is ignored.
func (r *Router) Resolve(path string) (Route, map[string]string, bool) {
	var parts []string
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		parts = strings.Split(trimmed, "/")
	}

	for _, rt := range r.routes {
		if len(rt.segments) != len(parts) {
			continue
		}
		params, ok := match(rt.segments, parts)
		if ok {
			return rt.Route, params, true
		}
	}

	return Route{}, nil, false
}

func match(segments, parts []string) (map[string]string, bool) {
	params := map[string]string{}
	for i, s := range segments {
		name, isParam := strings.CutPrefix(s, ":")
		if !isParam {
			if s != parts[i] {
				return nil, false
			}

			continue
		}
		v, err := url.PathUnescape(parts[i])
		if err != nil || v == "" {
			return nil, false
		}
		params[name] = v
	}

	return params, true
}

// URL builds the path of the named route. Every parameter of the route must
// be given and is path escaped.
func (r *Router) URL(name string, params map[string]string) (string, error) {
	i, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	rt := r.routes[i]
	if len(rt.segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, s := range rt.segments {
		b.WriteByte('/')
		p, isParam := strings.CutPrefix(s, ":")
		if !isParam {
			b.WriteString(s)

			continue
		}
		v := params[p]
		if v == "" {
			return "", fmt.Errorf("route %q needs parameter %q", name, p)
		}
		b.WriteString(url.PathEscape(v))
	}

	return b.String(), nil
}
