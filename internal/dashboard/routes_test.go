package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tb3/internal/dashboard"
)

func TestRoutes_ResolveToDeclaredView(t *testing.T) {
	r, err := dashboard.NewRouter(dashboard.Routes())
	require.NoError(t, err)

	tests := []struct {
		path   string
		view   dashboard.View
		name   string
		params map[string]string
	}{
		{"/", dashboard.ViewDashboard, "dashboard", map[string]string{}},
		{"/edge/cosmos1abc", dashboard.ViewEdgeDetail, "edgeDetail", map[string]string{"addr": "cosmos1abc"}},
		{"/edge/a%2Fb/", dashboard.ViewEdgeDetail, "edgeDetail", map[string]string{"addr": "a/b"}},
		{"/audit", dashboard.ViewLogsAudit, "audit", map[string]string{}},
		{"/governance/", dashboard.ViewGovernance, "governance", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, params, ok := r.Resolve(tt.path)
			require.True(t, ok)
			require.Equal(t, tt.view, route.View)
			require.Equal(t, tt.name, route.Name)
			require.Equal(t, tt.params, params)
		})
	}

	for _, path := range []string{"/edge", "/edge/", "/edge/a/b", "/nope", "/audit/x"} {
		_, _, ok := r.Resolve(path)
		require.False(t, ok, path)
	}
}

func TestRouter_URL(t *testing.T) {
	r, err := dashboard.NewRouter(dashboard.Routes())
	require.NoError(t, err)

	u, err := r.URL("dashboard", nil)
	require.NoError(t, err)
	require.Equal(t, "/", u)

	u, err = r.URL("edgeDetail", map[string]string{"addr": "a b/c"})
	require.NoError(t, err)
	require.Equal(t, "/edge/a%20b%2Fc", u)

	// round trip
	route, params, ok := r.Resolve(u)
	require.True(t, ok)
	require.Equal(t, "edgeDetail", route.Name)
	require.Equal(t, "a b/c", params["addr"])

	_, err = r.URL("edgeDetail", nil)
	require.Error(t, err)
	_, err = r.URL("missing", nil)
	require.Error(t, err)
}

func TestNewRouter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		routes []dashboard.Route
	}{
		{"duplicate name", []dashboard.Route{
			{Path: "/", Name: "a", View: dashboard.ViewDashboard},
			{Path: "/b", Name: "a", View: dashboard.ViewLogsAudit},
		}},
		{"relative path", []dashboard.Route{{Path: "audit", Name: "a", View: dashboard.ViewLogsAudit}}},
		{"empty segment", []dashboard.Route{{Path: "/a//b", Name: "a", View: dashboard.ViewLogsAudit}}},
		{"unnamed param", []dashboard.Route{{Path: "/edge/:", Name: "a", View: dashboard.ViewEdgeDetail}}},
		{"repeated param", []dashboard.Route{{Path: "/:x/:x", Name: "a", View: dashboard.ViewEdgeDetail}}},
		{"no name", []dashboard.Route{{Path: "/", View: dashboard.ViewDashboard}}},
		{"no view", []dashboard.Route{{Path: "/", Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dashboard.NewRouter(tt.routes)
			require.Error(t, err)
		})
	}
}

func TestRoutes_UniqueNames(t *testing.T) {
	seen := map[string]struct{}{}
	for _, r := range dashboard.Routes() {
		_, dup := seen[r.Name]
		require.False(t, dup, r.Name)
		seen[r.Name] = struct{}{}
	}
	require.Len(t, seen, 4)
}
