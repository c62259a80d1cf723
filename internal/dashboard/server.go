package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tb3/internal/config"
	"tb3/pkg/domain"
	"tb3/pkg/logger"
	"tb3/pkg/serrors"
	"tb3/pkg/tb3"
)

const (
	// recentLimit bounds the task and log lists of overview pages.
	recentLimit = 25

	flashParam = "flash"
	errorParam = "error"
)

// Options configures the dashboard server.
type Options struct {
	// RequestTimeout bounds the backend calls made for a single page.
	RequestTimeout time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{RequestTimeout: cfg.Dashboard.RequestTimeout}
}

// Server renders dashboard pages. It implements http.Handler.
type Server struct {
	client  tb3.Client
	router  *Router
	pages   *templateSet
	timeout time.Duration
}

// New validates the route table and parses every page template.
func New(client tb3.Client, opts Options) (*Server, error) {
	router, err := NewRouter(Routes())
	if err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}
	pages, err := newTemplateSet(router)
	if err != nil {
		return nil, err
	}

	return &Server{
		client:  client,
		router:  router,
		pages:   pages,
		timeout: opts.RequestTimeout,
	}, nil
}

// Router returns the route table the server resolves against.
func (s *Server) Router() *Router { return s.router }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, params, ok := s.router.Resolve(r.URL.EscapedPath())
	if !ok {
		s.render(w, r, http.StatusNotFound, notFoundPage, PageData{Title: "Not found"})

		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.view(ctx, w, r, route, params)
	case http.MethodPost:
		s.action(ctx, w, r, route)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *Server) view(ctx context.Context, w http.ResponseWriter, r *http.Request, route Route,
	params map[string]string) {
	var (
		data  any
		title string
		err   error
	)

	switch route.View {
	case ViewDashboard:
		title = "Dashboard"
		data, err = s.dashboard(ctx)
	case ViewEdgeDetail:
		title = "Edge " + params["addr"]
		data, err = s.edgeDetail(ctx, params["addr"], r.URL.Query().Get("task"))
	case ViewLogsAudit:
		title = "Logs audit"
		data, err = s.audit(ctx, r.URL.Query().Get("task"))
	case ViewGovernance:
		title = "Governance"
		data, err = s.governance(ctx)
	default:
		err = fmt.Errorf("no page for view %q", route.View)
	}
	if err != nil {
		s.renderError(w, r, err)

		return
	}

	q := r.URL.Query()
	s.render(w, r, http.StatusOK, pageFiles[route.View], PageData{
		Title:  title,
		Active: route.View,
		Flash:  q.Get(flashParam),
		Error:  q.Get(errorParam),
		Data:   data,
	})
}

// action handles the form posts of a page and redirects back to it.
func (s *Server) action(ctx context.Context, w http.ResponseWriter, r *http.Request, route Route) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, route, "", "invalid form")

		return
	}

	var (
		flash string
		err   error
	)
	switch route.View {
	case ViewGovernance:
		flash, err = s.decide(ctx, r.PostForm)
	case ViewDashboard:
		flash, err = s.seed(ctx, r.PostForm)
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

		return
	}
	if err != nil {
		logger.Warn(ctx, "dashboard action failed", zap.String("route", route.Name), zap.Error(err))
		s.redirect(w, r, route, "", errorMessage(err))

		return
	}

	s.redirect(w, r, route, flash, "")
}

func (s *Server) decide(ctx context.Context, form url.Values) (string, error) {
	id := form.Get("id")
	if id == "" {
		return "", serrors.With(serrors.ErrBadRequest, "missing proposal id")
	}

	switch form.Get("action") {
	case "approve":
		if _, err := s.client.ApproveProposal(ctx, id); err != nil {
			return "", err
		}

		return "proposal " + id + " approved", nil
	case "reject":
		if _, err := s.client.RejectProposal(ctx, id, form.Get("reason")); err != nil {
			return "", err
		}

		return "proposal " + id + " rejected", nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown action %q", form.Get("action"))
	}
}

func (s *Server) seed(ctx context.Context, form url.Values) (string, error) {
	if form.Get("action") != "seed" {
		return "", serrors.With(serrors.ErrBadRequest, "unknown action %q", form.Get("action"))
	}

	req := domain.DefaultDemoSeedRequest()
	if v := form.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", serrors.With(serrors.ErrBadRequest, "seed must be an integer")
		}
		req.Seed = seed
	}
	req.BadEdgeMode = form.Get("bad_edge_mode") != ""

	res, err := s.client.DemoSeed(ctx, req)
	if err != nil {
		return "", err
	}
	if !res.Queued {
		return "an identical seed run is already pending", nil
	}

	return fmt.Sprintf("seed run %d queued", res.Request.Seed), nil
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, route Route, flash, errMsg string) {
	target, err := s.router.URL(route.Name, nil)
	if err != nil {
		target = "/"
	}

	q := url.Values{}
	if flash != "" {
		q.Set(flashParam, flash)
	}
	if errMsg != "" {
		q.Set(errorParam, errMsg)
	}
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, serrors.ErrNotFound) {
		s.render(w, r, http.StatusNotFound, notFoundPage, PageData{Title: "Not found", Error: errorMessage(err)})

		return
	}

	// unavailable and timeout are passed on, anything else is the backend's fault
	status := serrors.HTTPStatus(err)
	if status != http.StatusServiceUnavailable && status != http.StatusGatewayTimeout {
		status = http.StatusBadGateway
	}
	logger.Error(r.Context(), "could not load dashboard page", zap.String("path", r.URL.Path), zap.Error(err))
	s.render(w, r, status, errorPage, PageData{Title: "Backend error", Error: errorMessage(err)})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data PageData) {
	var buf bytes.Buffer
	if err := s.pages.render(&buf, page, data); err != nil {
		logger.Error(r.Context(), "could not render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

func errorMessage(err error) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return err.Error()
}

// newestFirst returns at most n items from the end of items, newest first.
func newestFirst[T any](items []T, n int) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	if len(out) > n {
		out = out[:n]
	}

	return out
}
