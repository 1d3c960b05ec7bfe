package checker

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	sharederrors "github.com/djcheckup/djcheckup-cli/internal/shared/errors"
)

// FirstCheckID is the result-map key of the bootstrap connectivity probe.
// Catalog entries may name it in DependsOn.
const FirstCheckID = "first_check"

const (
	probeName           = "Can I connect to your site?"
	probeSuccessMessage = "Connected to your site successfully."
	probeFailureMessage = "Unable to connect to your site and no further checks can be performed."
)

// SiteChecker runs an ordered check list against one target. It performs the
// bootstrap probe, materializes the shared SiteContext, and folds the checks
// through the append-only prior-results map used for dependency resolution.
type SiteChecker struct {
	// Logger may be replaced before RunAll; it defaults to a nop logger so
	// library callers stay quiet.
	Logger *zap.SugaredLogger

	url        *url.URL
	client     *Client
	ownsClient bool
}

// NewSiteChecker builds a checker that owns its HTTP client. The client's
// idle connections are released when RunAll finishes.
func NewSiteChecker(rawURL string, cfg ClientConfig) (*SiteChecker, error) {
	u, err := parseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	return &SiteChecker{
		Logger:     zap.NewNop().Sugar(),
		url:        u,
		client:     NewClient(cfg),
		ownsClient: true,
	}, nil
}

// NewSiteCheckerWithClient builds a checker around a caller-supplied client.
// Ownership stays with the caller; the checker never closes it.
func NewSiteCheckerWithClient(rawURL string, client *Client) (*SiteChecker, error) {
	u, err := parseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	return &SiteChecker{
		Logger: zap.NewNop().Sugar(),
		url:    u,
		client: client,
	}, nil
}

func parseTarget(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, sharederrors.ErrEmptyTarget
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse target URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", sharederrors.ErrInvalidScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", sharederrors.ErrInvalidTarget)
	}
	return u, nil
}

// Probe issues the bootstrap GET. Any transport failure or non-2xx status
// yields a FAILURE response and a nil context; on success the returned
// SiteContext snapshots the final response for all remaining checks.
func (s *SiteChecker) Probe(ctx context.Context) (CheckResponse, *SiteContext) {
	s.Logger.Infow("running connectivity probe", "url", s.url.String())

	ex, err := s.client.Get(ctx, s.url)
	if err != nil {
		s.Logger.Warnw("connectivity probe failed", "url", s.url.String(), "error", err)
		return CheckResponse{
			Name:          probeName,
			Outcome:       OutcomeFailure,
			SeverityScore: SeverityHigh,
			Message:       probeFailureMessage,
		}, nil
	}
	if !ex.IsSuccess() {
		s.Logger.Warnw("connectivity probe returned non-success status",
			"url", s.url.String(), "status", ex.StatusCode)
		return CheckResponse{
			Name:          probeName,
			Outcome:       OutcomeFailure,
			SeverityScore: SeverityHigh,
			Message:       probeFailureMessage,
		}, nil
	}

	site := &SiteContext{
		URL:      s.url,
		FinalURL: ex.FinalURL,
		Header:   ex.Header,
		Cookies:  ex.Cookies,
		Body:     ex.Body,
		Client:   s.client,
	}

	return CheckResponse{
		Name:          probeName,
		Outcome:       OutcomeSuccess,
		SeverityScore: SeverityHigh,
		Message:       probeSuccessMessage,
	}, site
}

// RunAll probes the target and then executes the definitions in the supplied
// order. If the probe fails the report contains only that one entry and no
// check is evaluated. RunAll never returns an error: every fault, including
// per-check transport failures, is captured as data in the report.
func (s *SiteChecker) RunAll(ctx context.Context, defs []Definition) Report {
	if s.ownsClient {
		defer s.client.CloseIdleConnections()
	}

	first, site := s.Probe(ctx)
	report := Report{
		URL:          s.url.String(),
		CheckResults: []CheckResponse{first},
	}
	if first.Outcome == OutcomeFailure {
		return report
	}

	prior := map[string]CheckResponse{FirstCheckID: first}
	for _, def := range defs {
		resp := Run(ctx, def, site, prior)
		report.CheckResults = append(report.CheckResults, resp)
		prior[def.Meta().ID] = resp
		s.Logger.Debugw("check finished",
			"check", def.Meta().ID, "result", string(resp.Outcome))
	}

	s.Logger.Infow("site check complete",
		"url", s.url.String(), "checks", len(report.CheckResults),
		"failure_score", report.FailureScore())
	return report
}

// RunOptions configures the RunChecks convenience entry point.
type RunOptions struct {
	// Client, when set, is borrowed for the run and never closed.
	Client *Client
	// Config builds an owned client when Client is nil. A nil Config means
	// DefaultClientConfig; an explicit zero value is honored as given.
	Config *ClientConfig
	// Checks defaults to DefaultChecks when nil.
	Checks []Definition
	// Logger defaults to a nop logger.
	Logger *zap.SugaredLogger
}

// RunChecks is the library entry point: it builds a SiteChecker for url,
// runs the configured (or default) catalog, and returns the report. Only
// construction problems (a bad target URL) surface as an error.
func RunChecks(ctx context.Context, rawURL string, opts RunOptions) (Report, error) {
	var (
		sc  *SiteChecker
		err error
	)
	if opts.Client != nil {
		sc, err = NewSiteCheckerWithClient(rawURL, opts.Client)
	} else {
		cfg := DefaultClientConfig()
		if opts.Config != nil {
			cfg = *opts.Config
		}
		sc, err = NewSiteChecker(rawURL, cfg)
	}
	if err != nil {
		return Report{}, err
	}
	if opts.Logger != nil {
		sc.Logger = opts.Logger
	}

	defs := opts.Checks
	if defs == nil {
		defs = DefaultChecks()
	}
	return sc.RunAll(ctx, defs), nil
}
