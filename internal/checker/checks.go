package checker

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sharederrors "github.com/djcheckup/djcheckup-cli/internal/shared/errors"
)

// CheckMeta carries the declarative fields shared by every check variant.
// Definitions are constructed once and never mutated.
type CheckMeta struct {
	// ID identifies the check within a run, unique across the catalog.
	ID string
	// Name is the human-readable label shown in reports.
	Name string
	// DependsOn optionally names an earlier check's ID. If that check failed
	// or never ran, this check is skipped without evaluating its predicate.
	DependsOn string
	// Success is the raw predicate value that counts as a SUCCESS outcome.
	// Checks asserting that something is absent set it to false.
	Success bool
	// Severity is reported on both success and failure; it scores the
	// importance of the check, not its outcome.
	Severity       Severity
	SuccessMessage string
	FailureMessage string
}

// Definition is the contract every check variant implements. Evaluate is the
// variant-specific predicate: pure over the site context, except that some
// variants issue one extra request through the shared client.
type Definition interface {
	Meta() *CheckMeta
	Evaluate(ctx context.Context, site *SiteContext) (bool, error)
}

// Run executes one definition against the site context. It is the shared,
// non-overridable wrapper around Evaluate: it applies the dependency-skip
// rule, maps the raw predicate value through the declared expected value,
// and downgrades an Evaluate error to a FAILURE response so a single broken
// secondary request never aborts the run.
//
// Dependency rule: a missing prior result or an upstream FAILURE triggers a
// skip. An upstream SKIPPED result satisfies the dependency.
func Run(ctx context.Context, def Definition, site *SiteContext, prior map[string]CheckResponse) CheckResponse {
	m := def.Meta()

	if m.DependsOn != "" {
		dep, ok := prior[m.DependsOn]
		if !ok || dep.Outcome == OutcomeFailure {
			return CheckResponse{
				Name:          m.Name,
				Outcome:       OutcomeSkipped,
				SeverityScore: SeverityNone,
				Message:       fmt.Sprintf("Check skipped due to failed or missing dependency: %s", m.DependsOn),
			}
		}
	}

	raw, err := def.Evaluate(ctx, site)
	if err != nil {
		return CheckResponse{
			Name:          m.Name,
			Outcome:       OutcomeFailure,
			SeverityScore: m.Severity,
			Message:       fmt.Sprintf("Check could not complete: %v", err),
		}
	}

	outcome := OutcomeFailure
	message := m.FailureMessage
	if raw == m.Success {
		outcome = OutcomeSuccess
		message = m.SuccessMessage
	}

	return CheckResponse{
		Name:          m.Name,
		Outcome:       outcome,
		SeverityScore: m.Severity,
		Message:       message,
	}
}

// HeaderCheck asserts that a response header is present, optionally with a
// specific value. Name and value comparisons are case-insensitive.
type HeaderCheck struct {
	CheckMeta
	HeaderName  string
	HeaderValue string
}

func (c *HeaderCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *HeaderCheck) Evaluate(_ context.Context, site *SiteContext) (bool, error) {
	values := site.Header.Values(c.HeaderName)
	if len(values) == 0 {
		return false, nil
	}
	if c.HeaderValue == "" {
		return true, nil
	}
	for _, v := range values {
		if strings.EqualFold(v, c.HeaderValue) {
			return true, nil
		}
	}
	return false, nil
}

// ContentCheck searches for a substring in the bootstrap body, or in the body
// of a fresh GET to Path when one is given. An empty body never matches.
type ContentCheck struct {
	CheckMeta
	Content string
	Path    string
}

func (c *ContentCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *ContentCheck) Evaluate(ctx context.Context, site *SiteContext) (bool, error) {
	body := site.Body
	if c.Path != "" {
		ex, err := site.Client.Get(ctx, JoinPath(site.URL, c.Path))
		if err != nil {
			return false, err
		}
		body = ex.Body
	}
	if body == "" {
		return false, nil
	}
	return strings.Contains(body, c.Content), nil
}

// CookieCheck asserts that a named cookie was set, optionally with an exact
// value.
type CookieCheck struct {
	CheckMeta
	CookieName  string
	CookieValue string
}

func (c *CookieCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *CookieCheck) Evaluate(_ context.Context, site *SiteContext) (bool, error) {
	ck := site.Cookie(c.CookieName)
	if ck == nil {
		return false, nil
	}
	if c.CookieValue != "" {
		return ck.Value == c.CookieValue, nil
	}
	return true, nil
}

// CookieHTTPOnlyCheck asserts that a named cookie exists and carries the
// HttpOnly flag. An absent cookie evaluates false.
type CookieHTTPOnlyCheck struct {
	CheckMeta
	CookieName string
}

func (c *CookieHTTPOnlyCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *CookieHTTPOnlyCheck) Evaluate(_ context.Context, site *SiteContext) (bool, error) {
	ck := site.Cookie(c.CookieName)
	return ck != nil && ck.HttpOnly, nil
}

// CookieSecureCheck asserts that a named cookie exists and carries the
// Secure flag. An absent cookie evaluates false.
type CookieSecureCheck struct {
	CheckMeta
	CookieName string
}

func (c *CookieSecureCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *CookieSecureCheck) Evaluate(_ context.Context, site *SiteContext) (bool, error) {
	ck := site.Cookie(c.CookieName)
	return ck != nil && ck.Secure, nil
}

// CookieSameSiteCheck asserts that a named cookie exists and its SameSite
// attribute equals SameSiteValue (Strict, Lax, or None).
type CookieSameSiteCheck struct {
	CheckMeta
	CookieName    string
	SameSiteValue string
}

func (c *CookieSameSiteCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *CookieSameSiteCheck) Evaluate(_ context.Context, site *SiteContext) (bool, error) {
	want, err := ParseSameSite(c.SameSiteValue)
	if err != nil {
		return false, err
	}
	ck := site.Cookie(c.CookieName)
	return ck != nil && ck.SameSite == want, nil
}

// ParseSameSite maps a SameSite label to its net/http mode.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("%w: %q", sharederrors.ErrInvalidSameSite, s)
}

// PathCheck issues a fresh GET to Path. With StatusCode set it asserts that
// exact status; otherwise any 2xx counts as true.
type PathCheck struct {
	CheckMeta
	Path       string
	StatusCode int
}

func (c *PathCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *PathCheck) Evaluate(ctx context.Context, site *SiteContext) (bool, error) {
	ex, err := site.Client.Get(ctx, JoinPath(site.URL, c.Path))
	if err != nil {
		return false, err
	}
	if c.StatusCode != 0 {
		return ex.StatusCode == c.StatusCode, nil
	}
	return ex.IsSuccess(), nil
}

// SchemeCheck verifies scheme transitions across redirects. When the
// bootstrap request already started at StartScheme, the context's final URL
// answers directly; otherwise a fresh request forces StartScheme and its
// resolved scheme is tested against EndScheme.
type SchemeCheck struct {
	CheckMeta
	StartScheme string
	EndScheme   string
}

func (c *SchemeCheck) Meta() *CheckMeta { return &c.CheckMeta }

func (c *SchemeCheck) Evaluate(ctx context.Context, site *SiteContext) (bool, error) {
	if site.URL.Scheme == c.StartScheme {
		return site.FinalURL.Scheme == c.EndScheme, nil
	}

	ex, err := site.Client.Get(ctx, WithScheme(site.URL, c.StartScheme))
	if err != nil {
		return false, err
	}
	return ex.FinalURL.Scheme == c.EndScheme, nil
}
