package checker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// spyCheck records Evaluate invocations and returns a canned result.
type spyCheck struct {
	CheckMeta
	calls int
	ret   bool
	err   error
}

func (s *spyCheck) Meta() *CheckMeta { return &s.CheckMeta }

func (s *spyCheck) Evaluate(context.Context, *SiteContext) (bool, error) {
	s.calls++
	return s.ret, s.err
}

func testContext(t *testing.T, serverURL string) *SiteContext {
	t.Helper()
	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	return &SiteContext{
		URL:      u,
		FinalURL: u,
		Header:   http.Header{},
		Client:   NewClient(ClientConfig{FollowRedirects: true}),
	}
}

func TestRun_SkipsOnMissingDependency(t *testing.T) {
	spy := &spyCheck{
		CheckMeta: CheckMeta{ID: "b", Name: "b", DependsOn: "a", Success: true, Severity: SeverityHigh},
		ret:       true,
	}

	resp := Run(context.Background(), spy, &SiteContext{}, map[string]CheckResponse{})

	if resp.Outcome != OutcomeSkipped {
		t.Fatalf("expected skipped, got %s", resp.Outcome)
	}
	if resp.SeverityScore != SeverityNone {
		t.Errorf("skipped check must carry severity none, got %d", resp.SeverityScore)
	}
	if spy.calls != 0 {
		t.Errorf("predicate must not run for a skipped check, ran %d times", spy.calls)
	}
	if want := "Check skipped due to failed or missing dependency: a"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestRun_SkipsOnFailedDependency(t *testing.T) {
	spy := &spyCheck{
		CheckMeta: CheckMeta{ID: "b", Name: "b", DependsOn: "a", Success: true, Severity: SeverityHigh},
		ret:       true,
	}
	prior := map[string]CheckResponse{
		"a": {Name: "a", Outcome: OutcomeFailure, SeverityScore: SeverityLow},
	}

	resp := Run(context.Background(), spy, &SiteContext{}, prior)

	if resp.Outcome != OutcomeSkipped {
		t.Fatalf("expected skipped, got %s", resp.Outcome)
	}
	if spy.calls != 0 {
		t.Errorf("predicate must not run, ran %d times", spy.calls)
	}
}

// A SKIPPED upstream result satisfies the dependency; only missing or failed
// results propagate a skip.
func TestRun_SkippedDependencySatisfies(t *testing.T) {
	spy := &spyCheck{
		CheckMeta: CheckMeta{ID: "b", Name: "b", DependsOn: "a", Success: true, Severity: SeverityHigh},
		ret:       true,
	}
	prior := map[string]CheckResponse{
		"a": {Name: "a", Outcome: OutcomeSkipped, SeverityScore: SeverityNone},
	}

	resp := Run(context.Background(), spy, &SiteContext{}, prior)

	if resp.Outcome != OutcomeSuccess {
		t.Fatalf("expected success, got %s", resp.Outcome)
	}
	if spy.calls != 1 {
		t.Errorf("predicate should have run once, ran %d times", spy.calls)
	}
}

func TestRun_ExpectedValueMapping(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
		raw      bool
		want     Outcome
	}{
		{"raw true expected true", true, true, OutcomeSuccess},
		{"raw false expected true", true, false, OutcomeFailure},
		{"raw false expected false", false, false, OutcomeSuccess},
		{"raw true expected false", false, true, OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyCheck{
				CheckMeta: CheckMeta{
					ID: "x", Name: "x", Success: tt.expected, Severity: SeverityMedium,
					SuccessMessage: "good", FailureMessage: "bad",
				},
				ret: tt.raw,
			}

			resp := Run(context.Background(), spy, &SiteContext{}, nil)

			if resp.Outcome != tt.want {
				t.Fatalf("outcome = %s, want %s", resp.Outcome, tt.want)
			}
			if resp.SeverityScore != SeverityMedium {
				t.Errorf("severity must be reported regardless of outcome, got %d", resp.SeverityScore)
			}
			wantMsg := "good"
			if tt.want == OutcomeFailure {
				wantMsg = "bad"
			}
			if resp.Message != wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, wantMsg)
			}
		})
	}
}

func TestRun_EvaluateErrorBecomesFailure(t *testing.T) {
	spy := &spyCheck{
		CheckMeta: CheckMeta{ID: "x", Name: "x", Success: true, Severity: SeverityHigh},
		err:       errors.New("connection reset"),
	}

	resp := Run(context.Background(), spy, &SiteContext{}, nil)

	if resp.Outcome != OutcomeFailure {
		t.Fatalf("expected failure, got %s", resp.Outcome)
	}
	if resp.SeverityScore != SeverityHigh {
		t.Errorf("severity = %d, want %d", resp.SeverityScore, SeverityHigh)
	}
	if resp.Message != "Check could not complete: connection reset" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestHeaderCheck(t *testing.T) {
	header := http.Header{}
	header.Set("X-Frame-Options", "DENY")
	header.Add("Vary", "Accept-Encoding")
	header.Add("Vary", "Cookie")
	site := &SiteContext{Header: header}

	tests := []struct {
		name        string
		headerName  string
		headerValue string
		want        bool
	}{
		{"present", "X-Frame-Options", "", true},
		{"present case-insensitive name", "x-frame-options", "", true},
		{"present with matching value", "X-Frame-Options", "DENY", true},
		{"present with case-insensitive value", "X-Frame-Options", "deny", true},
		{"present with wrong value", "X-Frame-Options", "SAMEORIGIN", false},
		{"absent", "Strict-Transport-Security", "", false},
		{"multi-valued header first value", "Vary", "Accept-Encoding", true},
		{"multi-valued header later value", "Vary", "cookie", true},
		{"multi-valued header no match", "Vary", "Origin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &HeaderCheck{HeaderName: tt.headerName, HeaderValue: tt.headerValue}
			got, err := check.Evaluate(context.Background(), site)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentCheck_BootstrapBody(t *testing.T) {
	site := &SiteContext{Body: "<html>Welcome to the site</html>"}

	check := &ContentCheck{Content: "Welcome"}
	if got, _ := check.Evaluate(context.Background(), site); !got {
		t.Error("expected substring to be found in bootstrap body")
	}

	check = &ContentCheck{Content: "DEBUG = True"}
	if got, _ := check.Evaluate(context.Background(), site); got {
		t.Error("expected substring to be absent")
	}
}

func TestContentCheck_EmptyBody(t *testing.T) {
	check := &ContentCheck{Content: ""}
	if got, _ := check.Evaluate(context.Background(), &SiteContext{Body: ""}); got {
		t.Error("empty body must evaluate false even for an empty needle")
	}
}

func TestContentCheck_SecondaryPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/debug" {
			w.Write([]byte("DEBUG = True"))
			return
		}
		w.Write([]byte("homepage"))
	}))
	defer srv.Close()

	site := testContext(t, srv.URL)
	site.Body = "homepage"

	check := &ContentCheck{Content: "DEBUG = True", Path: "/debug"}
	got, err := check.Evaluate(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected content match on secondary path")
	}
}

func TestContentCheck_SecondaryRequestError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	site := testContext(t, srv.URL)
	check := &ContentCheck{Content: "x", Path: "/y"}
	if _, err := check.Evaluate(context.Background(), site); err == nil {
		t.Fatal("expected transport error from closed server")
	}
}

func TestCookieCheck(t *testing.T) {
	site := &SiteContext{
		Cookies: []*http.Cookie{{Name: "sessionid", Value: "abc123"}},
	}

	tests := []struct {
		name        string
		cookieName  string
		cookieValue string
		want        bool
	}{
		{"present", "sessionid", "", true},
		{"present with matching value", "sessionid", "abc123", true},
		{"present with wrong value", "sessionid", "zzz", false},
		{"absent", "csrftoken", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &CookieCheck{CookieName: tt.cookieName, CookieValue: tt.cookieValue}
			got, _ := check.Evaluate(context.Background(), site)
			if got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCookieFlagChecks(t *testing.T) {
	site := &SiteContext{
		Cookies: []*http.Cookie{
			{Name: "hardened", HttpOnly: true, Secure: true, SameSite: http.SameSiteLaxMode},
			{Name: "plain"},
		},
	}
	ctx := context.Background()

	if got, _ := (&CookieHTTPOnlyCheck{CookieName: "hardened"}).Evaluate(ctx, site); !got {
		t.Error("hardened cookie should be HttpOnly")
	}
	if got, _ := (&CookieHTTPOnlyCheck{CookieName: "plain"}).Evaluate(ctx, site); got {
		t.Error("plain cookie should not be HttpOnly")
	}
	if got, _ := (&CookieHTTPOnlyCheck{CookieName: "missing"}).Evaluate(ctx, site); got {
		t.Error("absent cookie must evaluate false")
	}

	if got, _ := (&CookieSecureCheck{CookieName: "hardened"}).Evaluate(ctx, site); !got {
		t.Error("hardened cookie should be Secure")
	}
	if got, _ := (&CookieSecureCheck{CookieName: "missing"}).Evaluate(ctx, site); got {
		t.Error("absent cookie must evaluate false")
	}

	if got, _ := (&CookieSameSiteCheck{CookieName: "hardened", SameSiteValue: "Lax"}).Evaluate(ctx, site); !got {
		t.Error("hardened cookie should be SameSite=Lax")
	}
	if got, _ := (&CookieSameSiteCheck{CookieName: "hardened", SameSiteValue: "Strict"}).Evaluate(ctx, site); got {
		t.Error("SameSite=Strict should not match a Lax cookie")
	}
}

func TestCookieSameSiteCheck_InvalidValue(t *testing.T) {
	check := &CookieSameSiteCheck{CookieName: "x", SameSiteValue: "bogus"}
	if _, err := check.Evaluate(context.Background(), &SiteContext{}); err == nil {
		t.Fatal("expected error for unknown samesite value")
	}
}

func TestPathCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	site := testContext(t, srv.URL)
	ctx := context.Background()

	if got, _ := (&PathCheck{Path: "/admin"}).Evaluate(ctx, site); !got {
		t.Error("2xx path should evaluate true without an expected status")
	}
	if got, _ := (&PathCheck{Path: "/gone"}).Evaluate(ctx, site); got {
		t.Error("404 path should evaluate false without an expected status")
	}
	if got, _ := (&PathCheck{Path: "/gone", StatusCode: 404}).Evaluate(ctx, site); !got {
		t.Error("404 path should evaluate true when 404 is expected")
	}
	if got, _ := (&PathCheck{Path: "/admin", StatusCode: 404}).Evaluate(ctx, site); got {
		t.Error("200 path should evaluate false when 404 is expected")
	}
}

func TestSchemeCheck_UsesContextWhenStartMatches(t *testing.T) {
	start, _ := url.Parse("http://example.com/")
	final, _ := url.Parse("https://example.com/")
	// No client on purpose: the short-circuit path must not touch the network.
	site := &SiteContext{URL: start, FinalURL: final}

	check := &SchemeCheck{StartScheme: "http", EndScheme: "https"}
	got, err := check.Evaluate(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("http bootstrap redirected to https should satisfy http->https")
	}

	check = &SchemeCheck{StartScheme: "http", EndScheme: "http"}
	if got, _ := check.Evaluate(context.Background(), site); got {
		t.Error("http bootstrap redirected to https should fail http->http")
	}
}

func TestSchemeCheck_ForcesSchemeForFreshRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Pretend the bootstrap ran over https so the check must re-request
	// with the forced http scheme, which lands on the test server.
	site := testContext(t, srv.URL)
	httpsURL := *site.URL
	httpsURL.Scheme = "https"
	site.URL = &httpsURL
	site.FinalURL = &httpsURL

	check := &SchemeCheck{StartScheme: "http", EndScheme: "http"}
	got, err := check.Evaluate(context.Background(), site)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("non-redirecting http server should satisfy http->http")
	}
}
