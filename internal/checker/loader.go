package checker

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	sharederrors "github.com/djcheckup/djcheckup-cli/internal/shared/errors"
)

// checkSpec is the YAML shape of one user-supplied check. Variant-specific
// fields are all optional at the schema level; parseCheck enforces the ones
// the declared type requires.
type checkSpec struct {
	Type           string `yaml:"type"`
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	DependsOn      string `yaml:"depends_on"`
	Success        *bool  `yaml:"success"`
	Severity       string `yaml:"severity"`
	SuccessMessage string `yaml:"success_message"`
	FailureMessage string `yaml:"failure_message"`

	HeaderName  string `yaml:"header_name"`
	HeaderValue string `yaml:"header_value"`
	Content     string `yaml:"content"`
	Path        string `yaml:"path"`
	CookieName  string `yaml:"cookie_name"`
	CookieValue string `yaml:"cookie_value"`
	SameSite    string `yaml:"samesite_value"`
	StatusCode  int    `yaml:"status_code"`
	StartScheme string `yaml:"start_scheme"`
	EndScheme   string `yaml:"end_scheme"`
}

type checksFile struct {
	Checks []checkSpec `yaml:"checks"`
}

// LoadChecksFile reads a YAML checks file and returns the catalog it
// declares, in file order. All validation happens here, before any network
// activity.
func LoadChecksFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}
	defs, err := ParseChecks(data)
	if err != nil {
		return nil, fmt.Errorf("checks file %s: %w", path, err)
	}
	return defs, nil
}

// ParseChecks parses a YAML catalog document.
func ParseChecks(data []byte) ([]Definition, error) {
	var file checksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Checks) == 0 {
		return nil, sharederrors.ErrEmptyCatalog
	}

	defs := make([]Definition, 0, len(file.Checks))
	seen := make(map[string]bool, len(file.Checks))
	for i, spec := range file.Checks {
		def, err := parseCheck(spec)
		if err != nil {
			return nil, fmt.Errorf("check %d: %w", i, err)
		}
		id := def.Meta().ID
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", sharederrors.ErrDuplicateCheckID, id)
		}
		seen[id] = true
		defs = append(defs, def)
	}
	return defs, nil
}

func parseCheck(spec checkSpec) (Definition, error) {
	meta, err := parseMeta(spec)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(spec.Type) {
	case "header":
		if spec.HeaderName == "" {
			return nil, fmt.Errorf("%w: header_name", sharederrors.ErrMissingCheckField)
		}
		return &HeaderCheck{CheckMeta: meta, HeaderName: spec.HeaderName, HeaderValue: spec.HeaderValue}, nil
	case "content":
		if spec.Content == "" {
			return nil, fmt.Errorf("%w: content", sharederrors.ErrMissingCheckField)
		}
		return &ContentCheck{CheckMeta: meta, Content: spec.Content, Path: spec.Path}, nil
	case "cookie":
		if spec.CookieName == "" {
			return nil, fmt.Errorf("%w: cookie_name", sharederrors.ErrMissingCheckField)
		}
		return &CookieCheck{CheckMeta: meta, CookieName: spec.CookieName, CookieValue: spec.CookieValue}, nil
	case "cookie_httponly":
		if spec.CookieName == "" {
			return nil, fmt.Errorf("%w: cookie_name", sharederrors.ErrMissingCheckField)
		}
		return &CookieHTTPOnlyCheck{CheckMeta: meta, CookieName: spec.CookieName}, nil
	case "cookie_secure":
		if spec.CookieName == "" {
			return nil, fmt.Errorf("%w: cookie_name", sharederrors.ErrMissingCheckField)
		}
		return &CookieSecureCheck{CheckMeta: meta, CookieName: spec.CookieName}, nil
	case "cookie_samesite":
		if spec.CookieName == "" {
			return nil, fmt.Errorf("%w: cookie_name", sharederrors.ErrMissingCheckField)
		}
		if _, err := ParseSameSite(spec.SameSite); err != nil {
			return nil, err
		}
		return &CookieSameSiteCheck{CheckMeta: meta, CookieName: spec.CookieName, SameSiteValue: spec.SameSite}, nil
	case "path":
		if spec.Path == "" {
			return nil, fmt.Errorf("%w: path", sharederrors.ErrMissingCheckField)
		}
		return &PathCheck{CheckMeta: meta, Path: spec.Path, StatusCode: spec.StatusCode}, nil
	case "scheme":
		if err := validateScheme(spec.StartScheme); err != nil {
			return nil, err
		}
		if err := validateScheme(spec.EndScheme); err != nil {
			return nil, err
		}
		return &SchemeCheck{CheckMeta: meta, StartScheme: spec.StartScheme, EndScheme: spec.EndScheme}, nil
	}
	return nil, fmt.Errorf("%w: %q", sharederrors.ErrUnknownCheckType, spec.Type)
}

func parseMeta(spec checkSpec) (CheckMeta, error) {
	if spec.ID == "" {
		return CheckMeta{}, fmt.Errorf("%w: id", sharederrors.ErrMissingCheckField)
	}
	if spec.Name == "" {
		return CheckMeta{}, fmt.Errorf("%w: name", sharederrors.ErrMissingCheckField)
	}
	severity, err := ParseSeverity(spec.Severity)
	if err != nil {
		return CheckMeta{}, err
	}

	// A check that omits `success` asserts the predicate should hold.
	success := true
	if spec.Success != nil {
		success = *spec.Success
	}

	return CheckMeta{
		ID:             spec.ID,
		Name:           spec.Name,
		DependsOn:      spec.DependsOn,
		Success:        success,
		Severity:       severity,
		SuccessMessage: spec.SuccessMessage,
		FailureMessage: spec.FailureMessage,
	}, nil
}

// ParseSeverity maps a severity label to its weight. An empty label means
// SeverityNone.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return SeverityNone, nil
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	}
	return 0, fmt.Errorf("%w: %q", sharederrors.ErrInvalidSeverity, s)
}

func validateScheme(s string) error {
	if s != "http" && s != "https" {
		return fmt.Errorf("%w: %q", sharederrors.ErrInvalidScheme, s)
	}
	return nil
}
