package checker

// DefaultChecks returns the built-in Django security battery in execution
// order. Every DependsOn target appears earlier in the slice; the runner
// resolves dependencies by id through its prior-results map.
func DefaultChecks() []Definition {
	return []Definition{
		&PathCheck{
			CheckMeta: CheckMeta{
				ID:       "admin_check",
				Name:     "Is your Django admin site exposed at the default URL?",
				Success:  false,
				Severity: SeverityHigh,
				SuccessMessage: "Your Django admin site is not exposed at the default URL. " +
					"This reduces the risk of automated attacks.",
				FailureMessage: "Your Django admin site is accessible at the default URL (/admin). " +
					"Restrict admin access to trusted IPs, use strong authentication, and move the " +
					"admin to a non-default, unguessable path. Never expose the admin over HTTP.",
			},
			Path: "/admin",
		},
		&CookieCheck{
			CheckMeta: CheckMeta{
				ID:       "csrf_check",
				Name:     "Is a CSRF cookie set?",
				Success:  true,
				Severity: SeverityLow,
				SuccessMessage: "CSRF cookie detected. Your site is protected against " +
					"cross-site request forgery attacks.",
				FailureMessage: "No CSRF cookie was found. This is expected if this page renders no " +
					"forms needing CSRF protection. If you have forms performing POST, PUT, or DELETE " +
					"requests, ensure Django's CSRF middleware is enabled and not bypassed.",
			},
			CookieName: "csrftoken",
		},
		&CookieHTTPOnlyCheck{
			CheckMeta: CheckMeta{
				ID:        "csrf_httponly_check",
				DependsOn: "csrf_check",
				Name:      "Is the CSRF cookie HttpOnly?",
				Success:   false,
				Severity:  SeverityMedium,
				SuccessMessage: "Your CSRF cookie is not marked as HttpOnly, matching Django's " +
					"default so JavaScript can read the token where needed.",
				FailureMessage: "Your CSRF cookie is marked as HttpOnly. Django does not set this by " +
					"default; confirm no frontend code needs to read the token before keeping " +
					"CSRF_COOKIE_HTTPONLY enabled.",
			},
			CookieName: "csrftoken",
		},
		&CookieSameSiteCheck{
			CheckMeta: CheckMeta{
				ID:        "csrf_samesite_check",
				DependsOn: "csrf_check",
				Name:      "Is the CSRF cookie SameSite=Lax?",
				Success:   true,
				Severity:  SeverityHigh,
				SuccessMessage: "CSRF cookie is marked as SameSite=Lax, which helps prevent CSRF " +
					"attacks via cross-site requests.",
				FailureMessage: "Your CSRF cookie is not marked as SameSite=Lax. This increases the " +
					"risk of CSRF attacks. Set CSRF_COOKIE_SAMESITE = 'Lax' in your Django settings.",
			},
			CookieName:    "csrftoken",
			SameSiteValue: "Lax",
		},
		&CookieSecureCheck{
			CheckMeta: CheckMeta{
				ID:        "csrf_secure_check",
				DependsOn: "csrf_check",
				Name:      "Is the CSRF cookie Secure?",
				Success:   true,
				Severity:  SeverityHigh,
				SuccessMessage: "CSRF cookie is marked as Secure. It will only be sent over " +
					"HTTPS.",
				FailureMessage: "Your CSRF cookie is not marked as Secure, so it could be sent over " +
					"unencrypted HTTP and intercepted. Set CSRF_COOKIE_SECURE = True in your " +
					"Django settings.",
			},
			CookieName: "csrftoken",
		},
		&PathCheck{
			CheckMeta: CheckMeta{
				ID:       "debug_404_check",
				Name:     "Does your site return a 404 for non-existent pages?",
				Success:  true,
				Severity: SeverityMedium,
				SuccessMessage: "Your site correctly returns a 404 error for non-existent " +
					"pages.",
				FailureMessage: "Your site does not return a 404 error for non-existent pages. This " +
					"may indicate a misconfiguration or a custom error handler that does not set the " +
					"correct status code.",
			},
			Path:       "/a/b/c/d/e/f/g/h/i/j/xyz/",
			StatusCode: 404,
		},
		&ContentCheck{
			CheckMeta: CheckMeta{
				ID:        "debug_check",
				DependsOn: "debug_404_check",
				Name:      "Is Django DEBUG mode disabled?",
				Success:   false,
				Severity:  SeverityCritical,
				SuccessMessage: "Django DEBUG mode is disabled. This is essential for production " +
					"security.",
				FailureMessage: "Your site appears to have Django's DEBUG mode enabled. This exposes " +
					"sensitive information and should never be used in production. Set DEBUG = False " +
					"in your settings.",
			},
			Path:    "/a/b/c/d/e/f/g/h/i/j/xyz/",
			Content: "DEBUG = True",
		},
		&HeaderCheck{
			CheckMeta: CheckMeta{
				ID:       "hsts_header_check",
				Name:     "Is the Strict-Transport-Security (HSTS) header set?",
				Success:  true,
				Severity: SeverityHigh,
				SuccessMessage: "Strict-Transport-Security header is set. Your site enforces HTTPS " +
					"for all visitors.",
				FailureMessage: "Your site does not send the Strict-Transport-Security (HSTS) header, " +
					"so browsers may let users visit over HTTP and expose them to downgrade attacks. " +
					"Set this header in your web server or via Django's SECURE_HSTS_SECONDS setting.",
			},
			HeaderName: "Strict-Transport-Security",
		},
		&SchemeCheck{
			CheckMeta: CheckMeta{
				ID:       "http_check",
				Name:     "Does your site redirect all HTTP traffic to HTTPS?",
				Success:  true,
				Severity: SeverityHigh,
				SuccessMessage: "All HTTP traffic is redirected to HTTPS. This is essential for " +
					"security.",
				FailureMessage: "Your site does not redirect HTTP traffic to HTTPS, exposing users to " +
					"man-in-the-middle attacks. Configure your web server or CDN to redirect all HTTP " +
					"requests to HTTPS.",
			},
			StartScheme: "http",
			EndScheme:   "https",
		},
		&SchemeCheck{
			CheckMeta: CheckMeta{
				ID:       "https_check",
				Name:     "Is your site accessible via HTTPS?",
				Success:  true,
				Severity: SeverityHigh,
				SuccessMessage: "Your site is accessible via HTTPS. All sensitive data is encrypted " +
					"in transit.",
				FailureMessage: "Your site is not accessible via HTTPS, exposing all traffic to " +
					"interception and tampering. Install a valid TLS certificate and serve HTTPS.",
			},
			StartScheme: "https",
			EndScheme:   "https",
		},
		&PathCheck{
			CheckMeta: CheckMeta{
				ID:       "login_check",
				Name:     "Is your login page exposed at a default or guessable URL?",
				Success:  false,
				Severity: SeverityMedium,
				SuccessMessage: "Login page is not exposed at the default URL. This reduces the risk " +
					"of automated attacks.",
				FailureMessage: "Your login page is accessible at the default URL " +
					"(/accounts/login/). Consider a non-default path, require HTTPS for login forms, " +
					"and rate-limit attempts to prevent brute force.",
			},
			Path: "/accounts/login/",
		},
		&CookieCheck{
			CheckMeta: CheckMeta{
				ID:       "sessionid_cookie_check",
				Name:     "Is the sessionid cookie set?",
				Success:  true,
				Severity: SeverityLow,
				SuccessMessage: "Session cookie is set. User sessions are being managed " +
					"securely.",
				FailureMessage: "No sessionid cookie was found. This is normal if your site does not " +
					"use sessions on this page. If your application relies on sessions, ensure " +
					"Django's session middleware is enabled and configured correctly.",
			},
			CookieName: "sessionid",
		},
		&CookieHTTPOnlyCheck{
			CheckMeta: CheckMeta{
				ID:        "sessionid_httponly_check",
				DependsOn: "sessionid_cookie_check",
				Name:      "Is the sessionid cookie HttpOnly?",
				Success:   true,
				Severity:  SeverityHigh,
				SuccessMessage: "Sessionid cookie is marked as HttpOnly. This helps prevent access " +
					"from JavaScript.",
				FailureMessage: "Your sessionid cookie is not marked as HttpOnly, increasing the risk " +
					"of session theft via XSS. Set SESSION_COOKIE_HTTPONLY = True in your Django " +
					"settings.",
			},
			CookieName: "sessionid",
		},
		&CookieSecureCheck{
			CheckMeta: CheckMeta{
				ID:        "sessionid_secure_check",
				DependsOn: "sessionid_cookie_check",
				Name:      "Is the sessionid cookie Secure?",
				Success:   true,
				Severity:  SeverityHigh,
				SuccessMessage: "Sessionid cookie is marked as Secure. It will only be sent over " +
					"HTTPS.",
				FailureMessage: "Your sessionid cookie is not marked as Secure, so it could be sent " +
					"over unencrypted HTTP and intercepted. Set SESSION_COOKIE_SECURE = True in your " +
					"Django settings.",
			},
			CookieName: "sessionid",
		},
		&CookieSameSiteCheck{
			CheckMeta: CheckMeta{
				ID:        "sessionid_samesite_check",
				DependsOn: "sessionid_cookie_check",
				Name:      "Is the sessionid cookie SameSite=Lax?",
				Success:   true,
				Severity:  SeverityHigh,
				SuccessMessage: "Sessionid cookie is marked as SameSite=Lax. This helps prevent CSRF " +
					"attacks.",
				FailureMessage: "Your sessionid cookie is not marked as SameSite=Lax, increasing the " +
					"risk of CSRF attacks. Set SESSION_COOKIE_SAMESITE = 'Lax' in your Django " +
					"settings.",
			},
			CookieName:    "sessionid",
			SameSiteValue: "Lax",
		},
		&HeaderCheck{
			CheckMeta: CheckMeta{
				ID:       "xframe_header_check",
				Name:     "Is the X-Frame-Options header set?",
				Success:  true,
				Severity: SeverityHigh,
				SuccessMessage: "X-Frame-Options header is set. Your site is protected against " +
					"clickjacking attacks.",
				FailureMessage: "Your site does not send the X-Frame-Options header, so it can be " +
					"embedded in iframes and is vulnerable to clickjacking. Set this header in your " +
					"web server or via Django's XFrameOptionsMiddleware.",
			},
			HeaderName: "X-Frame-Options",
		},
	}
}
