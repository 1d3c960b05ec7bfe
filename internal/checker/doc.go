// Package checker implements the site check engine.
//
// Architecture overview:
//
//   - Check variants (HeaderCheck, ContentCheck, the cookie checks,
//     PathCheck, SchemeCheck) implement the Definition interface: shared
//     declarative fields in CheckMeta plus one Evaluate predicate over the
//     SiteContext.
//   - Run is the shared wrapper around every predicate. It applies the
//     dependency-skip rule, maps the raw boolean through the declared
//     expected value, and converts predicate errors into FAILURE responses.
//   - SiteChecker performs the bootstrap connectivity probe, snapshots the
//     final response into a SiteContext shared by all checks, and folds the
//     ordered catalog into a Report. Execution is strictly sequential; a
//     dependency can only name a check that ran earlier.
//   - Client wraps net/http with the transport policy every request shares
//     (timeout, User-Agent, redirects, TLS verification, rate limiting).
//     Checks that need a different path or scheme go through it rather than
//     mutating the context.
//
// The engine is total: RunAll always returns a Report, with connectivity and
// per-check faults captured as FAILURE entries instead of errors.
package checker
