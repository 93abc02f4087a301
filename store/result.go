package store

import "github.com/datum-labs/rdapkit"

// ResultKind discriminates the outcome of a store lookup.
type ResultKind int

const (
	ResultFound ResultKind = iota
	ResultRedirect
	ResultNotFound
)

// Result is the outcome of a Store lookup: a found object, a redirect to
// another registry, or a not-found/error response.
type Result struct {
	Kind      ResultKind
	Object    rdapkit.Object
	URL       string
	ErrorCode int
}

// StoredError is a redirect or terminal error record registered against a
// most-specific-match key via an AddXErr call.
type StoredError struct {
	ErrorCode int
	URL       string // non-empty marks this as a redirect record
	Title     string
}

// Redirect builds a StoredError representing a 302 redirect to url.
func Redirect(url string) StoredError { return StoredError{ErrorCode: 302, URL: url} }

// NotFoundError builds a StoredError representing a terminal 404.
func NotFoundError() StoredError { return StoredError{ErrorCode: 404} }

func errResult(e StoredError) Result {
	if e.URL != "" {
		return Result{Kind: ResultRedirect, URL: e.URL, ErrorCode: 302}
	}
	code := e.ErrorCode
	if code == 0 {
		code = 404
	}
	return Result{Kind: ResultNotFound, ErrorCode: code}
}
