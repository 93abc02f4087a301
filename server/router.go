package server

import (
	"net"
	"net/http"
	"time"

	"github.com/datum-labs/rdapkit"
	"github.com/datum-labs/rdapkit/store"
)

// Router maps HTTP requests to store lookups and renders RDAP responses per
// spec section 4.F. It is safe for concurrent use.
type Router struct {
	Store   *store.Store
	Limiter *RateLimiter // optional; nil disables rate limiting
}

// NewRouter builds a Router over s with no rate limiting.
func NewRouter(s *store.Store) *Router { return &Router{Store: s} }

// NewRouterWithLimiter builds a Router over s enforcing threshold req/s per
// source IP, dropping with 429 for cooldown once exceeded.
func NewRouterWithLimiter(s *store.Store, threshold int, cooldownSeconds int, maxEntries int) *Router {
	return &Router{Store: s, Limiter: NewRateLimiter(threshold, secondsToDuration(cooldownSeconds), maxEntries)}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rt.Limiter != nil && !rt.Limiter.Allow(sourceIP(r)) {
		writeError(w, http.StatusTooManyRequests, "rate limited")
		return
	}

	q, err := parseRequest(r)
	if err != nil {
		switch err.(type) {
		case ErrNotImplemented:
			writeError(w, http.StatusNotImplemented, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if q.Kind == rdapkit.QueryHelp {
		writeJSON(w, http.StatusOK, &rdapkit.Help{RDAPConformance: []string{"rdap_level_0"}})
		return
	}

	result, requestPath, err := rt.lookup(q)
	if err != nil {
		writeError(w, http.StatusNotImplemented, err.Error())
		return
	}

	switch result.Kind {
	case store.ResultFound:
		writeFound(w, result.Object)
	case store.ResultRedirect:
		writeRedirect(w, joinRedirectLocation(result.URL, requestPath))
	default:
		code := result.ErrorCode
		if code == 0 {
			code = http.StatusNotFound
		}
		writeError(w, code, "not found")
	}
}

// lookup dispatches q to the matching store method, returning the request
// path fragment used for redirect URL construction.
func (rt *Router) lookup(q rdapkit.QueryType) (store.Result, string, error) {
	switch q.Kind {
	case rdapkit.QueryDomain:
		return rt.Store.GetDomain(q.LDH), "/domain/" + q.LDH, nil
	case rdapkit.QueryNameserver:
		return rt.Store.GetNameserver(q.LDH), "/nameserver/" + q.LDH, nil
	case rdapkit.QueryEntity:
		return rt.Store.GetEntity(q.Handle), "/entity/" + q.Handle, nil
	case rdapkit.QueryAutNum:
		path, err := q.URLPath()
		if err != nil {
			return store.Result{}, "", err
		}
		return rt.Store.GetAutnum(q.Autnum), "/" + path, nil
	case rdapkit.QueryIPv4Addr, rdapkit.QueryIPv6Addr:
		return rt.Store.GetNetwork(q.IPAddr), "/ip/" + q.IPAddr.String(), nil
	case rdapkit.QueryIPv4Cidr, rdapkit.QueryIPv6Cidr:
		return rt.Store.GetNetworkByCidr(q.Cidr), "/ip/" + q.Cidr.String(), nil
	default:
		return store.Result{}, "", ErrNotImplemented("search queries are not served by this store")
	}
}

func secondsToDuration(n int) time.Duration { return time.Duration(n) * time.Second }

func sourceIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
