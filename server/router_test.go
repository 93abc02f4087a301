package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/rdapkit/store"
)

func TestRouterDomainRedirect(t *testing.T) {
	s := store.New()
	tx := s.NewTx()
	tx.AddDomainErr(store.DomainId{LDHName: "example"}, store.Redirect("https://example.net/"))
	tx.Commit()

	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/domain/foo.example", nil)
	rt.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://example.net/domain/foo.example", rr.Header().Get("Location"))
	assert.Equal(t, "application/rdap+json", rr.Header().Get("Content-Type"))
}

func TestRouterDomainNotFound(t *testing.T) {
	s := store.New()
	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/domain/foo.example", nil)
	rt.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouterMalformedQueryIsBadRequest(t *testing.T) {
	s := store.New()
	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ip/not-an-address", nil)
	rt.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouterUnsupportedPathIsNotImplemented(t *testing.T) {
	s := store.New()
	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/domains?name=foo", nil)
	rt.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestRouterHelp(t *testing.T) {
	s := store.New()
	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/help", nil)
	rt.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterRateLimiting(t *testing.T) {
	s := store.New()
	tx := s.NewTx()
	tx.AddDomainErr(store.DomainId{LDHName: "example"}, store.Redirect("https://example.net/"))
	tx.Commit()

	rt := NewRouterWithLimiter(s, 1, 60, 16)
	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/domain/foo.example", nil)
		r.RemoteAddr = "203.0.113.5:1234"
		return r
	}

	rr1 := httptest.NewRecorder()
	rt.ServeHTTP(rr1, req())
	assert.Equal(t, http.StatusFound, rr1.Code)

	rr2 := httptest.NewRecorder()
	rt.ServeHTTP(rr2, req())
	assert.Equal(t, http.StatusTooManyRequests, rr2.Code)
}

func TestRouterIPMostSpecificRedirect(t *testing.T) {
	s := store.New()
	tx := s.NewTx()
	require.NoError(t, tx.AddNetworkErr(store.NetworkId{Kind: store.NetworkIdCidr, Cidr: mustPrefix("10.0.0.0/8")}, store.Redirect("https://a.net/")))
	require.NoError(t, tx.AddNetworkErr(store.NetworkId{Kind: store.NetworkIdCidr, Cidr: mustPrefix("10.1.0.0/16")}, store.Redirect("https://b.net/")))
	tx.Commit()

	rt := NewRouter(s)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ip/10.1.2.3", nil)
	rt.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://b.net/ip/10.1.2.3", rr.Header().Get("Location"))
}

func TestRouterAutnumRedirectAndMiss(t *testing.T) {
	s := store.New()
	tx := s.NewTx()
	tx.AddAutnumErr(store.AutnumId{StartAutnum: 700, EndAutnum: 800}, store.Redirect("https://c.net/"))
	tx.Commit()

	rt := NewRouter(s)

	rr := httptest.NewRecorder()
	rt.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/autnum/710", nil))
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://c.net/autnum/710", rr.Header().Get("Location"))

	rr2 := httptest.NewRecorder()
	rt.ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/autnum/1000", nil))
	assert.Equal(t, http.StatusNotFound, rr2.Code)
}

func TestRouterEntityTagRedirectCaseInsensitive(t *testing.T) {
	s := store.New()
	tx := s.NewTx()
	tx.AddEntityErr(store.EntityId{Handle: "-ARIN"}, store.Redirect("https://d.net/"))
	tx.Commit()

	rt := NewRouter(s)

	rrUpper := httptest.NewRecorder()
	rt.ServeHTTP(rrUpper, httptest.NewRequest(http.MethodGet, "/entity/foo-ARIN", nil))
	require.Equal(t, http.StatusFound, rrUpper.Code)
	assert.Equal(t, "https://d.net/entity/foo-ARIN", rrUpper.Header().Get("Location"))

	rrLower := httptest.NewRecorder()
	rt.ServeHTTP(rrLower, httptest.NewRequest(http.MethodGet, "/entity/foo-arin", nil))
	require.Equal(t, http.StatusFound, rrLower.Code)
	assert.Equal(t, "https://d.net/entity/foo-arin", rrLower.Header().Get("Location"))
}
