// Package server implements the HTTP request router named in spec section
// 4.F: it maps an RDAP request path to a query, looks it up in the store,
// and renders the result as a 200/302/404/400/501 RDAP response.
package server

import (
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"github.com/datum-labs/rdapkit"
)

// ErrBadRequest marks a query that failed parsing and should map to HTTP 400.
type ErrBadRequest string

func (e ErrBadRequest) Error() string { return string(e) }

// ErrNotImplemented marks a path outside the supported grammar, mapping to HTTP 501.
type ErrNotImplemented string

func (e ErrNotImplemented) Error() string { return string(e) }

// parseRequest decodes r's path and query string into a rdapkit.QueryType,
// following the explicit grammar of spec section 6 rather than the client's
// free-form auto-detection in rdapkit.ParseQuery.
func parseRequest(r *http.Request) (rdapkit.QueryType, error) {
	path := strings.Trim(r.URL.Path, "/")
	segs := strings.SplitN(path, "/", 2)
	if len(segs) == 0 || segs[0] == "" {
		return rdapkit.QueryType{}, ErrNotImplemented("empty path")
	}

	switch segs[0] {
	case "help":
		return rdapkit.QueryType{Kind: rdapkit.QueryHelp}, nil

	case "domain":
		if len(segs) != 2 || segs[1] == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing domain name")
		}
		return domainQuery(segs[1])

	case "nameserver":
		if len(segs) != 2 || segs[1] == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing nameserver name")
		}
		return nameserverQuery(segs[1])

	case "entity":
		if len(segs) != 2 || segs[1] == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing entity handle")
		}
		return rdapkit.QueryType{Kind: rdapkit.QueryEntity, Handle: segs[1]}, nil

	case "autnum":
		if len(segs) != 2 || segs[1] == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing autnum value")
		}
		n, err := strconv.ParseUint(segs[1], 10, 32)
		if err != nil {
			return rdapkit.QueryType{}, ErrBadRequest("invalid autnum value: " + segs[1])
		}
		return rdapkit.QueryType{Kind: rdapkit.QueryAutNum, Autnum: uint32(n)}, nil

	case "ip":
		if len(segs) != 2 || segs[1] == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing ip address or cidr")
		}
		return ipQuery(segs[1])

	case "domains":
		name := r.URL.Query().Get("name")
		if name == "" {
			return rdapkit.QueryType{}, ErrBadRequest("missing name parameter")
		}
		return rdapkit.QueryType{Kind: rdapkit.QueryDomainNameSearch, SearchTerm: name}, nil

	case "nameservers":
		q := r.URL.Query()
		if name := q.Get("name"); name != "" {
			return rdapkit.QueryType{Kind: rdapkit.QueryNameserverNameSearch, SearchTerm: name}, nil
		}
		if ip := q.Get("ip"); ip != "" {
			return rdapkit.QueryType{Kind: rdapkit.QueryNameserversSearch, SearchTerm: ip}, nil
		}
		return rdapkit.QueryType{}, ErrBadRequest("missing name or ip parameter")

	case "entities":
		q := r.URL.Query()
		if fn := q.Get("fn"); fn != "" {
			return rdapkit.QueryType{Kind: rdapkit.QueryEntityNameSearch, SearchTerm: fn}, nil
		}
		if h := q.Get("handle"); h != "" {
			return rdapkit.QueryType{Kind: rdapkit.QueryEntityHandleSearch, SearchTerm: h}, nil
		}
		return rdapkit.QueryType{}, ErrBadRequest("missing fn or handle parameter")

	default:
		return rdapkit.QueryType{}, ErrNotImplemented("unsupported path: /" + segs[0])
	}
}

func domainQuery(raw string) (rdapkit.QueryType, error) {
	ldh, uni, err := normalizeForServer(raw)
	if err != nil {
		return rdapkit.QueryType{}, ErrBadRequest(err.Error())
	}
	return rdapkit.QueryType{Kind: rdapkit.QueryDomain, LDH: ldh, Unicode: uni}, nil
}

func nameserverQuery(raw string) (rdapkit.QueryType, error) {
	ldh, uni, err := normalizeForServer(raw)
	if err != nil {
		return rdapkit.QueryType{}, ErrBadRequest(err.Error())
	}
	return rdapkit.QueryType{Kind: rdapkit.QueryNameserver, LDH: ldh, Unicode: uni}, nil
}

func normalizeForServer(raw string) (ldh, unicode string, err error) {
	return rdapkit.NormalizeDomainName(raw)
}

func ipQuery(raw string) (rdapkit.QueryType, error) {
	if pfx, err := netip.ParsePrefix(raw); err == nil {
		if pfx.Addr().Is4() {
			return rdapkit.QueryType{Kind: rdapkit.QueryIPv4Cidr, Cidr: pfx}, nil
		}
		return rdapkit.QueryType{Kind: rdapkit.QueryIPv6Cidr, Cidr: pfx}, nil
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return rdapkit.QueryType{}, ErrBadRequest("invalid ip address or cidr: " + raw)
	}
	if addr.Is4() {
		return rdapkit.QueryType{Kind: rdapkit.QueryIPv4Addr, IPAddr: addr}, nil
	}
	return rdapkit.QueryType{Kind: rdapkit.QueryIPv6Addr, IPAddr: addr}, nil
}
