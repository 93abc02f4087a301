package rdapkit

import (
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// QueryKind discriminates the variants a QueryType can take.
type QueryKind int

const (
	QueryIPv4Addr QueryKind = iota
	QueryIPv6Addr
	QueryIPv4Cidr
	QueryIPv6Cidr
	QueryAutNum
	QueryDomain
	QueryNameserver
	QueryEntity
	QueryNameserversSearch
	QueryDomainNameSearch
	QueryEntityNameSearch
	QueryEntityHandleSearch
	QueryNameserverNameSearch
	QueryURL
	QueryHelp
)

// QueryType is a parsed, normalized RDAP query.
type QueryType struct {
	Kind QueryKind

	// Domain / ANameserver: LDH form used on the wire, Unicode form for display.
	LDH     string
	Unicode string

	Handle string // Entity
	Autnum uint32 // AutNum

	IPAddr netip.Addr   // IpV4Addr / IpV6Addr
	Cidr   netip.Prefix // IpV4Cidr / IpV6Cidr

	SearchTerm string // *NameSearch / *HandleSearch
	RawURL     string // Url
}

// ErrQueryParse indicates user input failed query validation.
type ErrQueryParse string

func (e ErrQueryParse) Error() string { return "query parse: " + string(e) }

// ParseQuery auto-detects the query kind from free-form user input, the Go
// analogue of the teacher's Lookup auto-detection, generalized to the full
// variant set.
func ParseQuery(raw string) (QueryType, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return QueryType{}, ErrQueryParse("empty query")
	}

	if isASN(s) {
		n, err := parseASNValue(s)
		if err != nil {
			return QueryType{}, ErrQueryParse(err.Error())
		}
		return QueryType{Kind: QueryAutNum, Autnum: n}, nil
	}

	if pfx, err := netip.ParsePrefix(s); err == nil {
		if pfx.Addr().Is4() {
			return QueryType{Kind: QueryIPv4Cidr, Cidr: pfx}, nil
		}
		return QueryType{Kind: QueryIPv6Cidr, Cidr: pfx}, nil
	}
	if ip, err := netip.ParseAddr(s); err == nil {
		if ip.Is4() {
			return QueryType{Kind: QueryIPv4Addr, IPAddr: ip}, nil
		}
		return QueryType{Kind: QueryIPv6Addr, IPAddr: ip}, nil
	}

	if isNameserverHeuristic(s) {
		ldh, uni, err := normalizeDomainName(s)
		if err != nil {
			return QueryType{}, err
		}
		return QueryType{Kind: QueryNameserver, LDH: ldh, Unicode: uni}, nil
	}
	if looksLikeEntityHandle(strings.ToLower(s)) {
		return QueryType{Kind: QueryEntity, Handle: s}, nil
	}

	ldh, uni, err := normalizeDomainName(s)
	if err != nil {
		return QueryType{}, err
	}
	return QueryType{Kind: QueryDomain, LDH: ldh, Unicode: uni}, nil
}

func isASN(s string) bool {
	t := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "AS")
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseASNValue(s string) (uint32, error) {
	t := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "AS")
	n, err := strconv.ParseUint(t, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("autnum value does not fit in 32 bits: %w", err)
	}
	return uint32(n), nil
}

func isNameserverHeuristic(s string) bool {
	ls := strings.ToLower(s)
	return strings.HasPrefix(ls, "ns") && len(ls) > 2 && (ls[2] == '.' || ls[2] == '-' || (ls[2] >= '0' && ls[2] <= '9'))
}

// NormalizeDomainName is the exported form of normalizeDomainName, used by
// server-side path parsing that already knows a segment names a domain or
// nameserver and only needs LDH/Unicode normalization, not kind detection.
func NormalizeDomainName(s string) (ldh string, unicode string, err error) {
	return normalizeDomainName(s)
}

// normalizeDomainName validates a domain/nameserver name per RFC 5890 (LDH
// label alphabet, ≤253 total, ≤63 per label) and converts it between LDH
// and Unicode using IDNA-2008.
func normalizeDomainName(s string) (ldh string, unicode string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), ".")
	if trimmed == "" {
		return "", "", ErrQueryParse("empty domain name")
	}
	profile := idna.New(
		idna.ValidateLabels(true),
		idna.VerifyDNSLength(true),
		idna.StrictDomainName(false),
	)
	ascii, convErr := profile.ToASCII(trimmed)
	if convErr != nil {
		return "", "", ErrQueryParse(fmt.Sprintf("invalid domain name %q: %v", s, convErr))
	}
	if !isLDH(ascii) {
		return "", "", ErrQueryParse(fmt.Sprintf("invalid domain name %q: non-LDH characters", s))
	}
	uni, _ := profile.ToUnicode(ascii)
	return strings.ToLower(ascii), uni, nil
}

// URLPath constructs the server-side path + query string for q against
// base, per spec section 4.D/6. Callers join the result to a base URL with
// mustJoin or an equivalent.
func (q QueryType) URLPath() (string, error) {
	switch q.Kind {
	case QueryDomain:
		return "domain/" + q.LDH, nil
	case QueryNameserver:
		return "nameserver/" + q.LDH, nil
	case QueryEntity:
		return "entity/" + q.Handle, nil
	case QueryAutNum:
		return "autnum/" + strconv.FormatUint(uint64(q.Autnum), 10), nil
	case QueryIPv4Addr, QueryIPv6Addr:
		return "ip/" + q.IPAddr.String(), nil
	case QueryIPv4Cidr, QueryIPv6Cidr:
		return "ip/" + q.Cidr.String(), nil
	case QueryHelp:
		return "help", nil
	case QueryDomainNameSearch:
		return "domains?name=" + url.QueryEscape(q.SearchTerm), nil
	case QueryNameserverNameSearch:
		return "nameservers?name=" + url.QueryEscape(q.SearchTerm), nil
	case QueryNameserversSearch:
		return "nameservers?ip=" + url.QueryEscape(q.SearchTerm), nil
	case QueryEntityNameSearch:
		return "entities?fn=" + url.QueryEscape(q.SearchTerm), nil
	case QueryEntityHandleSearch:
		return "entities?handle=" + url.QueryEscape(q.SearchTerm), nil
	case QueryURL:
		return q.RawURL, nil
	default:
		return "", ErrQueryParse("unsupported query kind")
	}
}
