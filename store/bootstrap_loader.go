package store

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// bootstrapFile mirrors the IANA bootstrap JSON shape: {services: [[keys, urls], ...]}.
// Grounded on the client's bootstrapServices type in bootstrap_resolver.go; the server
// side needs its own copy since it seeds redirect records instead of resolving a base URL.
type bootstrapFile struct {
	Version     string   `json:"version"`
	Publication string   `json:"publication"`
	Services    [][]any  `json:"services"`
}

func firstURL(urls []string) (string, error) {
	if len(urls) == 0 {
		return "", fmt.Errorf("bootstrap service entry has no urls")
	}
	for _, u := range urls {
		if strings.HasPrefix(u, "https://") {
			return strings.TrimRight(u, "/") + "/", nil
		}
	}
	return strings.TrimRight(urls[0], "/") + "/", nil
}

func toStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// LoadDNSBootstrap ingests an IANA dns.json payload, inserting a redirect
// record under every TLD key of every service entry.
func LoadDNSBootstrap(s *Store, raw []byte) error {
	var bf bootstrapFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return fmt.Errorf("parse dns bootstrap: %w", err)
	}
	tx := s.NewTx()
	for _, svc := range bf.Services {
		if len(svc) != 2 {
			continue
		}
		keys := toStrings(svc[0])
		urls := toStrings(svc[1])
		base, err := firstURL(urls)
		if err != nil {
			continue
		}
		for _, tld := range keys {
			tld = strings.ToLower(strings.TrimSpace(tld))
			if tld == "" {
				continue
			}
			tx.AddDomainErr(DomainId{LDHName: tld, UnicodeName: tld}, Redirect(base))
		}
	}
	tx.Commit()
	return nil
}

// LoadIPBootstrap ingests an IANA ipv4.json or ipv6.json payload, inserting a
// redirect record under every CIDR key of every service entry.
func LoadIPBootstrap(s *Store, raw []byte) error {
	var bf bootstrapFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return fmt.Errorf("parse ip bootstrap: %w", err)
	}
	tx := s.NewTx()
	for _, svc := range bf.Services {
		if len(svc) != 2 {
			continue
		}
		cidrs := toStrings(svc[0])
		urls := toStrings(svc[1])
		base, err := firstURL(urls)
		if err != nil {
			continue
		}
		for _, raw := range cidrs {
			pfx, err := netip.ParsePrefix(strings.TrimSpace(raw))
			if err != nil {
				continue
			}
			_ = tx.AddNetworkErr(NetworkId{Kind: NetworkIdCidr, Cidr: pfx}, Redirect(base))
		}
	}
	tx.Commit()
	return nil
}

// LoadASNBootstrap ingests an IANA asn.json payload, inserting a redirect
// record under every autnum range key ("N" or "N-M") of every service entry.
func LoadASNBootstrap(s *Store, raw []byte) error {
	var bf bootstrapFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return fmt.Errorf("parse asn bootstrap: %w", err)
	}
	tx := s.NewTx()
	for _, svc := range bf.Services {
		if len(svc) != 2 {
			continue
		}
		ranges := toStrings(svc[0])
		urls := toStrings(svc[1])
		base, err := firstURL(urls)
		if err != nil {
			continue
		}
		for _, r := range ranges {
			lo, hi, ok := parseASNRange(r)
			if !ok {
				continue
			}
			tx.AddAutnumErr(AutnumId{StartAutnum: lo, EndAutnum: hi}, Redirect(base))
		}
	}
	tx.Commit()
	return nil
}

// LoadObjectTagBootstrap ingests an IANA object-tags.json payload, inserting
// a redirect record under every registrant tag of every service entry. Tags
// are stored using the "-TAG" entity-handle suffix convention so GetEntity's
// tag fallback finds them.
func LoadObjectTagBootstrap(s *Store, raw []byte) error {
	var bf bootstrapFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return fmt.Errorf("parse object-tags bootstrap: %w", err)
	}
	tx := s.NewTx()
	for _, svc := range bf.Services {
		if len(svc) != 2 {
			continue
		}
		tags := toStrings(svc[0])
		urls := toStrings(svc[1])
		base, err := firstURL(urls)
		if err != nil {
			continue
		}
		for _, tag := range tags {
			tag = strings.ToUpper(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			tx.AddEntityErr(EntityId{Handle: "-" + tag}, Redirect(base))
		}
	}
	tx.Commit()
	return nil
}

func parseASNRange(s string) (uint32, uint32, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	if i := strings.IndexByte(s, '-'); i >= 0 {
		lo, err1 := strconv.ParseUint(strings.TrimSpace(s[:i]), 10, 32)
		hi, err2 := strconv.ParseUint(strings.TrimSpace(s[i+1:]), 10, 32)
		if err1 != nil || err2 != nil || hi < lo {
			return 0, 0, false
		}
		return uint32(lo), uint32(hi), true
	}
	x, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(x), uint32(x), true
}
