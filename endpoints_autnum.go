package rdapkit

import (
	"context"
	"strconv"
	"strings"
)

// rdapBaseForASN resolves the RDAP base for an ASN via IANA asn.json.
func (c *Client) rdapBaseForASN(ctx context.Context, asn string) (string, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(asn), "AS"))
	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return "", err
	}
	return c.resolveBaseFromBootstrapASN(ctx, n)
}

// Autnum returns a typed RDAP Autnum, issuing the GET through
// Request/ClientConfig so redirect-following and loop detection apply
// uniformly.
func (c *Client) Autnum(ctx context.Context, asn string) (*Autnum, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(asn), "AS")
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return nil, err
	}
	base, err := c.rdapBaseForASN(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	resp, err := c.Request(ctx, base, QueryType{Kind: QueryAutNum, Autnum: uint32(n)}, DefaultClientConfig())
	if err != nil {
		return nil, err
	}
	a, ok := resp.RDAP.(*Autnum)
	if !ok {
		return nil, ErrUnexpectedObject("autnum")
	}
	return a, nil
}
