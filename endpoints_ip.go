package rdapkit

import (
	"context"
	"net/netip"
)

// rdapBaseForIP resolves the RDAP base for a given IP or CIDR using IANA ipv4/ipv6 bootstrap.
func (c *Client) rdapBaseForIP(ctx context.Context, ipOrCIDR string) (string, error) {
	return c.resolveBaseFromBootstrapIP(ctx, ipOrCIDR)
}

// IP returns a typed RDAP Network for an address or CIDR, issuing the GET
// through Request/ClientConfig so redirect-following and loop detection
// apply uniformly.
func (c *Client) IP(ctx context.Context, ipOrCIDR string) (*Network, error) {
	base, err := c.rdapBaseForIP(ctx, ipOrCIDR)
	if err != nil {
		return nil, err
	}
	q, err := ipQueryType(ipOrCIDR)
	if err != nil {
		return nil, err
	}
	resp, err := c.Request(ctx, base, q, DefaultClientConfig())
	if err != nil {
		return nil, err
	}
	ipn, ok := resp.RDAP.(*Network)
	if !ok {
		return nil, ErrUnexpectedObject("ip network")
	}
	return ipn, nil
}

func ipQueryType(ipOrCIDR string) (QueryType, error) {
	if pfx, err := netip.ParsePrefix(ipOrCIDR); err == nil {
		if pfx.Addr().Is4() {
			return QueryType{Kind: QueryIPv4Cidr, Cidr: pfx}, nil
		}
		return QueryType{Kind: QueryIPv6Cidr, Cidr: pfx}, nil
	}
	addr, err := netip.ParseAddr(ipOrCIDR)
	if err != nil {
		return QueryType{}, ErrQueryParse("invalid IP or CIDR: " + ipOrCIDR)
	}
	if addr.Is4() {
		return QueryType{Kind: QueryIPv4Addr, IPAddr: addr}, nil
	}
	return QueryType{Kind: QueryIPv6Addr, IPAddr: addr}, nil
}
