package rdapkit

import "context"

// Nameserver returns a typed RDAP Nameserver, issuing the GET through
// Request/ClientConfig so redirect-following and loop detection apply
// uniformly.
func (c *Client) Nameserver(ctx context.Context, host string) (*Nameserver, error) {
	base, err := c.rdapBaseForDomain(ctx, host)
	if err != nil || base == "" {
		base = "https://rdap.org"
	}
	ldh, uni, err := normalizeDomainName(host)
	if err != nil {
		return nil, err
	}
	resp, err := c.Request(ctx, base, QueryType{Kind: QueryNameserver, LDH: ldh, Unicode: uni}, DefaultClientConfig())
	if err != nil {
		return nil, err
	}
	ns, ok := resp.RDAP.(*Nameserver)
	if !ok {
		return nil, ErrUnexpectedObject("nameserver")
	}
	return ns, nil
}
