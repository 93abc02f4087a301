package rdapkit

import "context"

// Domain returns a typed RDAP Domain per RFC 9083, resolving the registry
// base via bootstrap and issuing the GET through Request/ClientConfig so
// redirect-following and loop detection apply uniformly.
func (c *Client) Domain(ctx context.Context, fqdn string) (*Domain, error) {
	base, err := c.rdapBaseForDomain(ctx, fqdn)
	if err != nil {
		return nil, err
	}
	ldh, uni, err := normalizeDomainName(fqdn)
	if err != nil {
		return nil, err
	}
	resp, err := c.Request(ctx, base, QueryType{Kind: QueryDomain, LDH: ldh, Unicode: uni}, DefaultClientConfig())
	if err != nil {
		return nil, err
	}
	d, ok := resp.RDAP.(*Domain)
	if !ok {
		return nil, ErrUnexpectedObject("domain")
	}
	return d, nil
}
