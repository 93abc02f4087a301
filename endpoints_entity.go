package rdapkit

import "context"

// Entity queries an entity handle and returns a typed Entity; tldHint helps
// pick the right registry base. The GET is issued through
// Request/ClientConfig so redirect-following and loop detection apply
// uniformly.
func (c *Client) Entity(ctx context.Context, handle, tldHint string) (*Entity, error) {
	var base string
	var err error
	if tl := trimDotLower(tldHint); tl != "" {
		base, err = c.rdapBaseForTLD(ctx, tl)
	}
	if base == "" || err != nil {
		base = "https://rdap.org"
	}
	resp, err := c.Request(ctx, base, QueryType{Kind: QueryEntity, Handle: handle}, DefaultClientConfig())
	if err != nil {
		return nil, err
	}
	e, ok := resp.RDAP.(*Entity)
	if !ok {
		return nil, ErrUnexpectedObject("entity")
	}
	return e, nil
}
