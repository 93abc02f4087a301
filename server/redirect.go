package server

import "strings"

// joinRedirectLocation implements the redirect construction rule of spec
// section 4.E: given a stored redirect origin U and the request path
// component P (e.g. "/domain/foo.example"), the server appends P to U
// unless U already ends in that component, collapsing any resulting "//"
// within the path (never within the authority).
func joinRedirectLocation(storedURL, requestPath string) string {
	u := strings.TrimRight(storedURL, "/")
	p := "/" + strings.TrimLeft(requestPath, "/")
	if strings.HasSuffix(u, p) {
		return collapseSlashesInPath(storedURL)
	}
	return collapseSlashesInPath(u + p)
}

// collapseSlashesInPath collapses "//" runs in the path portion of a URL
// while leaving the "scheme://authority" separator intact.
func collapseSlashesInPath(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return collapseRuns(u)
	}
	authorityEnd := i + len("://")
	pathStart := strings.IndexByte(u[authorityEnd:], '/')
	if pathStart < 0 {
		return u
	}
	pathStart += authorityEnd
	return u[:pathStart] + collapseRuns(u[pathStart:])
}

func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSlash := false
	for _, r := range s {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
