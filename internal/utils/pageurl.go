package utils

import (
	"errors"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrEmptyURL    = errors.New("empty url")
	ErrMissingHost = errors.New("missing host")
)

// Collector-side query noise that does not change which page was analyzed.
var trackingParams = map[string]struct{}{
	"utm_source": {}, "utm_medium": {}, "utm_campaign": {}, "utm_term": {}, "utm_content": {},
	"gclid": {}, "fbclid": {}, "mc_cid": {}, "mc_eid": {},
}

// CanonicalPage returns a deterministic key for the page a report was
// collected on. Scheme and host are lowercased, IDN hosts converted to
// punycode, default ports and credentials dropped, the path cleaned without a
// trailing slash, the fragment removed and tracking params dropped. Remaining
// query params are sorted.
func CanonicalPage(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &url.Error{Op: "canonicalize", URL: raw, Err: ErrEmptyURL}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", &url.Error{Op: "canonicalize", URL: raw, Err: ErrMissingHost}
	}

	u.Scheme = strings.ToLower(u.Scheme)

	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}
	switch port := u.Port(); {
	case port == "", u.Scheme == "http" && port == "80", u.Scheme == "https" && port == "443":
		u.Host = host
	default:
		u.Host = net.JoinHostPort(host, port)
	}
	u.User = nil

	p := path.Clean("/" + u.Path)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	u.Path = p
	u.RawPath = ""
	u.Fragment = ""
	u.RawFragment = ""

	q := u.Query()
	keys := make([]string, 0, len(q))
	for k := range q {
		if _, ok := trackingParams[strings.ToLower(k)]; ok {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ordered := url.Values{}
	for _, k := range keys {
		values := q[k]
		sort.Strings(values)
		for _, v := range values {
			ordered.Add(k, v)
		}
	}
	u.RawQuery = ordered.Encode()

	return u.String(), nil
}

// SamePage reports whether a and b canonicalize to the same page. URLs that
// cannot be parsed are compared verbatim.
func SamePage(a, b string) bool {
	ca, errA := CanonicalPage(a)
	cb, errB := CanonicalPage(b)
	if errA != nil || errB != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return ca == cb
}
