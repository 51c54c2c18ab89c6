package parsers

import (
	"gitlab.com/urlp/urlp"
)

var (
	hostToken = TakeTill1(notHostChar, "host")
	pathToken = TakeTill1(notPathChar, "path")
	dot       = Char('.')
)

// Scheme matches http:// or https:// in any case. The enum value is bound to
// the literal that matched, so no separate conversion can fail.
var Scheme = Alt(
	Value(urlp.HTTP, TagNoCase("http://")),
	Value(urlp.HTTPS, TagNoCase("https://")),
)

// Authority matches user[:password]@
var Authority = Map(
	Terminated(Pair(hostToken, Opt(Preceded(Char(':'), hostToken))), Char('@')),
	func(t Tuple[string, *string]) urlp.Authority {
		return urlp.Authority{Username: t.First, Password: t.Second}
	},
)

var label = Terminated(hostToken, dot)

// dottedHost is the longest run of dot terminated labels followed by an
// alphabetic label. Labels are given back one at a time until the alphabetic
// label matches, so "a.org.123" yields "a.org".
func dottedHost(in Input) (string, Input, error) {
	var ends []Input
	next := in
	for {
		_, n, err := label(next)
		if err != nil {
			if len(ends) == 0 {
				return "", in, err
			}
			break
		}
		ends = append(ends, n)
		next = n
	}

	var furthest error
	for i := len(ends) - 1; i >= 0; i-- {
		_, n, err := Alpha1(ends[i])
		if err == nil {
			return n.Since(in), n, nil
		}
		if furthest == nil {
			furthest = err
		}
	}
	return "", in, furthest
}

// Host matches a dotted host name ending in an alphabetic label or, failing
// that, a single host token ("example.123" only matches "example").
var Host = Map(Alt[string](dottedHost, hostToken), urlp.HostResource)

var octet = Map(Digits(3, 8), func(v uint64) byte { return byte(v) })

// IP matches four dot separated octets, each 1-3 digits in 0-255
func IP(in Input) (urlp.Resource, Input, error) {
	var octets [4]byte
	next := in
	for i := range octets {
		if i > 0 {
			_, n, err := dot(next)
			if err != nil {
				return urlp.Resource{}, in, err
			}
			next = n
		}
		v, n, err := octet(next)
		if err != nil {
			return urlp.Resource{}, in, err
		}
		octets[i] = v
		next = n
	}
	return urlp.IPResource(octets), next, nil
}

// Resource is a host or an IPv4 address. Both are tried from the same offset,
// host first, and the longer match wins so "10.0.0.1" is not cut short to
// the host "10".
var Resource = Longest[urlp.Resource](Host, IP)

// Port matches :digits, at most 5 digits that must fit in 16 bits
var Port = Map(Preceded(Char(':'), Digits(5, 16)), func(v uint64) urlp.Port { return urlp.Port(v) })

// Path matches one or more slashes, each optionally followed by a segment.
// Slashes without a segment contribute nothing.
var Path = Map(Many1(Preceded(Char('/'), Opt(pathToken))), func(segs []*string) urlp.Path {
	path := make(urlp.Path, 0, len(segs))
	for _, seg := range segs {
		if seg != nil {
			path = append(path, *seg)
		}
	}
	return path
})

var queryParam = Map(Pair(Terminated(hostToken, Char('=')), hostToken), func(t Tuple[string, string]) urlp.QueryParam {
	return urlp.QueryParam{Key: t.First, Value: t.Second}
})

// Query matches ?key=value followed by any number of &key=value
var Query = Map(
	Preceded(Char('?'), Pair(queryParam, Many0(Preceded(Char('&'), queryParam)))),
	func(t Tuple[urlp.QueryParam, []urlp.QueryParam]) urlp.QueryParams {
		return append(urlp.QueryParams{t.First}, t.Second...)
	},
)

// Fragment matches #token
var Fragment = Preceded(Char('#'), hostToken)
