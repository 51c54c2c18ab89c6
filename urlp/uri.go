package urlp

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v4"
	"golang.org/x/net/publicsuffix"
)

// Scheme of a URI, only http and https are understood
type Scheme int

const (
	HTTP Scheme = iota + 1
	HTTPS
)

func (s Scheme) String() string {
	switch s {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	}
	return "unknown"
}

// MarshalJSON as the lower case scheme name
func (s Scheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Scheme) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "http":
		*s = HTTP
	case "https":
		*s = HTTPS
	default:
		return fmt.Errorf("unsupported scheme %q", name)
	}
	return nil
}

// Authority is the userinfo segment preceding the resource (user[:password]@)
type Authority struct {
	Username string  `json:"username"`
	Password *string `json:"password,omitempty"`
}

func (a *Authority) String() string {
	if a == nil {
		return ""
	}
	if a.Password != nil {
		return a.Username + ":" + *a.Password
	}
	return a.Username
}

type ResourceKind int

const (
	ResourceHost ResourceKind = iota + 1
	ResourceIP
)

// Resource identifies the target machine, exactly one of Host or IP is set
// depending on Kind
type Resource struct {
	Kind ResourceKind
	Host string
	IP   [4]byte
}

// HostResource for a (possibly dotted) host name
func HostResource(host string) Resource {
	return Resource{Kind: ResourceHost, Host: host}
}

// IPResource for an IPv4 address
func IPResource(octets [4]byte) Resource {
	return Resource{Kind: ResourceIP, IP: octets}
}

func (r Resource) IsHost() bool { return r.Kind == ResourceHost }
func (r Resource) IsIP() bool   { return r.Kind == ResourceIP }

func (r Resource) String() string {
	switch r.Kind {
	case ResourceHost:
		return r.Host
	case ResourceIP:
		return fmt.Sprintf("%d.%d.%d.%d", r.IP[0], r.IP[1], r.IP[2], r.IP[3])
	}
	return ""
}

// RegistrableDomain returns the effective TLD plus one label for hosts, IPs
// and single label hosts have none
func (r Resource) RegistrableDomain() (string, bool) {
	if r.Kind != ResourceHost || !strings.Contains(r.Host, ".") {
		return "", false
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(r.Host))
	if err != nil {
		return "", false
	}
	return domain, true
}

// MarshalJSON as {"host": ...} or {"ip": ...}
func (r Resource) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ResourceHost:
		return json.Marshal(map[string]string{"host": r.Host})
	case ResourceIP:
		return json.Marshal(map[string]string{"ip": r.String()})
	}
	return []byte("null"), nil
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var v struct {
		Host *string `json:"host"`
		IP   *string `json:"ip"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Host != nil:
		*r = HostResource(*v.Host)
	case v.IP != nil:
		ip := net.ParseIP(*v.IP).To4()
		if ip == nil {
			return fmt.Errorf("invalid IPv4 address %q", *v.IP)
		}
		*r = IPResource([4]byte{ip[0], ip[1], ip[2], ip[3]})
	default:
		*r = Resource{}
	}
	return nil
}

type Port = uint16

// Path segments, empty segments are never stored
type Path []string

type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QueryParams in the order they appeared, duplicates included
type QueryParams []QueryParam

// Get the first value for key
func (q QueryParams) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

type Fragment = string

// URI is the result of a successful parse. All strings are substrings of the
// parsed input. A nil Path or Query means the component was absent, a non-nil
// empty Path means only slashes were present. Path is always written to JSON
// so null and [] keep that difference.
type URI struct {
	Scheme    Scheme      `json:"scheme"`
	Authority *Authority  `json:"authority,omitempty"`
	Resource  Resource    `json:"resource"`
	Port      *Port       `json:"port,omitempty"`
	Path      Path        `json:"path"`
	Query     QueryParams `json:"query,omitempty"`
	Fragment  *Fragment   `json:"fragment,omitempty"`
}

// Copy does a deep copy of the URI
func (u *URI) Copy() *URI {
	if u == nil {
		return nil
	}
	d, err := msgpack.Marshal(u)
	if err != nil {
		panic("failed to copy URI: " + err.Error())
	}

	c := &URI{}
	if err = msgpack.Unmarshal(d, c); err != nil {
		panic("failed to copy URI: " + err.Error())
	}
	// msgpack does not keep the difference between nil and empty
	if u.Path != nil && c.Path == nil {
		c.Path = Path{}
	}
	return c
}

// String -ify the URI in canonical form (lower case scheme)
func (u *URI) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme.String())
	b.WriteString("://")
	if u.Authority != nil {
		b.WriteString(u.Authority.String())
		b.WriteByte('@')
	}
	b.WriteString(u.Resource.String())
	if u.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(*u.Port)))
	}
	if u.Path != nil {
		if len(u.Path) == 0 {
			b.WriteByte('/')
		}
		for _, seg := range u.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}
	for i, p := range u.Query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}
