package curl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Protocol is a URL scheme. Recognized schemes canonicalize to their
// lowercase constant; anything else is kept as written.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
	ProtocolFTP   Protocol = "ftp"
	ProtocolSMB   Protocol = "smb"
)

// ProtocolFromScheme maps raw scheme text to a Protocol, matching the
// known set case-insensitively.
func ProtocolFromScheme(scheme string) Protocol {
	switch strings.ToLower(scheme) {
	case "http":
		return ProtocolHTTP
	case "https":
		return ProtocolHTTPS
	case "ftp":
		return ProtocolFTP
	case "smb":
		return ProtocolSMB
	}
	return Protocol(scheme)
}

// UserInfo is the optional username[:password] component preceding @host.
type UserInfo struct {
	Username string  `json:"username"`
	Password *string `json:"password,omitempty"`
}

// userInfoFromRaw splits raw userinfo text on the first colon. An empty
// username yields nil: the component is silently omitted rather than
// treated as an error.
func userInfoFromRaw(raw string) *UserInfo {
	if raw == "" {
		return nil
	}
	username, password, hasPassword := strings.Cut(raw, ":")
	if username == "" {
		return nil
	}
	info := &UserInfo{Username: username}
	if hasPassword {
		info.Password = stringPtr(password)
	}
	return info
}

// QueryParam is one key=value pair from a URL query string. A pair with no
// "=" keeps an empty value.
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// URL is a decomposed curl target. Absent optional components are zero
// values, never empty-but-present: re-rendering with String omits them.
type URL struct {
	Protocol Protocol     `json:"protocol"`
	Userinfo *UserInfo    `json:"userinfo,omitempty"`
	Domain   string       `json:"domain"`
	Path     string       `json:"path,omitempty"`
	Query    []QueryParam `json:"query,omitempty"`
	Fragment string       `json:"fragment,omitempty"`
}

// String renders the canonical scheme://[user[:pass]@]host[/path][?query][#fragment]
// form, omitting absent components.
func (u URL) String() string {
	var sb strings.Builder
	sb.WriteString(string(u.Protocol))
	sb.WriteString("://")
	if u.Userinfo != nil {
		sb.WriteString(u.Userinfo.Username)
		if u.Userinfo.Password != nil {
			sb.WriteByte(':')
			sb.WriteString(*u.Userinfo.Password)
		}
		sb.WriteByte('@')
	}
	sb.WriteString(u.Domain)
	sb.WriteString(u.Path)
	if len(u.Query) > 0 {
		sb.WriteByte('?')
		for i, pair := range u.Query {
			if i > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(pair.Key)
			sb.WriteByte('=')
			sb.WriteString(pair.Value)
		}
	}
	if u.Fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(u.Fragment)
	}
	return sb.String()
}

// ParseURL decomposes a single already-extracted argument into a URL.
// Trailing text that matches no component is ignored.
func ParseURL(input string) (URL, error) {
	s := skipSpace(input)

	scheme, rest, err := parseScheme(s)
	if err != nil {
		return URL{}, err
	}

	authority, rest := cutAt(rest, "/?#")
	userinfoRaw, host := splitAuthority(authority)
	if host == "" {
		return URL{}, &SyntaxError{Context: "url host", Fragment: s}
	}

	u := URL{
		Protocol: ProtocolFromScheme(scheme),
		Userinfo: userInfoFromRaw(userinfoRaw),
		Domain:   host,
	}

	if strings.HasPrefix(rest, "/") {
		u.Path, rest = cutAt(rest, "?#")
	}
	if strings.HasPrefix(rest, "?") {
		var query string
		query, rest = cutAt(rest, "#")
		u.Query = parseQueryPairs(query)
	}
	u.Fragment = parseFragment(rest)

	return u, nil
}

// cutAt splits s before the first occurrence of any rune in chars. Without
// one, the whole string is the head.
func cutAt(s, chars string) (head, tail string) {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// parseScheme captures a letter followed by alphanumerics, immediately
// followed by the literal "://". The raw scheme text is returned.
func parseScheme(s string) (string, string, error) {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLetter(first) {
		return "", "", &SyntaxError{Context: "url protocol", Fragment: s}
	}
	i := size
	for i < len(s) {
		r, rs := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += rs
	}
	if !strings.HasPrefix(s[i:], "://") {
		return "", "", &SyntaxError{Context: "url protocol", Fragment: s}
	}
	return s[:i], s[i+len("://"):], nil
}

// splitAuthority divides the credentials+domain segment on its last "@".
// Passwords may themselves contain "@", so the final occurrence marks the
// host boundary. Without one the whole segment is the host.
func splitAuthority(authority string) (userinfo, host string) {
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		return authority[:at], authority[at+1:]
	}
	return "", authority
}

// parseQueryPairs splits raw query text into ordered key/value pairs,
// preserving duplicates and discarding empty fragments.
func parseQueryPairs(raw string) []QueryParam {
	raw = strings.TrimPrefix(raw, "?")
	var pairs []QueryParam
	for _, fragment := range strings.Split(raw, "&") {
		if fragment == "" {
			continue
		}
		key, value, _ := strings.Cut(fragment, "=")
		pairs = append(pairs, QueryParam{Key: key, Value: value})
	}
	return pairs
}

// parseFragment accepts "#" followed by at least one alphanumeric; anything
// else yields no fragment.
func parseFragment(rest string) string {
	if !strings.HasPrefix(rest, "#") {
		return ""
	}
	s := rest[1:]
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return s[:i]
}
