package token

import (
	"regexp"
	"strings"
)

type TokenType int

const (
	TSkip TokenType = iota
	TKeyValue
	TKey
	TLCurl
	TRCurl
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TSkip:     "TSkip",
		TKeyValue: "TKeyValue",
		TKey:      "TKey",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
	}[t]
}

type Token struct {
	Type  TokenType
	Key   string
	Value string
	Pos   Pos
}

var (
	keyValueRx = regexp.MustCompile(`^\t*"(\S+)"\t\t"(.*)"$`)
	keyOnlyRx  = regexp.MustCompile(`^\t*"(\S+)"$`)
	lCurlRx    = regexp.MustCompile(`^\t*\{$`)
	rCurlRx    = regexp.MustCompile(`^\t*\}$`)
)

// Scan classifies one raw line. lineNo is 1-based. Classification never
// fails; lines matching no shape come back as TSkip.
func Scan(line string, lineNo int) Token {
	line = strings.TrimSuffix(line, "\r")
	tok := Token{Pos: Pos{Line: lineNo}}
	if m := keyValueRx.FindStringSubmatch(line); m != nil {
		tok.Type = TKeyValue
		tok.Key = m[1]
		tok.Value = m[2]
		return tok
	}
	if m := keyOnlyRx.FindStringSubmatch(line); m != nil {
		tok.Type = TKey
		tok.Key = m[1]
		return tok
	}
	if lCurlRx.MatchString(line) {
		tok.Type = TLCurl
		return tok
	}
	if rCurlRx.MatchString(line) {
		tok.Type = TRCurl
		return tok
	}
	tok.Type = TSkip
	return tok
}

// Tokenize appends one token per line to dst.
func Tokenize(dst []Token, lines []string) []Token {
	for i, line := range lines {
		dst = append(dst, Scan(line, i+1))
	}
	return dst
}

// Quote wraps v in double quotes. VDF has no escape syntax; the caller
// is responsible for not feeding values with embedded quotes or tabs.
func Quote(v string) string {
	return `"` + v + `"`
}
