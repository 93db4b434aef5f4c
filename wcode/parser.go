package wcode

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

type Parser struct{ br *bufio.Reader }

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

var (
	rx      = regexp.MustCompile(`^([A-Z][0-9.\-]*)+$`)
	rxSplit = regexp.MustCompile(`[A-Z][0-9.\-]*`)
)

// Read returns the next non-empty block. Comments start with ';'.
func (p *Parser) Read() (ln Block, err error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return nil, err
		}

		ln, err = ParseLine(s)
		if err != nil {
			return nil, err
		}
		if ln == nil {
			continue
		}

		return ln, nil
	}
}

// ParseLine parses a single line. It returns a nil Block for lines that
// are blank or only hold a comment.
func ParseLine(s string) (Block, error) {
	s = strings.SplitN(s, ";", 2)[0]
	s = strings.Replace(s, " ", "", -1)
	s = strings.Replace(s, "\t", "", -1)
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)

	if s == "" {
		return nil, nil
	}

	if !rx.MatchString(s) {
		return nil, errors.New("invalid or unhandled line: " + s)
	}

	codes := rxSplit.FindAllString(s, -1)
	res := make(Block, len(codes))

	for i, c := range codes {
		res[i].W = c[0]
		if len(c) == 1 {
			continue
		}
		v, err := strconv.ParseFloat(c[1:], 64)
		if err != nil {
			return nil, errors.New("invalid argument: " + c)
		}
		res[i].Arg = v
		res[i].HasArg = true
	}

	return res, nil
}
