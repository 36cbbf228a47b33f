package keywords

import (
	"bufio"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof marks the end of the input once the scanner has nothing more to read.
const eof rune = -1

// clitics are the contraction suffixes split off the preceding word, so
// "we're" becomes "we" + "'re" and "don't" becomes "do" + "n't".
var clitics = map[string]struct{}{
	"'s":  {},
	"'re": {},
	"'ve": {},
	"'ll": {},
	"'d":  {},
	"'m":  {},
}

// Tokenize splits text into word and punctuation tokens.
//
// Words are runs of letters, digits, marks and underscores. A hyphen, period or
// slash between two word characters joins them ("state-of-the-art", "node.js",
// "ci/cd"), as do a comma or colon between digits ("1,000", "10:30"). Trailing
// '+' and '#' stay on the word ("c++", "c#"). English clitics are split into
// tokens of their own. Every other non-space rune is a punctuation token, with
// runs of the same rune ("...", "--") kept together.
func Tokenize(text string) ([]string, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Split(ScanTokens)
	// the text is in memory already, a single token may span all of it
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)

	tokens := make([]string, 0, len(text)/6+1)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// ScanTokens is a bufio.SplitFunc implementing the rules described on Tokenize.
func ScanTokens(data []byte, atEOF bool) (int, []byte, error) {
	c := cursor{data: data, atEOF: atEOF}

	start := 0
	for {
		r, size, more := c.at(start)
		if more || r == eof {
			return start, nil, nil
		}
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}

	end, more := c.token(start)
	if more {
		// leading space can be dropped, the token itself needs a larger buffer
		return start, nil, nil
	}

	return end, data[start:end], nil
}

type cursor struct {
	data  []byte
	atEOF bool
}

// at decodes the rune at offset i. more reports that the buffer ends before
// the rune can be decided and the scanner has to read further.
func (c cursor) at(i int) (r rune, size int, more bool) {
	if i >= len(c.data) {
		if c.atEOF {
			return eof, 0, false
		}
		return 0, 0, true
	}

	if !c.atEOF && !utf8.FullRune(c.data[i:]) {
		return 0, 0, true
	}

	r, size = utf8.DecodeRune(c.data[i:])
	return r, size, false
}

func (c cursor) token(start int) (int, bool) {
	r, size, _ := c.at(start)

	switch {
	case isWordRune(r):
		return c.word(start)
	case isApostrophe(r):
		run, end, more := c.wordRun(start + size)
		if more {
			return 0, true
		}
		if isClitic("'" + run) {
			return end, false
		}
		return start + size, false
	default:
		end := start + size
		for {
			next, n, more := c.at(end)
			if more {
				return 0, true
			}
			if next != r {
				return end, false
			}
			end += n
		}
	}
}

func (c cursor) word(start int) (int, bool) {
	end := start
	for {
		r, size, more := c.at(end)
		if more {
			return 0, true
		}

		switch {
		case isWordRune(r):
			end += size

		case r == '-' || r == '.' || r == '/' || r == ',' || r == ':':
			next, n, more := c.at(end + size)
			if more {
				return 0, true
			}
			if !isWordRune(next) {
				return end, false
			}
			if r == ',' || r == ':' {
				prev, _ := utf8.DecodeLastRune(c.data[start:end])
				if !unicode.IsDigit(prev) || !unicode.IsDigit(next) {
					return end, false
				}
			}
			end += size + n

		case isApostrophe(r):
			run, runEnd, more := c.wordRun(end + size)
			if more {
				return 0, true
			}
			if run == "" || isClitic("'"+run) {
				return end, false
			}
			if strings.EqualFold(run, "t") {
				prev, n := utf8.DecodeLastRune(c.data[start:end])
				if (prev == 'n' || prev == 'N') && end-n > start {
					return end - n, false
				}
			}
			end = runEnd

		case r == '+' || r == '#':
			suffixEnd := end
			for {
				s, n, more := c.at(suffixEnd)
				if more {
					return 0, true
				}
				if s != '+' && s != '#' {
					if isWordRune(s) {
						return end, false
					}
					return suffixEnd, false
				}
				suffixEnd += n
			}

		default:
			return end, false
		}
	}
}

// wordRun reads the run of word runes starting at i.
func (c cursor) wordRun(i int) (string, int, bool) {
	end := i
	for {
		r, size, more := c.at(end)
		if more {
			return "", 0, true
		}
		if !isWordRune(r) {
			return string(c.data[i:end]), end, false
		}
		end += size
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isClitic(s string) bool {
	_, ok := clitics[strings.ToLower(s)]
	return ok
}

// isPunctuation reports whether s consists of punctuation and symbol runes only.
func isPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
