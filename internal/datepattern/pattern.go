// Package datepattern compiles Joda-Time style date patterns ("YYYYMMDD",
// "yyyy-MM-dd'T'HH") and renders them against a time.Time.
package datepattern

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fieldLetters lists every pattern letter Format knows how to render.
const fieldLetters = "GCYyxweEDMdaKhHkmsSzZ"

// SyntaxError reports a pattern that cannot be compiled.
type SyntaxError struct {
	Pattern string
	Pos     int // rune offset into Pattern
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("date pattern %q: %s at position %d", e.Pattern, e.Msg, e.Pos)
}

// token is either a literal (letter == 0) or a repeated field letter.
type token struct {
	letter rune
	width  int
	text   string
}

// Pattern is a compiled date pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	source string
	tokens []token
}

// Compile parses pattern. Letters are fields, the length of a run of the same
// letter is its width, text between single quotes is literal, and two single
// quotes produce one. Any other rune is copied as is.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, &SyntaxError{Pattern: pattern, Pos: 0, Msg: "empty pattern"}
	}

	runes := []rune(pattern)
	var tokens []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case c == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			j, closed := i+1, false
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						lit.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteRune(runes[j])
				j++
			}
			if !closed {
				return nil, &SyntaxError{Pattern: pattern, Pos: i, Msg: "unterminated quote"}
			}
			i = j + 1
		case isLetter(c):
			if !strings.ContainsRune(fieldLetters, c) {
				return nil, &SyntaxError{Pattern: pattern, Pos: i, Msg: fmt.Sprintf("illegal pattern component %q", c)}
			}
			j := i
			for j < len(runes) && runes[j] == c {
				j++
			}
			flush()
			tokens = append(tokens, token{letter: c, width: j - i})
			i = j
		default:
			lit.WriteRune(c)
			i++
		}
	}
	flush()

	return &Pattern{source: pattern, tokens: tokens}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// Format renders t. Numeric fields are zero-padded to their width.
func (p *Pattern) Format(t time.Time) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		if tok.letter == 0 {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(tok.render(t))
	}
	return b.String()
}

func (tok token) render(t time.Time) string {
	w := tok.width
	switch tok.letter {
	case 'G':
		if t.Year() > 0 {
			return "AD"
		}
		return "BC"
	case 'C':
		return pad(yearOfEra(t)/100, w)
	case 'Y':
		return year(yearOfEra(t), w)
	case 'y':
		return year(t.Year(), w)
	case 'x':
		wy, _ := t.ISOWeek()
		return year(wy, w)
	case 'w':
		_, wk := t.ISOWeek()
		return pad(wk, w)
	case 'e':
		return pad(isoWeekday(t), w)
	case 'E':
		return text(t.Weekday().String(), w)
	case 'D':
		return pad(t.YearDay(), w)
	case 'M':
		if w >= 3 {
			return text(t.Month().String(), w)
		}
		return pad(int(t.Month()), w)
	case 'd':
		return pad(t.Day(), w)
	case 'a':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'K':
		return pad(t.Hour()%12, w)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, w)
	case 'H':
		return pad(t.Hour(), w)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, w)
	case 'm':
		return pad(t.Minute(), w)
	case 's':
		return pad(t.Second(), w)
	case 'S':
		frac := fmt.Sprintf("%09d", t.Nanosecond())
		if w <= len(frac) {
			return frac[:w]
		}
		return frac + strings.Repeat("0", w-len(frac))
	case 'z':
		if w >= 4 {
			return t.Location().String()
		}
		name, _ := t.Zone()
		return name
	case 'Z':
		switch w {
		case 1:
			return t.Format("-0700")
		case 2:
			return t.Format("-07:00")
		default:
			return t.Location().String()
		}
	}
	return ""
}

// year renders y as a two-digit year for width 2, padded otherwise.
func year(y, w int) string {
	if w == 2 {
		return pad(((y%100)+100)%100, 2)
	}
	return pad(y, w)
}

func yearOfEra(t time.Time) int {
	if y := t.Year(); y > 0 {
		return y
	}
	return 1 - t.Year()
}

// isoWeekday numbers Monday as 1 and Sunday as 7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// text returns the full name for width 4 and up, the three-letter form otherwise.
func text(name string, w int) string {
	if w >= 4 || len(name) <= 3 {
		return name
	}
	return name[:3]
}

func pad(n, w int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) < w {
		s = strings.Repeat("0", w-len(s)) + s
	}
	if neg {
		return "-" + s
	}
	return s
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
