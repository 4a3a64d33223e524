package mython

import "strings"

const spacesPerIndent = 2

// Lexer is a pull-based, single-pass tokenizer over a string of source text.
// It reads one byte at a time with one byte of lookahead; it never blocks
// and it never re-emits a token. Construct with NewLexer; CurrentToken and
// NextToken are the only two operations spec.md's lexer contract names.
type Lexer struct {
	input string
	pos   int

	atLineStart   bool
	targetIndent  int
	currentIndent int

	current Token
	err     error
}

// NewLexer primes the stream so CurrentToken immediately returns the first
// token, matching the reference constructor's eager first scan.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, atLineStart: true}
	l.current = l.scan()
	return l
}

// CurrentToken returns the last emitted token without advancing.
func (l *Lexer) CurrentToken() Token {
	return l.current
}

// NextToken advances the stream one token and returns it. After Eof has
// been emitted, every further call returns Eof again.
func (l *Lexer) NextToken() Token {
	l.current = l.scan()
	return l.current
}

// Err returns the first lexical error encountered (currently only an
// unterminated string literal), or nil. Once set, the lexer reports Eof for
// the remainder of the stream rather than hanging or emitting garbage.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) advance() {
	l.pos++
}

func (l *Lexer) scan() Token {
	if l.err != nil {
		return newSimpleToken(TokenEof)
	}

	for {
		c, ok := l.peek()
		switch {
		case !ok:
			return l.procEndStream()
		case c == ' ':
			l.advance()
			l.procSpace()
			continue
		case c == '\n':
			l.advance()
			if tok, done := l.procNewline(); done {
				return tok
			}
			// A blank or comment-only line leaves no indent behind.
			l.targetIndent = 0
			continue
		case l.atLineStart && l.currentIndent != l.targetIndent && c != '#':
			return l.procIndentStep()
		case isDigit(c):
			l.advance()
			return l.procNumber(c)
		case isIdentStart(c):
			l.advance()
			return l.procWord(c)
		case c == '\'' || c == '"':
			l.advance()
			tok := l.procString(c)
			if l.err != nil {
				return newSimpleToken(TokenEof)
			}
			return tok
		case c == '#':
			l.advance()
			l.procComment()
			continue
		default:
			l.advance()
			return l.procOperatorOrChar(c)
		}
	}
}

// procEndStream drives the balanced-Dedent cascade described in spec.md
// §4.1's "End-of-stream handling": first a Newline if content is pending,
// then one Dedent per open indent level, then Eof forever. The cascade
// counts currentIndent down to zero on its own, so it is balanced whether
// or not the source ends with a newline. The trailing Newline also resets
// targetIndent to zero, as procNewline does, rather than leaving it at the
// final line's value as the C++ reference does — see DESIGN.md.
func (l *Lexer) procEndStream() Token {
	if !l.atLineStart {
		l.atLineStart = true
		l.targetIndent = 0
		return newSimpleToken(TokenNewline)
	}
	if l.currentIndent > 0 {
		l.currentIndent--
		return newSimpleToken(TokenDedent)
	}
	return newSimpleToken(TokenEof)
}

func (l *Lexer) procSpace() {
	count := 1
	for {
		c, ok := l.peek()
		if !ok || c != ' ' {
			break
		}
		l.advance()
		count++
	}
	if l.atLineStart {
		l.targetIndent = count / spacesPerIndent
	}
}

func (l *Lexer) procNewline() (Token, bool) {
	if l.atLineStart {
		// Blank or comment-only line: suppressed, per spec.md §4.1.
		return Token{}, false
	}
	l.targetIndent = 0
	l.atLineStart = true
	return newSimpleToken(TokenNewline), true
}

func (l *Lexer) procIndentStep() Token {
	if l.currentIndent < l.targetIndent {
		l.currentIndent++
		return newSimpleToken(TokenIndent)
	}
	l.currentIndent--
	return newSimpleToken(TokenDedent)
}

func (l *Lexer) procNumber(first byte) Token {
	var n int64 = int64(first - '0')
	for {
		c, ok := l.peek()
		if !ok || !isDigit(c) {
			break
		}
		l.advance()
		n = n*10 + int64(c-'0')
	}
	l.atLineStart = false
	return newNumberToken(n)
}

func (l *Lexer) procWord(first byte) Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		c, ok := l.peek()
		if !ok || !(c == '_' || isAlpha(c) || isDigit(c)) {
			break
		}
		l.advance()
		sb.WriteByte(c)
	}
	l.atLineStart = false
	return lookupIdent(sb.String())
}

// procString implements spec.md §4.1's escape table (\', \", \n, \t).
// Other escapes are policy-undefined per spec.md §4.1 note; matching the
// C++ reference, an unrecognized escape consumes both the backslash and the
// following byte and contributes nothing to the decoded string.
func (l *Lexer) procString(quote byte) Token {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok {
			l.err = newLexError("unterminated string literal")
			l.atLineStart = false
			return Token{}
		}
		if c == quote {
			l.advance()
			break
		}
		if c == '\\' {
			l.advance()
			esc, ok := l.peek()
			if !ok {
				l.err = newLexError("unterminated string literal")
				l.atLineStart = false
				return Token{}
			}
			l.advance()
			switch esc {
			case '\'':
				sb.WriteByte('\'')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			}
			continue
		}
		sb.WriteByte(c)
		l.advance()
	}
	l.atLineStart = false
	return newStringToken(sb.String())
}

// procComment discards up to but not including the line's terminating
// newline (or EOF), so the caller's normal newline/EOF handling still
// fires — this is the "re-injected newline" spec.md §4.1 describes.
func (l *Lexer) procComment() {
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) procOperatorOrChar(c byte) Token {
	switch c {
	case '=':
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			l.atLineStart = false
			return newSimpleToken(TokenEq)
		}
	case '!':
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			l.atLineStart = false
			return newSimpleToken(TokenNotEq)
		}
	case '<':
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			l.atLineStart = false
			return newSimpleToken(TokenLessOrEq)
		}
	case '>':
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			l.atLineStart = false
			return newSimpleToken(TokenGreaterOrEq)
		}
	}
	l.atLineStart = false
	return newCharToken(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentStart(c byte) bool { return isAlpha(c) || c == '_' }
