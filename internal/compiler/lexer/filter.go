package lexer

import (
	"github.com/corelang/pytocpp/internal/compiler/errors"
	"github.com/corelang/pytocpp/internal/compiler/token"
)

// indentMode is the marking pass's three-valued sub-state: a COLON makes an
// indent possible, a NEWLINE right after it makes one mandatory, and any
// other substantive token resets the window.
type indentMode int

const (
	forbidden indentMode = iota
	possible
	mandatory
)

// Filter wraps a raw Lexer and synthesizes INDENT/DEDENT/NEWLINE/ENDMARKER,
// folding the must_indent marking pass and the indentation accounting pass
// into one state machine rather than two chained generators — the marking
// happens inline, one token ahead of the accounting that consumes it.
type Filter struct {
	lex    *Lexer
	logger *errors.Logger

	mode indentMode

	exprDepth   int
	scopeDepth  int
	scopeStack  []int
	atLineStart bool
	emptyLine   bool

	pending []token.Token
	eofSeen bool
	lastPos token.Position
}

func NewFilter(lex *Lexer, logger *errors.Logger) *Filter {
	return &Filter{
		lex:         lex,
		logger:      logger,
		scopeStack:  []int{0},
		atLineStart: true,
		emptyLine:   true,
	}
}

// Next returns the next filtered token: WHITESPACE never escapes this layer.
func (f *Filter) Next() token.Token {
	for len(f.pending) == 0 {
		f.step()
	}
	tok := f.pending[0]
	f.pending = f.pending[1:]
	return tok
}

func (f *Filter) emit(t token.Token) {
	f.pending = append(f.pending, t)
}

func isOpenBracket(t token.Type) bool {
	return t == token.L_PARENTHESIS || t == token.L_SQB || t == token.L_CB
}

func isCloseBracket(t token.Type) bool {
	return t == token.R_PARENTHESIS || t == token.R_SQB || t == token.R_CB
}

// step pulls exactly one raw token and feeds it through pass 1 then pass 2,
// appending zero or more filtered tokens to f.pending.
func (f *Filter) step() {
	if f.eofSeen {
		f.emit(token.Token{Type: token.ENDMARKER, Pos: f.lastPos})
		return
	}

	raw := f.lex.NextToken()
	f.lastPos = raw.Pos

	if raw.Type == token.EOF {
		f.finish(raw.Pos)
		return
	}

	if raw.Type != token.WHITESPACE {
		raw.MustIndent = f.mode == mandatory
		switch {
		case raw.Type == token.COLON:
			f.mode = possible
		case raw.Type == token.NEWLINE && f.mode == possible && f.exprDepth == 0:
			// a dictionary colon inside brackets must not arm this
			f.mode = mandatory
		case raw.Type == token.NEWLINE && f.mode == mandatory:
			// blank lines between the colon and the body keep the obligation
		default:
			f.mode = forbidden
		}
	}

	switch {
	case raw.Type == token.ILLEGAL:
		f.logger.Log("unrecognized sequence", errors.Lexing, raw.Pos.Line, raw.Pos.Offset)
	case isOpenBracket(raw.Type):
		f.exprDepth++
		f.atLineStart = false
		f.emit(raw)
	case isCloseBracket(raw.Type):
		f.exprDepth--
		f.atLineStart = false
		f.emit(raw)
	case raw.Type == token.NEWLINE:
		if f.exprDepth == 0 && !f.emptyLine {
			f.emit(token.Token{Type: token.NEWLINE, Pos: raw.Pos})
			f.scopeDepth = 0
			f.atLineStart = true
			f.emptyLine = true
		}
	case raw.Type == token.WHITESPACE:
		if f.atLineStart {
			f.scopeDepth = len([]rune(raw.Literal))
		}
	default:
		f.accountOther(raw)
	}
}

func (f *Filter) accountOther(t token.Token) {
	f.emptyLine = false

	top := f.scopeStack[len(f.scopeStack)-1]

	switch {
	case t.MustIndent:
		if f.scopeDepth <= top {
			f.logger.Log("expected an indent", errors.Syntax, t.Pos.Line, t.Pos.Offset)
		} else {
			f.scopeStack = append(f.scopeStack, f.scopeDepth)
			f.emit(token.Token{Type: token.INDENT, Pos: t.Pos})
		}
	case f.atLineStart && f.scopeDepth != top:
		if f.scopeDepth > top {
			f.logger.Log("unexpected indentation", errors.Syntax, t.Pos.Line, t.Pos.Offset)
		} else {
			matched := false
			for len(f.scopeStack) > 1 {
				f.scopeStack = f.scopeStack[:len(f.scopeStack)-1]
				f.emit(token.Token{Type: token.DEDENT, Pos: t.Pos})
				if f.scopeStack[len(f.scopeStack)-1] == f.scopeDepth {
					matched = true
					break
				}
			}
			if !matched {
				f.logger.Log("unmatched indentation", errors.Syntax, t.Pos.Line, t.Pos.Offset)
			}
		}
	}

	f.emit(t)
	f.atLineStart = false
}

func (f *Filter) finish(eofPos token.Position) {
	if len(f.scopeStack) > 1 {
		f.emit(token.Token{Type: token.NEWLINE, Pos: eofPos})
	}
	for len(f.scopeStack) > 1 {
		f.scopeStack = f.scopeStack[:len(f.scopeStack)-1]
		f.emit(token.Token{Type: token.DEDENT, Pos: eofPos})
	}
	f.emit(token.Token{Type: token.ENDMARKER, Pos: eofPos})
	f.eofSeen = true
}
