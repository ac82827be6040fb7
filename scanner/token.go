package scanner

// Type represents the kind of token scanned from the input.
type Type uint8

const (
	// Special tokens
	EOF Type = iota

	// Single-character punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	MINUS     // -
	PLUS      // +
	SEMICOLON // ;
	ASTERISK  // *
	SLASH     // /

	// One- or two-character operators
	BANG          // !
	BANG_EQUAL    // !=
	EQUAL         // =
	EQUAL_EQUAL   // ==
	LESS          // <
	LESS_EQUAL    // <=
	GREATER       // >
	GREATER_EQUAL // >=

	// Literals
	STRING // "quoted string"
	NUMBER // 123 or 123.45
	IDENT  // foo, bar_baz

	// Keywords
	AND    // and
	CLASS  // class
	ELSE   // else
	FALSE  // false
	FOR    // for
	FUN    // fun
	IF     // if
	NIL    // nil
	OR     // or
	PRINT  // print
	RETURN // return
	SUPER  // super
	THIS   // this
	TRUE   // true
	VAR    // var
	WHILE  // while
)

var typeNames = map[Type]string{
	EOF: "EOF",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	MINUS:     "-",
	PLUS:      "+",
	SEMICOLON: ";",
	ASTERISK:  "*",
	SLASH:     "/",

	BANG:          "!",
	BANG_EQUAL:    "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",

	STRING: "STRING",
	NUMBER: "NUMBER",
	IDENT:  "IDENT",

	AND:    "and",
	CLASS:  "class",
	ELSE:   "else",
	FALSE:  "false",
	FOR:    "for",
	FUN:    "fun",
	IF:     "if",
	NIL:    "nil",
	OR:     "or",
	PRINT:  "print",
	RETURN: "return",
	SUPER:  "super",
	THIS:   "this",
	TRUE:   "true",
	VAR:    "var",
	WHILE:  "while",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps reserved-word text to its token type. Built once at
// package init; never mutated afterwards.
var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Token represents a lexical token with zero-copy semantics.
// Instead of storing the lexeme text as a string (which would allocate),
// it stores byte offsets into the original source buffer.
//
// Literal holds the decoded value for literal tokens: the text between the
// quotes for STRING, a float64 for NUMBER. It is nil for everything else.
type Token struct {
	Type    Type
	Start   int // Byte offset into source buffer
	End     int // End offset (exclusive)
	Line    int // Line the lexeme began on (1-indexed)
	Literal any
}

// Lexeme materializes the token text from the source buffer.
// The allocation only happens when the text is actually needed,
// not during scanning.
func (t Token) Lexeme(source []byte) string {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return string(source[t.Start:t.End])
}

// Bytes returns a zero-copy view of the token text.
// No allocation occurs - this is a slice into the source buffer.
func (t Token) Bytes(source []byte) []byte {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return nil
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
