package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	commandLexer chroma.Lexer
	formatter    chroma.Formatter
	style        *chroma.Style
)

func init() {
	// emberdb commands read like shell invocations (VERB arg arg...), so the
	// bash lexer's command/argument/string token classes are the closest
	// fit chroma ships; there is no dedicated lexer for this wire protocol.
	commandLexer = lexers.Get("bash")
	formatter = formatters.Get("terminal256")
	style = styles.Get("monokai")
}

// Command returns a REPL command line with ANSI terminal syntax
// highlighting applied. On error or empty input, the original string is
// returned unchanged.
func Command(s string) string {
	if s == "" {
		return s
	}

	iterator, err := commandLexer.Tokenise(nil, s)
	if err != nil {
		return s
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return s
	}

	return strings.TrimRight(buf.String(), "\n")
}
