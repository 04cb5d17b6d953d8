package notion

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dnorberg/vidsum/internal/blocks"
)

// notionLanguages is the set of code block language tags the API accepts.
var notionLanguages = map[string]bool{
	"abap": true, "arduino": true, "bash": true, "basic": true, "c": true,
	"clojure": true, "coffeescript": true, "c++": true, "c#": true,
	"css": true, "dart": true, "diff": true, "docker": true, "elixir": true,
	"elm": true, "erlang": true, "flow": true, "fortran": true, "f#": true,
	"gherkin": true, "glsl": true, "go": true, "graphql": true,
	"groovy": true, "haskell": true, "html": true, "java": true,
	"javascript": true, "json": true, "julia": true, "kotlin": true,
	"latex": true, "less": true, "lisp": true, "livescript": true,
	"lua": true, "makefile": true, "markdown": true, "markup": true,
	"matlab": true, "mermaid": true, "nix": true, "objective-c": true,
	"ocaml": true, "pascal": true, "perl": true, "php": true,
	"plain text": true, "powershell": true, "prolog": true,
	"protobuf": true, "python": true, "r": true, "reason": true,
	"ruby": true, "rust": true, "sass": true, "scala": true,
	"scheme": true, "scss": true, "shell": true, "sql": true,
	"swift": true, "typescript": true, "vb.net": true, "verilog": true,
	"vhdl": true, "visual basic": true, "webassembly": true, "xml": true,
	"yaml": true,
}

// NormalizeLanguage maps a fenced-code language tag onto one the API
// accepts. The chroma lexer registry resolves aliases ("golang" -> Go,
// "sh" -> Bash); anything still unrecognized degrades to plain text rather
// than failing the publish.
func NormalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || tag == blocks.PlainTextLanguage {
		return blocks.PlainTextLanguage
	}
	if notionLanguages[tag] {
		return tag
	}

	if lexer := lexers.Get(tag); lexer != nil {
		name := strings.ToLower(lexer.Config().Name)
		if notionLanguages[name] {
			return name
		}
	}
	return blocks.PlainTextLanguage
}
