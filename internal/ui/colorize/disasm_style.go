package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// IsaextDark highlights Intel-syntax instructions and JSON reports.
var IsaextDark = styles.Register(chroma.MustNewStyle("isaext-dark", chroma.StyleEntries{
	chroma.Text:       "#FFFFFF",
	chroma.Background: "bg:#1e1e1e",
	chroma.Comment:    "#6A9955",

	chroma.Keyword:      "#FFFFFF", // mnemonics
	chroma.NameFunction: "#FFFFFF",
	chroma.Name:         "#7C9C9D", // registers
	chroma.NameBuiltin:  "#7C9C9D",
	chroma.NameVariable: "#7C9C9D",
	chroma.NameTag:      "#569CD6", // JSON keys

	chroma.LiteralNumber:    "#FF5F87",
	chroma.LiteralNumberHex: "#FF5F87",
	chroma.String:           "#EACD53",
	chroma.KeywordConstant:  "#C586C0", // true, false, null

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",
}))
