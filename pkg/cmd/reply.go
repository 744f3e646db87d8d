package cmd

// Color classifies a reply. Values are the default palette and render directly
// as embed colors on transports that support them.
type Color int

const (
	ColorPrompt  Color = 0x61bdff
	ColorSuccess Color = 0x5dd96b
	ColorError   Color = 0xed5c5a
)

// Field is a labeled section of a reply.
type Field struct {
	Name  string
	Value string
}

// Reply is a transport-neutral outbound message: the adapter decides how to
// render it (embed, plain text, stdout).
type Reply struct {
	Title  string
	Body   string
	Color  Color
	Fields []Field
}

func monospace(s string) string {
	return "`" + s + "`"
}
