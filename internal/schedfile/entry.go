package schedfile

// Entry is a named schedule read from a manifest file
type Entry struct {
	LineNumber int    // Line number in the manifest (1-indexed)
	Name       string // Schedule name (left of the colon)
	Text       string // Natural-language schedule text
	Valid      bool   // Whether the text parses
	Error      string // Parse error if Valid is false
}

// LineType represents the type of line in a manifest
type LineType int

const (
	LineTypeEntry   LineType = iota // "name: schedule text"
	LineTypeComment                 // Comment line starting with #
	LineTypeEmpty                   // Empty or whitespace-only line
	LineTypeInvalid                 // Unparseable line
)

// Line represents any line in a manifest file
type Line struct {
	Type       LineType
	LineNumber int
	Raw        string // Original line content
	Entry      *Entry // Non-nil only if Type == LineTypeEntry
}
