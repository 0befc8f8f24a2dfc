package options

// Mode is the overall view.
type Mode int

const (
	ModeGrid Mode = iota
	ModeLines
	ModeLong
)

func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModeLong:
		return "long"
	default:
		return "grid"
	}
}

// ColorWhen controls terminal colours.
type ColorWhen string

const (
	ColorAuto   ColorWhen = "auto"
	ColorAlways ColorWhen = "always"
	ColorNever  ColorWhen = "never"
)

// SortField is the field entries are ordered by.
type SortField string

const (
	SortName      SortField = "name"
	SortSize      SortField = "size"
	SortExtension SortField = "extension"
	SortModified  SortField = "modified"
	SortAccessed  SortField = "accessed"
	SortCreated   SortField = "created"
	SortInode     SortField = "inode"
	SortNone      SortField = "none"
)

// TimeField selects the timestamp shown in the long view.
type TimeField string

const (
	TimeModified TimeField = "modified"
	TimeAccessed TimeField = "accessed"
	TimeCreated  TimeField = "created"
)

// Columns are the long view switches.
type Columns struct {
	Binary    bool
	Bytes     bool
	Group     bool
	Header    bool
	Links     bool
	Inode     bool
	Blocks    bool
	Git       bool
	Times     []TimeField
	TimeStyle string
	Scale     bool
}

// Options is a command line that passed validation.
type Options struct {
	Paths []string
	Mode  Mode

	Across   bool
	Recurse  bool
	Tree     bool
	Classify bool
	Color    ColorWhen
	Width    int // 0: detect

	All         bool
	ListDirs    bool
	Level       int // 0: unlimited
	Reverse     bool
	Sort        SortField
	DirsFirst   bool
	IgnoreGlobs []string
	GitIgnore   bool

	Columns Columns
}
