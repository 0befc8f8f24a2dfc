package options

// Section groups options in the help text.
type Section string

const (
	SectionMeta    Section = "META OPTIONS"
	SectionDisplay Section = "DISPLAY OPTIONS"
	SectionFilter  Section = "FILTERING AND SORTING OPTIONS"
	SectionLong    Section = "LONG VIEW OPTIONS"
)

// Decl declares one command-line option.
type Decl struct {
	Name    string
	Short   string
	Value   string // placeholder shown in help; empty for boolean switches
	Section Section
	Usage   string
}

// TakesValue reports whether the option consumes an argument.
func (d Decl) TakesValue() bool { return d.Value != "" }

// Long option names. The constraint table and the validator refer to options
// only through these.
const (
	OptHelp    = "help"
	OptVersion = "version"

	OptOneline    = "oneline"
	OptLong       = "long"
	OptGrid       = "grid"
	OptAcross     = "across"
	OptRecurse    = "recurse"
	OptTree       = "tree"
	OptClassify   = "classify"
	OptColor      = "color"
	OptColorScale = "color-scale"
	OptWidth      = "width"

	OptAll        = "all"
	OptListDirs   = "list-dirs"
	OptLevel      = "level"
	OptReverse    = "reverse"
	OptSort       = "sort"
	OptDirsFirst  = "group-directories-first"
	OptIgnoreGlob = "ignore-glob"
	OptGitIgnore  = "git-ignore"

	OptBinary    = "binary"
	OptBytes     = "bytes"
	OptGroup     = "group"
	OptHeader    = "header"
	OptLinks     = "links"
	OptInode     = "inode"
	OptModified  = "modified"
	OptBlocks    = "blocks"
	OptTime      = "time"
	OptAccessed  = "accessed"
	OptCreated   = "created"
	OptTimeStyle = "time-style"
	OptGit       = "git"
)

// Decls lists every option in help order.
var Decls = []Decl{
	{Name: OptHelp, Short: "?", Section: SectionMeta, Usage: "show list of command-line options"},
	{Name: OptVersion, Short: "v", Section: SectionMeta, Usage: "show version of lx"},

	{Name: OptOneline, Short: "1", Section: SectionDisplay, Usage: "display one entry per line"},
	{Name: OptLong, Short: "l", Section: SectionDisplay, Usage: "display extended file metadata as a table"},
	{Name: OptGrid, Short: "G", Section: SectionDisplay, Usage: "display entries as a grid (default)"},
	{Name: OptAcross, Short: "x", Section: SectionDisplay, Usage: "sort the grid across, rather than downwards"},
	{Name: OptRecurse, Short: "R", Section: SectionDisplay, Usage: "recurse into directories"},
	{Name: OptTree, Short: "T", Section: SectionDisplay, Usage: "recurse into directories as a tree"},
	{Name: OptClassify, Short: "F", Section: SectionDisplay, Usage: "display type indicator by file names"},
	{Name: OptColor, Value: "WHEN", Section: SectionDisplay, Usage: "when to use terminal colours (always, auto, never)"},
	{Name: OptColorScale, Section: SectionDisplay, Usage: "highlight levels of file sizes distinctly"},
	{Name: OptWidth, Short: "w", Value: "COLS", Section: SectionDisplay, Usage: "set screen width in columns"},

	{Name: OptAll, Short: "a", Section: SectionFilter, Usage: "show hidden and 'dot' files"},
	{Name: OptListDirs, Short: "d", Section: SectionFilter, Usage: "list directories like regular files"},
	{Name: OptLevel, Short: "L", Value: "DEPTH", Section: SectionFilter, Usage: "limit the depth of recursion"},
	{Name: OptReverse, Short: "r", Section: SectionFilter, Usage: "reverse the sort order"},
	{Name: OptSort, Short: "s", Value: "FIELD", Section: SectionFilter, Usage: "which field to sort by"},
	{Name: OptDirsFirst, Section: SectionFilter, Usage: "list directories before other files"},
	{Name: OptIgnoreGlob, Short: "I", Value: "GLOBS", Section: SectionFilter, Usage: "glob patterns (pipe-separated) of files to ignore"},
	{Name: OptGitIgnore, Section: SectionFilter, Usage: "ignore files mentioned in .gitignore"},

	{Name: OptBinary, Short: "b", Section: SectionLong, Usage: "list file sizes with binary prefixes"},
	{Name: OptBytes, Short: "B", Section: SectionLong, Usage: "list file sizes in bytes, without prefixes"},
	{Name: OptGroup, Short: "g", Section: SectionLong, Usage: "list each file's group"},
	{Name: OptHeader, Short: "h", Section: SectionLong, Usage: "add a header row to each column"},
	{Name: OptLinks, Short: "H", Section: SectionLong, Usage: "list each file's number of hard links"},
	{Name: OptInode, Short: "i", Section: SectionLong, Usage: "list each file's inode number"},
	{Name: OptModified, Short: "m", Section: SectionLong, Usage: "use the modified timestamp field"},
	{Name: OptBlocks, Short: "S", Section: SectionLong, Usage: "show number of file system blocks"},
	{Name: OptTime, Short: "t", Value: "FIELD", Section: SectionLong, Usage: "which timestamp field to list (modified, accessed, created)"},
	{Name: OptAccessed, Short: "u", Section: SectionLong, Usage: "use the accessed timestamp field"},
	{Name: OptCreated, Short: "U", Section: SectionLong, Usage: "use the created timestamp field"},
	{Name: OptTimeStyle, Value: "STYLE", Section: SectionLong, Usage: "how to format timestamps (default, iso, long-iso, full-iso)"},
	{Name: OptGit, Section: SectionLong, Usage: "list each file's Git status, if tracked"},
}

// Lookup returns the declaration for a long option name.
func Lookup(name string) (Decl, bool) {
	for _, d := range Decls {
		if d.Name == name {
			return d, true
		}
	}
	return Decl{}, false
}
