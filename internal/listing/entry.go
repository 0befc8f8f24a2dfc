package listing

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmrzaf/lx/internal/options"
)

// Entry is one listed file.
type Entry struct {
	Name  string
	Path  string
	Mode  fs.FileMode
	Size  int64
	MTime int64
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Mode.IsDir() }

func entryFromInfo(name, path string, fi fs.FileInfo) Entry {
	return Entry{
		Name:  name,
		Path:  path,
		Mode:  fi.Mode(),
		Size:  fi.Size(),
		MTime: fi.ModTime().UnixNano(),
	}
}

// Sort orders entries by field, then applies dirsFirst and reverse.
// Fields without a portable source (accessed, created, inode) sort by name.
func Sort(entries []Entry, field options.SortField, dirsFirst, reverse bool) {
	if field != options.SortNone {
		less := byName
		switch field {
		case options.SortSize:
			less = func(a, b Entry) bool {
				if a.Size != b.Size {
					return a.Size < b.Size
				}
				return byName(a, b)
			}
		case options.SortModified:
			less = func(a, b Entry) bool {
				if a.MTime != b.MTime {
					return a.MTime < b.MTime
				}
				return byName(a, b)
			}
		case options.SortExtension:
			less = func(a, b Entry) bool {
				ea, eb := strings.ToLower(filepath.Ext(a.Name)), strings.ToLower(filepath.Ext(b.Name))
				if ea != eb {
					return ea < eb
				}
				return byName(a, b)
			}
		}
		sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	}
	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	if dirsFirst {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].IsDir() && !entries[j].IsDir() })
	}
}

func byName(a, b Entry) bool { return a.Name < b.Name }
