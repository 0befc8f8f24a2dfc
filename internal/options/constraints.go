package options

// ConflictRule forbids giving A and B together.
type ConflictRule struct {
	A, B string
}

// UselessRule marks Option as pointless when Other is absent (Given false)
// or present (Given true).
type UselessRule struct {
	Option string
	Given  bool
	Other  string
}

// Useless2Rule marks Option as pointless unless A or B is given.
type Useless2Rule struct {
	Option string
	A, B   string
}

// Table holds the semantic constraints between options. Order within each
// list is the order rules are checked in, so it decides which diagnostic a
// user sees when several rules are broken at once.
type Table struct {
	Numeric   []string
	Conflicts []ConflictRule
	Useless   []UselessRule
	Useless2  []Useless2Rule
}

// Constraints is the table lx validates against.
var Constraints = &Table{
	Numeric: []string{OptLevel, OptWidth},
	Conflicts: []ConflictRule{
		{OptRecurse, OptListDirs},
		{OptTree, OptListDirs},
		{OptBinary, OptBytes},
		{OptOneline, OptGrid},
		{OptGrid, OptTree},
	},
	Useless: []UselessRule{
		{OptAcross, true, OptLong},
		{OptOneline, true, OptLong},
		{OptAcross, true, OptOneline},
		{OptAcross, true, OptTree},
		{OptBinary, false, OptLong},
		{OptBytes, false, OptLong},
		{OptGroup, false, OptLong},
		{OptHeader, false, OptLong},
		{OptLinks, false, OptLong},
		{OptInode, false, OptLong},
		{OptBlocks, false, OptLong},
		{OptTime, false, OptLong},
		{OptModified, false, OptLong},
		{OptAccessed, false, OptLong},
		{OptCreated, false, OptLong},
		{OptTimeStyle, false, OptLong},
		{OptGit, false, OptLong},
		{OptColorScale, false, OptLong},
	},
	Useless2: []Useless2Rule{
		{OptLevel, OptRecurse, OptTree},
	},
}

// Names returns every option name the table mentions, in first-seen order.
func (t *Table) Names() []string {
	seen := map[string]bool{}
	var out []string
	add := func(names ...string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	add(t.Numeric...)
	for _, r := range t.Conflicts {
		add(r.A, r.B)
	}
	for _, r := range t.Useless {
		add(r.Option, r.Other)
	}
	for _, r := range t.Useless2 {
		add(r.Option, r.A, r.B)
	}
	return out
}
