package listing

import (
	"context"
	"fmt"

	"github.com/mmrzaf/lx/internal/filter"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (l *Lister) listTree(ctx context.Context, f *filter.Filter, dir string, first *bool) (int, error) {
	root := &treeNode{label: dir}
	failed, err := l.walkTree(ctx, f, root, dir, "", 1)
	if err != nil {
		return failed, err
	}
	if !*first {
		_, _ = fmt.Fprintln(l.Stdout)
	}
	*first = false
	var out []string
	root.render(&out, "", true, 0)
	for _, line := range out {
		_, _ = fmt.Fprintln(l.Stdout, line)
	}
	return failed, nil
}

func (l *Lister) walkTree(ctx context.Context, f *filter.Filter, node *treeNode, dir, rel string, depth int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	entries, err := l.readDir(f, dir, rel)
	if err != nil {
		l.warn(dir, err)
		return 1, nil
	}
	failed := 0
	for _, e := range entries {
		child := &treeNode{label: l.cell(e).text}
		node.children = append(node.children, child)
		if !e.IsDir() || (l.Opts.Level > 0 && depth >= l.Opts.Level) {
			continue
		}
		n, err := l.walkTree(ctx, f, child, e.Path, joinRel(rel, e.Name), depth+1)
		if err != nil {
			return failed, err
		}
		failed += n
	}
	return failed, nil
}

func (n *treeNode) render(out *[]string, prefix string, isLast bool, depth int) {
	if depth == 0 {
		*out = append(*out, n.label)
	} else {
		branch := "├── "
		nextPrefix := prefix + "│   "
		if isLast {
			branch = "└── "
			nextPrefix = prefix + "    "
		}
		*out = append(*out, prefix+branch+n.label)
		prefix = nextPrefix
	}
	for i, child := range n.children {
		child.render(out, prefix, i == len(n.children)-1, depth+1)
	}
}
