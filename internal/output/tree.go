package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Column where artifact descriptions start.
	descriptionColumn = 34
)

type treeNode struct {
	name        string
	description string
	dir         bool
	children    []*treeNode
}

// RenderFileTree renders the created scaffold as an aligned tree. files maps
// paths relative to the scaffold root to one-line descriptions.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, dir: true}
	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			var child *treeNode
			for _, c := range current.children {
				if c.name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &treeNode{name: part, dir: !last}
				current.children = append(current.children, child)
			}
			if last {
				child.description = desc
			}
			current = child
		}
	}

	sortTree(root)

	var b strings.Builder
	b.WriteString(root.name + "/\n")
	renderChildren(&b, root, "")
	return b.String()
}

func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		a, b := node.children[i], node.children[j]
		if a.dir != b.dir {
			return a.dir
		}
		return a.name < b.name
	})
	for _, c := range node.children {
		sortTree(c)
	}
}

func renderChildren(b *strings.Builder, node *treeNode, prefix string) {
	for i, child := range node.children {
		last := i == len(node.children)-1
		connector := treeEdge
		nextPrefix := prefix + treeVert
		if last {
			connector = treeLast
			nextPrefix = prefix + treeSpace
		}

		name := child.name
		if child.dir {
			name += "/"
		}

		line := prefix + connector + name
		if child.description != "" {
			pad := descriptionColumn - len([]rune(line))
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + child.description
		}
		b.WriteString(line + "\n")

		renderChildren(b, child, nextPrefix)
	}
}
