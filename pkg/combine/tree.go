// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"sort"
	"strings"
)

// treeNode is one directory or file in the rendered tree.
type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

// GenerateTree renders the included files as a directory tree, headed by
// "Table of Contents". Only directories holding at least one entry appear.
func GenerateTree(entries []FileEntry) string {
	root := &treeNode{isDir: true, children: map[string]*treeNode{}}
	for _, entry := range entries {
		insertPath(root, strings.Split(entry.RelPath, "/"))
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString("Table of Contents\n\n")
	for _, line := range renderChildren(root, "") {
		treeBuilder.WriteString(line)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String()
}

func insertPath(node *treeNode, parts []string) {
	for i, part := range parts {
		child, ok := node.children[part]
		if !ok {
			child = &treeNode{name: part, isDir: i < len(parts)-1}
			if child.isDir {
				child.children = map[string]*treeNode{}
			}
			node.children[part] = child
		}
		node = child
	}
}

// renderChildren lists directories first, then files, alphabetically.
func renderChildren(node *treeNode, prefix string) []string {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		return strings.ToLower(children[i].name) < strings.ToLower(children[j].name)
	})

	var output []string
	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		if child.isDir {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, child.name))
			output = append(output, renderChildren(child, prefix+extension)...)
		} else {
			output = append(output, fmt.Sprintf("%s%s%s", prefix, connector, child.name))
		}
	}
	return output
}
