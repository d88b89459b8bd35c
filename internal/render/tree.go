package render

import (
	"sort"
	"strings"

	"github.com/repomix-go/repomix-go/internal/model"
)

// BuildTree constructs a directory tree from a flat set of forward-slashed
// relative paths, plus any explicitly known empty directories
// (spec.md §4.9).
func BuildTree(paths []string, emptyDirs []string) *model.TreeNode {
	root := &model.TreeNode{Name: "", IsDirectory: true}

	for _, p := range paths {
		insert(root, strings.Split(p, "/"), false)
	}
	for _, d := range emptyDirs {
		if d == "" {
			continue
		}
		insert(root, strings.Split(d, "/"), true)
	}

	sortTree(root)
	return root
}

func insert(node *model.TreeNode, parts []string, isEmptyDir bool) {
	if len(parts) == 0 {
		return
	}
	name := parts[0]
	isDir := len(parts) > 1 || isEmptyDir && len(parts) == 1

	var child *model.TreeNode
	for _, c := range node.Children {
		if c.Name == name {
			child = c
			break
		}
	}
	if child == nil {
		child = &model.TreeNode{Name: name, IsDirectory: isDir}
		node.Children = append(node.Children, child)
	}
	if isDir {
		child.IsDirectory = true
	}

	if len(parts) > 1 {
		insert(child, parts[1:], isEmptyDir)
	}
}

// sortTree orders each level: directories before files, alphabetical
// within each group (spec.md §4.9).
func sortTree(node *model.TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		return a.Name < b.Name
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

// AnnotateTokenCounts sets per-file TokenCount from counts (keyed by full
// relative path) and sums each directory's subtree into its own TokenCount
// (spec.md §4.9 tokenCountTree option).
func AnnotateTokenCounts(node *model.TreeNode, prefix string, counts map[string]int) int {
	path := prefix + node.Name
	if !node.IsDirectory {
		node.TokenCount = counts[path]
		return node.TokenCount
	}

	childPrefix := path
	if path != "" {
		childPrefix += "/"
	}
	var total int
	for _, c := range node.Children {
		total += AnnotateTokenCounts(c, childPrefix, counts)
	}
	node.TokenCount = total
	return total
}

// RenderLines renders node's children as an indented pre-order listing,
// directories suffixed with "/".
func RenderLines(node *model.TreeNode, depth int) []string {
	var lines []string
	for _, c := range node.Children {
		indent := strings.Repeat("  ", depth)
		name := c.Name
		if c.IsDirectory {
			name += "/"
		}
		lines = append(lines, indent+name)
		if c.IsDirectory {
			lines = append(lines, RenderLines(c, depth+1)...)
		}
	}
	return lines
}
