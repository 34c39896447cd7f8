package validated

import (
	"sort"
	"strconv"
)

// FlattenedError is one entry of a flattened failure payload. Path
// descends with "." for nested structs and "[i]" for sequence elements,
// concatenated from the root; Depth counts the nesting levels crossed,
// starting at 0 for top-level fields.
type FlattenedError struct {
	Depth uint
	Path  string
	Err   *ValidationError
}

// Flatten walks tree depth-first and returns its errors as an ordered
// flat sequence. Field names within a level are visited in lexicographic
// order (Go maps carry no insertion order, so sorting is what makes the
// output reproducible) and sequence indices in ascending order. The
// function is pure: two calls on the same tree yield identical output.
func Flatten(tree ErrorTree) []FlattenedError {
	return flattenTree(tree, "", 0, nil)
}

// flattenTree appends tree's errors to out; depth is the depth at which
// tree's own leaf errors sit.
func flattenTree(tree ErrorTree, path string, depth uint, out []FlattenedError) []FlattenedError {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		node := tree[name]
		p := joinPath(path, name)

		for i := range node.Errors {
			out = append(out, FlattenedError{Depth: depth, Path: p, Err: &node.Errors[i]})
		}
		if node.Fields != nil {
			out = flattenTree(node.Fields, p, depth+1, out)
		}
		if node.Items != nil {
			idxs := make([]int, 0, len(node.Items))
			for i := range node.Items {
				idxs = append(idxs, i)
			}
			sort.Ints(idxs)
			for _, i := range idxs {
				out = flattenTree(node.Items[i], p+"["+strconv.Itoa(i)+"]", depth+1, out)
			}
		}
	}
	return out
}

// joinPath descends into name from path. An empty name leaves the path
// unchanged, which is how element-level violations keep the "field[i]"
// form.
func joinPath(path, name string) string {
	switch {
	case path == "":
		return name
	case name == "":
		return path
	default:
		return path + "." + name
	}
}
