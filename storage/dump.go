package storage

import (
	"fmt"
	"strings"
)

// DumpTree renders the tree as indented text, two spaces per level:
// an internal node as its size, then each (subtree, key) pair, then
// its rightmost subtree; a leaf as its size followed by its keys.
func DumpTree(t *Table) (string, error) {
	var b strings.Builder
	if err := dumpNode(t, &b, t.RootPageNum, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func dumpNode(t *Table, b *strings.Builder, pageNum uint32, depth int) error {
	page, err := t.Pager.GetPage(pageNum)
	if err != nil {
		return err
	}
	node := NewNode(page)
	indent := strings.Repeat("  ", depth)

	if node.NodeType() == NodeLeaf {
		numCells := node.LeafNumCells()
		fmt.Fprintf(b, "%s- leaf (size %d)\n", indent, numCells)
		for i := uint32(0); i < numCells; i++ {
			fmt.Fprintf(b, "%s  - %d\n", indent, node.LeafKey(i))
		}
		return nil
	}

	numKeys := node.InternalNumKeys()
	fmt.Fprintf(b, "%s- internal (size %d)\n", indent, numKeys)
	for i := uint32(0); i < numKeys; i++ {
		if err := dumpNode(t, b, node.InternalChild(i), depth+1); err != nil {
			return err
		}
		fmt.Fprintf(b, "%s  - key %d\n", indent, node.InternalKey(i))
	}
	return dumpNode(t, b, node.InternalRightChild(), depth+1)
}
