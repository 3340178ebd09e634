package storage

import "encoding/binary"

// InsertRow places row at its key-ordered position in the tree,
// splitting the root leaf and promoting a new internal root if the leaf
// is already full. Duplicate keys are rejected before any mutation.
func InsertRow(t *Table, row Row) error {
	cursor, err := TableFind(t, row.ID)
	if err != nil {
		return err
	}

	page, err := t.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return err
	}
	node := NewNode(page)
	if cursor.CellNum < node.LeafNumCells() && node.LeafKey(cursor.CellNum) == row.ID {
		return &DuplicateKeyError{Key: row.ID}
	}

	return leafInsert(cursor, row.ID, row)
}

// leafInsert writes key/row into the leaf the cursor addresses, shifting
// later cells right to keep the array sorted, or splits the leaf first
// if it is already at capacity.
func leafInsert(cursor *Cursor, key uint32, row Row) error {
	t := cursor.table
	page, err := t.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return err
	}
	node := NewNode(page)
	numCells := node.LeafNumCells()

	if numCells >= LeafNodeMaxCells {
		return leafSplitAndInsert(cursor, key, row)
	}

	for i := numCells; i > cursor.CellNum; i-- {
		copy(node.LeafCell(i), node.LeafCell(i-1))
	}

	node.SetLeafNumCells(numCells + 1)
	node.SetLeafKey(cursor.CellNum, key)
	return SerializeRow(row, node.LeafValue(cursor.CellNum))
}

// leafSplitAndInsert redistributes the leaf's LeafNodeMaxCells existing
// cells plus the new one across the old leaf and a freshly allocated
// sibling, left-biased: the old leaf keeps LeafNodeLeftSplitCount cells,
// the new one gets LeafNodeRightSplitCount. If the split leaf was the
// root, a new internal root is promoted above both; splitting any other
// leaf would require updating its parent, which this revision does not
// implement.
func leafSplitAndInsert(cursor *Cursor, key uint32, row Row) error {
	t := cursor.table

	oldPage, err := t.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return err
	}
	oldNode := NewNode(oldPage)
	wasRoot := oldNode.IsRoot()
	oldParent := oldNode.ParentPointer()

	// Snapshot the old leaf's cells before any page is mutated.
	oldCells := make([][]byte, LeafNodeMaxCells)
	for i := uint32(0); i < LeafNodeMaxCells; i++ {
		cell := make([]byte, LeafNodeCellSize)
		copy(cell, oldNode.LeafCell(i))
		oldCells[i] = cell
	}

	newCell := make([]byte, LeafNodeCellSize)
	binary.LittleEndian.PutUint32(newCell[LeafNodeKeyOffset:LeafNodeKeyOffset+LeafNodeKeySize], key)
	if err := SerializeRow(row, newCell[LeafNodeKeySize:LeafNodeKeySize+LeafNodeValueSize]); err != nil {
		return err
	}

	newPageNum := t.Pager.GetUnusedPageNum()
	newPage, err := t.Pager.GetPage(newPageNum)
	if err != nil {
		return err
	}
	newNode := NewNode(newPage)
	newNode.InitializeLeaf()
	newNode.SetParentPointer(oldParent)

	for i := uint32(0); i < LeafNodeMaxCells+1; i++ {
		var dest Node
		var destIndex uint32
		if i >= LeafNodeLeftSplitCount {
			dest = newNode
			destIndex = i - LeafNodeLeftSplitCount
		} else {
			dest = oldNode
			destIndex = i
		}

		var source []byte
		switch {
		case i == cursor.CellNum:
			source = newCell
		case i > cursor.CellNum:
			source = oldCells[i-1]
		default:
			source = oldCells[i]
		}
		copy(dest.LeafCell(destIndex), source)
	}

	oldNode.SetLeafNumCells(LeafNodeLeftSplitCount)
	newNode.SetLeafNumCells(LeafNodeRightSplitCount)

	if wasRoot {
		return createNewRoot(t, newPageNum)
	}
	return fatalf("Need to implement updating parent after split")
}

// createNewRoot copies the current (full) root into a freshly allocated
// page, demotes it, and re-initializes the root page as an internal
// node with one key separating the old root (now a plain leaf) from
// rightChildPage.
func createNewRoot(t *Table, rightChildPage uint32) error {
	rootPage, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return err
	}
	rootNode := NewNode(rootPage)

	leftChildPage := t.Pager.GetUnusedPageNum()
	leftPage, err := t.Pager.GetPage(leftChildPage)
	if err != nil {
		return err
	}
	copy(leftPage.Data[:], rootPage.Data[:])
	leftNode := NewNode(leftPage)
	leftNode.SetIsRoot(false)
	leftNode.SetParentPointer(t.RootPageNum)

	rightPage, err := t.Pager.GetPage(rightChildPage)
	if err != nil {
		return err
	}
	NewNode(rightPage).SetParentPointer(t.RootPageNum)

	leftMaxKey := leftNode.MaxKey()

	rootNode.InitializeInternal()
	rootNode.SetIsRoot(true)
	rootNode.SetInternalNumKeys(1)
	rootNode.SetInternalChild(0, leftChildPage)
	rootNode.SetInternalKey(0, leftMaxKey)
	rootNode.SetInternalRightChild(rightChildPage)

	return nil
}
