package storage

// Cursor is a logical position (page_num, cell_num) within the tree,
// plus an end_of_table flag meaning "one past the last cell". Cursors
// are cheap and ephemeral: allocate one per operation, discard it after.
type Cursor struct {
	table      *Table
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// TableStart positions a cursor at the first cell of the root leaf.
func TableStart(t *Table) (*Cursor, error) {
	page, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	root := NewNode(page)
	if root.NodeType() != NodeLeaf {
		return nil, fatalf("table start: root page %d is not a leaf", t.RootPageNum)
	}
	return &Cursor{
		table:      t,
		PageNum:    t.RootPageNum,
		CellNum:    0,
		EndOfTable: root.LeafNumCells() == 0,
	}, nil
}

// TableFind locates the cursor position for key: the cell holding key
// if present, or the first cell with a greater key otherwise. Searching
// through an internal root is a documented gap in this revision (see
// spec notes) — it fails fatally rather than silently returning the
// wrong answer.
func TableFind(t *Table, key uint32) (*Cursor, error) {
	page, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	root := NewNode(page)
	if root.NodeType() == NodeLeaf {
		return leafFind(t, t.RootPageNum, key)
	}
	return nil, fatalf("Need to implement searching an internal node")
}

// leafFind binary-searches the ordered cells of the leaf at pageNum for
// key, leaving CellNum at key's cell if present, or at the insertion
// point that preserves order otherwise.
func leafFind(t *Table, pageNum uint32, key uint32) (*Cursor, error) {
	page, err := t.Pager.GetPage(pageNum)
	if err != nil {
		return nil, err
	}
	node := NewNode(page)
	numCells := node.LeafNumCells()

	minIndex := uint32(0)
	onePastMaxIndex := numCells
	for minIndex != onePastMaxIndex {
		mid := minIndex + (onePastMaxIndex-minIndex)/2
		keyAtMid := node.LeafKey(mid)
		if key == keyAtMid {
			return &Cursor{table: t, PageNum: pageNum, CellNum: mid}, nil
		}
		if key < keyAtMid {
			onePastMaxIndex = mid
		} else {
			minIndex = mid + 1
		}
	}

	return &Cursor{table: t, PageNum: pageNum, CellNum: minIndex}, nil
}

// Value returns the RowSize-byte slice of the cell the cursor addresses.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.table.Pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return NewNode(page).LeafValue(c.CellNum), nil
}

// Advance moves the cursor to the next cell in the current leaf. This
// engine has no next-leaf pointer — once the tree has more than one
// leaf, a scan must stop at the end of whichever leaf it started in
// (see spec notes on leaf chaining).
func (c *Cursor) Advance() error {
	page, err := c.table.Pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}
	node := NewNode(page)
	c.CellNum++
	if c.CellNum >= node.LeafNumCells() {
		c.EndOfTable = true
	}
	return nil
}
