package storage

import (
	"errors"
	"testing"
)

func TestInsertAndScanOrdered(t *testing.T) {
	table := newTestTable(t)
	ids := []uint32{3, 1, 2}
	for _, id := range ids {
		mustInsert(t, table, id)
	}

	rows, err := table.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	want := []uint32{1, 2, 3}
	if len(rows) != len(want) {
		t.Fatalf("ScanAll returned %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		if row.ID != want[i] {
			t.Errorf("rows[%d].ID = %d, want %d", i, row.ID, want[i])
		}
	}
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	table := newTestTable(t)
	mustInsert(t, table, 1)

	err := InsertRow(table, Row{ID: 1, Username: "other", Email: "other@x.com"})
	if err == nil {
		t.Fatal("InsertRow: expected duplicate key error, got nil")
	}
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("InsertRow: error = %v, want *DuplicateKeyError", err)
	}

	rows, err := table.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ScanAll returned %d rows after rejected duplicate, want 1", len(rows))
	}
}

func TestLeafSplitPromotesInternalRoot(t *testing.T) {
	table := newTestTable(t)
	for id := uint32(1); id <= LeafNodeMaxCells+1; id++ {
		mustInsert(t, table, id)
	}

	rootPage, err := table.Pager.GetPage(table.RootPageNum)
	if err != nil {
		t.Fatalf("GetPage(root): %v", err)
	}
	root := NewNode(rootPage)
	if root.NodeType() != NodeInternal {
		t.Fatalf("root NodeType = %d, want NodeInternal after %d inserts", root.NodeType(), LeafNodeMaxCells+1)
	}
	if root.InternalNumKeys() != 1 {
		t.Fatalf("root InternalNumKeys = %d, want 1", root.InternalNumKeys())
	}

	leftPage, err := table.Pager.GetPage(root.InternalChild(0))
	if err != nil {
		t.Fatalf("GetPage(left child): %v", err)
	}
	rightPage, err := table.Pager.GetPage(root.InternalRightChild())
	if err != nil {
		t.Fatalf("GetPage(right child): %v", err)
	}
	left := NewNode(leftPage)
	right := NewNode(rightPage)

	if left.LeafNumCells() != LeafNodeLeftSplitCount {
		t.Errorf("left leaf size = %d, want %d", left.LeafNumCells(), LeafNodeLeftSplitCount)
	}
	if right.LeafNumCells() != LeafNodeRightSplitCount {
		t.Errorf("right leaf size = %d, want %d", right.LeafNumCells(), LeafNodeRightSplitCount)
	}
	if root.InternalKey(0) != left.MaxKey() {
		t.Errorf("split key = %d, want left's max key %d", root.InternalKey(0), left.MaxKey())
	}
	// Ids 1..14 inserted in order: the split key is the 7th inserted id.
	if root.InternalKey(0) != LeafNodeLeftSplitCount {
		t.Errorf("split key = %d, want %d (the 7th inserted id)", root.InternalKey(0), LeafNodeLeftSplitCount)
	}
}

func TestInsertPastPromotedRootFailsFatally(t *testing.T) {
	table := newTestTable(t)
	for id := uint32(1); id <= LeafNodeMaxCells+1; id++ {
		mustInsert(t, table, id)
	}

	err := InsertRow(table, Row{ID: LeafNodeMaxCells + 2, Username: "u", Email: "e"})
	if err == nil {
		t.Fatal("InsertRow past the promoted root: expected a fatal error, got nil")
	}
	if _, ok := err.(*FatalError); !ok {
		t.Fatalf("InsertRow past the promoted root: error = %T(%v), want *FatalError", err, err)
	}
}

func TestFindByKeyAfterPersistRoundTrip(t *testing.T) {
	table := newTestTable(t)

	row := Row{ID: 5, Username: "carol", Email: "carol@example.com"}
	if err := InsertRow(table, row); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}

	got, found, err := table.FindByKey(5)
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if !found {
		t.Fatal("FindByKey: row not found")
	}
	if got != row {
		t.Errorf("FindByKey = %+v, want %+v", got, row)
	}

	_, found, err = table.FindByKey(999)
	if err != nil {
		t.Fatalf("FindByKey(999): %v", err)
	}
	if found {
		t.Error("FindByKey(999): expected not found")
	}
}
