package storage

import (
	"os"
	"testing"
)

func TestOpenInitializesEmptyRootLeaf(t *testing.T) {
	table := newTestTable(t)

	page, err := table.Pager.GetPage(table.RootPageNum)
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	node := NewNode(page)
	if node.NodeType() != NodeLeaf {
		t.Errorf("NodeType = %d, want NodeLeaf", node.NodeType())
	}
	if !node.IsRoot() {
		t.Error("IsRoot = false on a freshly opened database, want true")
	}
	if node.LeafNumCells() != 0 {
		t.Errorf("LeafNumCells = %d, want 0", node.LeafNumCells())
	}
}

func TestPersistenceAcrossCloseAndReopen(t *testing.T) {
	f, err := os.CreateTemp("", "table_persist_*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	f.Close()
	path := f.Name()
	defer os.Remove(path)

	table, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	row := Row{ID: 1, Username: "u1", Email: "e1"}
	if err := InsertRow(table, row); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	rows, err := reopened.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll after reopen: %v", err)
	}
	if len(rows) != 1 || rows[0] != row {
		t.Fatalf("rows after reopen = %+v, want [%+v]", rows, row)
	}
}

func TestFileLengthIsAlwaysPageMultiple(t *testing.T) {
	f, err := os.CreateTemp("", "table_filelen_*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	f.Close()
	path := f.Name()
	defer os.Remove(path)

	table, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for id := uint32(1); id <= LeafNodeMaxCells+1; id++ {
		mustInsert(t, table, id)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	const pageSize = 4096
	if fi.Size()%pageSize != 0 {
		t.Fatalf("file size %d is not a multiple of %d", fi.Size(), pageSize)
	}
}

func TestDumpTreeLeafOnly(t *testing.T) {
	table := newTestTable(t)
	mustInsert(t, table, 2)
	mustInsert(t, table, 1)

	out, err := DumpTree(table)
	if err != nil {
		t.Fatalf("DumpTree: %v", err)
	}
	want := "- leaf (size 2)\n  - 1\n  - 2\n"
	if out != want {
		t.Fatalf("DumpTree =\n%q\nwant\n%q", out, want)
	}
}

func TestDumpTreeAfterSplit(t *testing.T) {
	table := newTestTable(t)
	for id := uint32(1); id <= LeafNodeMaxCells+1; id++ {
		mustInsert(t, table, id)
	}

	out, err := DumpTree(table)
	if err != nil {
		t.Fatalf("DumpTree: %v", err)
	}
	if out[:len("- internal (size 1)")] != "- internal (size 1)" {
		t.Fatalf("DumpTree first line = %q, want an internal root of size 1", out)
	}
}
