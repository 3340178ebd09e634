package main

import (
	"fmt"
	"os"

	"vqlite/storage"
)

type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognizedCommand
)

// doMetaCommand handles every "."-prefixed input line. .exit terminates
// the process; everything else is reported and the REPL continues.
func doMetaCommand(table *storage.Table, input string) MetaCommandResult {
	switch input {
	case ".exit":
		if err := table.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	case ".btree":
		out, err := storage.DumpTree(table)
		if err != nil {
			exitFatal(err)
		}
		fmt.Print(out)
	case ".constants":
		printConstants()
	default:
		return MetaCommandUnrecognizedCommand
	}
	return MetaCommandSuccess
}

func printConstants() {
	fmt.Printf("ROW_SIZE: %d\n", storage.RowSize)
	fmt.Printf("COMMON_NODE_HEADER_SIZE: %d\n", storage.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE: %d\n", storage.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE: %d\n", storage.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS: %d\n", storage.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS: %d\n", storage.LeafNodeMaxCells)
}

// exitFatal reports a FatalError (or any other unexpected error, such as
// a pager failure or a corrupt file length at open) on stderr and
// terminates the process with exit code 1.
func exitFatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
