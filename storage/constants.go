package storage

import (
	"unsafe"

	"vqlite/pager"
)

// Row layout: id (4B) + username (32B) + email (255B). Neither text
// field reserves a dedicated terminator byte; a value that fills its
// field exactly has no trailing NUL, and is still read back correctly
// because the field width is fixed and known at read time.
const (
	IDSize       = uint32(unsafe.Sizeof(uint32(0)))
	UsernameSize = uint32(32)
	EmailSize    = uint32(255)

	IDOffset       = uint32(0)
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize // 291
)

// Common node header layout: node_type(1) + is_root(1) + parent_pointer(4).
const (
	NodeTypeSize   = 1
	NodeTypeOffset = 0

	IsRootSize   = 1
	IsRootOffset = NodeTypeOffset + NodeTypeSize

	ParentPointerSize   = 4
	ParentPointerOffset = IsRootOffset + IsRootSize

	CommonNodeHeaderSize = NodeTypeSize + IsRootSize + ParentPointerSize // 6
)

// Leaf node header: common header + num_cells(4).
const (
	LeafNodeNumCellsSize   = 4
	LeafNodeNumCellsOffset = CommonNodeHeaderSize

	LeafNodeHeaderSize = CommonNodeHeaderSize + LeafNodeNumCellsSize // 10
)

// Leaf node body: array of {key(4), value(RowSize)} cells.
const (
	LeafNodeKeySize   = 4
	LeafNodeKeyOffset = uint32(0)

	LeafNodeValueSize   = RowSize
	LeafNodeValueOffset = LeafNodeKeyOffset + LeafNodeKeySize

	LeafNodeCellSize = LeafNodeKeySize + LeafNodeValueSize // 295

	LeafNodeSpaceForCells = pager.PageSize - LeafNodeHeaderSize   // 4086
	LeafNodeMaxCells      = LeafNodeSpaceForCells / LeafNodeCellSize // 13

	// Split counts. LEAF_NODE_MAX_CELLS+1 cells (13 existing + 1 new) are
	// redistributed left-biased: both halves get ceil((N+1)/2).
	LeafNodeRightSplitCount = (LeafNodeMaxCells + 1) / 2
	LeafNodeLeftSplitCount  = (LeafNodeMaxCells + 1) - LeafNodeRightSplitCount
)

// Internal node header: common header + num_keys(4) + right_child(4).
const (
	InternalNodeNumKeysSize   = 4
	InternalNodeNumKeysOffset = CommonNodeHeaderSize

	InternalNodeRightChildSize   = 4
	InternalNodeRightChildOffset = InternalNodeNumKeysOffset + InternalNodeNumKeysSize

	InternalNodeHeaderSize = CommonNodeHeaderSize + InternalNodeNumKeysSize + InternalNodeRightChildSize // 14
)

// Internal node body: array of {child(4), key(4)} cells.
const (
	InternalNodeChildSize = 4
	InternalNodeKeySize   = 4
	InternalNodeCellSize  = InternalNodeChildSize + InternalNodeKeySize // 8
)

// Node type tags stored at byte offset 0 of every page.
const (
	NodeInternal byte = 0
	NodeLeaf     byte = 1
)

// RootPageNum is always 0: this engine never relocates the root.
const RootPageNum = uint32(0)
