package storage

import (
	"encoding/binary"
	"fmt"

	"vqlite/pager"
)

// Node is a typed view over a page's raw bytes. It borrows the page
// buffer for the duration of a single operation and never outlives it —
// callers re-fetch the page from the pager for every operation rather
// than caching a Node from one operation to the next.
type Node struct {
	page *pager.Page
}

func NewNode(page *pager.Page) Node { return Node{page: page} }

func (n Node) NodeType() byte { return n.page.Data[NodeTypeOffset] }

func (n Node) SetNodeType(t byte) { n.page.Data[NodeTypeOffset] = t }

func (n Node) IsRoot() bool { return n.page.Data[IsRootOffset] != 0 }

func (n Node) SetIsRoot(v bool) {
	if v {
		n.page.Data[IsRootOffset] = 1
	} else {
		n.page.Data[IsRootOffset] = 0
	}
}

func (n Node) ParentPointer() uint32 {
	return binary.LittleEndian.Uint32(n.page.Data[ParentPointerOffset : ParentPointerOffset+ParentPointerSize])
}

func (n Node) SetParentPointer(pageNum uint32) {
	binary.LittleEndian.PutUint32(n.page.Data[ParentPointerOffset:ParentPointerOffset+ParentPointerSize], pageNum)
}

// --- Leaf node ---

func (n Node) LeafNumCells() uint32 {
	return binary.LittleEndian.Uint32(n.page.Data[LeafNodeNumCellsOffset : LeafNodeNumCellsOffset+LeafNodeNumCellsSize])
}

func (n Node) SetLeafNumCells(count uint32) {
	binary.LittleEndian.PutUint32(n.page.Data[LeafNodeNumCellsOffset:LeafNodeNumCellsOffset+LeafNodeNumCellsSize], count)
}

func (n Node) leafCellOffset(cellNum uint32) uint32 {
	return LeafNodeHeaderSize + cellNum*LeafNodeCellSize
}

// LeafCell returns the raw cell bytes (key + value) at cellNum.
func (n Node) LeafCell(cellNum uint32) []byte {
	off := n.leafCellOffset(cellNum)
	return n.page.Data[off : off+LeafNodeCellSize]
}

func (n Node) LeafKey(cellNum uint32) uint32 {
	cell := n.LeafCell(cellNum)
	return binary.LittleEndian.Uint32(cell[LeafNodeKeyOffset : LeafNodeKeyOffset+LeafNodeKeySize])
}

func (n Node) SetLeafKey(cellNum uint32, key uint32) {
	cell := n.LeafCell(cellNum)
	binary.LittleEndian.PutUint32(cell[LeafNodeKeyOffset:LeafNodeKeyOffset+LeafNodeKeySize], key)
}

// LeafValue returns the RowSize-byte value slice of cellNum, ready to be
// passed to SerializeRow/DeserializeRow.
func (n Node) LeafValue(cellNum uint32) []byte {
	cell := n.LeafCell(cellNum)
	return cell[LeafNodeKeySize : LeafNodeKeySize+LeafNodeValueSize]
}

// InitializeLeaf resets the page as an empty, non-root leaf.
func (n Node) InitializeLeaf() {
	n.SetNodeType(NodeLeaf)
	n.SetIsRoot(false)
	n.SetLeafNumCells(0)
}

// --- Internal node ---

func (n Node) InternalNumKeys() uint32 {
	return binary.LittleEndian.Uint32(n.page.Data[InternalNodeNumKeysOffset : InternalNodeNumKeysOffset+InternalNodeNumKeysSize])
}

func (n Node) SetInternalNumKeys(count uint32) {
	binary.LittleEndian.PutUint32(n.page.Data[InternalNodeNumKeysOffset:InternalNodeNumKeysOffset+InternalNodeNumKeysSize], count)
}

func (n Node) InternalRightChild() uint32 {
	return binary.LittleEndian.Uint32(n.page.Data[InternalNodeRightChildOffset : InternalNodeRightChildOffset+InternalNodeRightChildSize])
}

func (n Node) SetInternalRightChild(pageNum uint32) {
	binary.LittleEndian.PutUint32(n.page.Data[InternalNodeRightChildOffset:InternalNodeRightChildOffset+InternalNodeRightChildSize], pageNum)
}

func (n Node) internalCellOffset(cellNum uint32) uint32 {
	return InternalNodeHeaderSize + cellNum*InternalNodeCellSize
}

func (n Node) InternalCell(cellNum uint32) []byte {
	off := n.internalCellOffset(cellNum)
	return n.page.Data[off : off+InternalNodeCellSize]
}

// InternalChild returns the child page for cellNum, where cellNum ==
// InternalNumKeys() addresses the right_child pointer. Fatal (panics)
// if cellNum exceeds num_keys, matching the source's aborting check.
func (n Node) InternalChild(cellNum uint32) uint32 {
	numKeys := n.InternalNumKeys()
	if cellNum > numKeys {
		panic(fmt.Sprintf("storage: InternalChild: requested child %d, but node has only %d keys", cellNum, numKeys))
	}
	if cellNum == numKeys {
		return n.InternalRightChild()
	}
	cell := n.InternalCell(cellNum)
	return binary.LittleEndian.Uint32(cell[0:InternalNodeChildSize])
}

func (n Node) SetInternalChild(cellNum uint32, pageNum uint32) {
	if cellNum == n.InternalNumKeys() {
		n.SetInternalRightChild(pageNum)
		return
	}
	cell := n.InternalCell(cellNum)
	binary.LittleEndian.PutUint32(cell[0:InternalNodeChildSize], pageNum)
}

func (n Node) InternalKey(cellNum uint32) uint32 {
	cell := n.InternalCell(cellNum)
	return binary.LittleEndian.Uint32(cell[InternalNodeChildSize : InternalNodeChildSize+InternalNodeKeySize])
}

func (n Node) SetInternalKey(cellNum uint32, key uint32) {
	cell := n.InternalCell(cellNum)
	binary.LittleEndian.PutUint32(cell[InternalNodeChildSize:InternalNodeChildSize+InternalNodeKeySize], key)
}

// InitializeInternal resets the page as an empty, non-root internal node.
func (n Node) InitializeInternal() {
	n.SetNodeType(NodeInternal)
	n.SetIsRoot(false)
	n.SetInternalNumKeys(0)
}

// MaxKey returns the last cell's key for a leaf, and the last keyed
// cell's key for an internal node (keys under right_child are not
// consulted).
func (n Node) MaxKey() uint32 {
	if n.NodeType() == NodeLeaf {
		return n.LeafKey(n.LeafNumCells() - 1)
	}
	return n.InternalKey(n.InternalNumKeys() - 1)
}
