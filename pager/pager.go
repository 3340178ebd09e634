// Package pager implements the bounded page cache over a single on-disk
// file. It knows nothing about rows or B+-tree nodes; it hands out and
// flushes fixed-size byte buffers addressed by page number.
package pager

import (
	"fmt"
	"io"
	"os"
)

const (
	// PageSize is the fixed size of every page, on disk and in memory.
	PageSize = 4096

	// MaxPages bounds the pager's page-number cache. The source tutorial
	// this engine is modeled on off-by-ones this check (`page_num > 100`,
	// admitting page 100 into a 100-slot array); we use `>=` so the bound
	// actually matches the slice length.
	MaxPages = 100
)

// Page is a single in-memory buffer mirroring one page on disk.
type Page struct {
	Data  [PageSize]byte
	Dirty bool
}

// Pager owns the file descriptor and the bounded set of page buffers
// loaded from it. Pages are loaded lazily on first GetPage and released
// only by Close.
type Pager struct {
	file       *os.File
	fileLength int64
	NumPages   uint32
	pages      [MaxPages]*Page
}

// Open opens path for read/write, creating it if absent. A file whose
// length is not a whole multiple of PageSize is rejected as corrupt.
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w", path, err)
	}

	length, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pager: seek end of %s: %w", path, err)
	}
	if length%PageSize != 0 {
		f.Close()
		return nil, fmt.Errorf("pager: %s: corrupt file, length %d is not a multiple of page size %d", path, length, PageSize)
	}

	return &Pager{
		file:       f,
		fileLength: length,
		NumPages:   uint32(length / PageSize),
	}, nil
}

// GetPage returns the buffer for pageNum, loading it from disk on first
// access. Pages beyond the file's persisted length are zero-filled.
// Requesting a page at or past NumPages lazily extends the table, the
// same way the original insert-only allocator does: the pager has no
// notion of "unused" pages, only of the high-water mark touched so far.
func (p *Pager) GetPage(pageNum uint32) (*Page, error) {
	if pageNum >= MaxPages {
		return nil, fmt.Errorf("pager: page %d out of bounds (max %d)", pageNum, MaxPages)
	}

	if p.pages[pageNum] == nil {
		page := &Page{}

		filePages := uint32(p.fileLength / PageSize)
		if pageNum < filePages {
			if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
				return nil, fmt.Errorf("pager: seek page %d: %w", pageNum, err)
			}
			if _, err := io.ReadFull(p.file, page.Data[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
				return nil, fmt.Errorf("pager: read page %d: %w", pageNum, err)
			}
		}

		p.pages[pageNum] = page
	}

	if pageNum >= p.NumPages {
		p.NumPages = pageNum + 1
	}

	return p.pages[pageNum], nil
}

// GetUnusedPageNum returns the next page number available for
// allocation. There is no free list: pages are never reclaimed, because
// this engine never deletes.
func (p *Pager) GetUnusedPageNum() uint32 {
	return p.NumPages
}

// Flush writes pageNum's full buffer back to disk, regardless of how
// much of it is logically in use — a leaf's num_cells header records
// the valid prefix, so writing the whole 4096-byte page is correct.
func (p *Pager) Flush(pageNum uint32) error {
	page := p.pages[pageNum]
	if page == nil {
		return fmt.Errorf("pager: flush: page %d was never loaded", pageNum)
	}
	if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
		return fmt.Errorf("pager: seek page %d: %w", pageNum, err)
	}
	n, err := p.file.Write(page.Data[:])
	if err != nil {
		return fmt.Errorf("pager: write page %d: %w", pageNum, err)
	}
	if n != PageSize {
		return fmt.Errorf("pager: short write on page %d: wrote %d of %d bytes", pageNum, n, PageSize)
	}
	written := (int64(pageNum) + 1) * PageSize
	if written > p.fileLength {
		p.fileLength = written
	}
	return nil
}

// Close flushes every page that was ever loaded and closes the file.
// Pages are released implicitly along with the Pager itself.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.NumPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
	}
	return p.file.Close()
}
