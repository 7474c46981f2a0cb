package pageio

import "github.com/intellect4all/invidx/row"

// MemoryBlock is a loaded page held in cache together with a dirty bit.
// Neither MemoryPageManager nor DiskPageManager ever loads more than one
// page into a block, so a block holds exactly one page rather than a run
// of them.
type MemoryBlock[T row.Row[T]] struct {
	Page  *Page[T]
	Dirty bool
}
