package voxel

import "sync/atomic"

func statusLoad(bits *uint32) StatusFlag {
	return StatusFlag(atomic.LoadUint32(bits))
}

func statusOr(bits *uint32, mask uint32) {
	for {
		old := atomic.LoadUint32(bits)
		if atomic.CompareAndSwapUint32(bits, old, old|mask) {
			return
		}
	}
}

func statusAnd(bits *uint32, mask uint32) {
	for {
		old := atomic.LoadUint32(bits)
		if atomic.CompareAndSwapUint32(bits, old, old&mask) {
			return
		}
	}
}
