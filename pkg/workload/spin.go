package workload

import "sync/atomic"

// sink publishes the loop result so the compiler cannot drop the loop.
var sink atomic.Uint64

// Spin executes n dummy iterations. n <= 0 returns immediately.
//
//go:noinline
func Spin(n int) {
	var acc uint64
	for i := 0; i < n; i++ {
		acc += uint64(i) ^ (acc >> 3)
	}
	sink.Store(acc)
}
