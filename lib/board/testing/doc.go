// Package testing provides a reusable conformance suite and benchmark set
// for the Board. The suite is factory-driven so the same behavioral contract
// can be pinned for every Board configuration (plain, metrics-enabled, the
// process-wide default board wrapped in a factory, ...).
//
// Usage:
//
//	func Test(t *testing.T) {
//	    boardtesting.RunBoardTests(t, "Board", func() *board.Board {
//	        return board.New(nil)
//	    })
//	}
package testing
