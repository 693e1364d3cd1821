package board_test

import (
	"testing"

	"github.com/sharedstate/blackboard/lib/board"
	boardtesting "github.com/sharedstate/blackboard/lib/board/testing"
)

func Test(t *testing.T) {
	boardtesting.RunBoardTests(t, "Board", func() *board.Board {
		return board.New(nil)
	})

	boardtesting.RunBoardTests(t, "BoardWithMetrics", func() *board.Board {
		return board.New(&board.Options{Metrics: true})
	})
}

func Benchmark(b *testing.B) {
	boardtesting.RunBoardBenchmarks(b, "Board", func() *board.Board {
		return board.New(nil)
	})
}
