package images

import "sync"

// Option configures an engine operation.
type Option func(*options)

type options struct {
	parallel bool
}

// WithParallel splits the row loop of an operation into chunks processed on
// separate goroutines. Every chunk writes a disjoint set of destination cells and
// the operation waits for all chunks before returning.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// forEachRow calls rowTask for every row in [0, n). Small inputs always run
// sequentially.
func forEachRow(n int, o options, rowTask func(row int)) {
	if !o.parallel || n < 4 {
		for r := 0; r < n; r++ {
			rowTask(r)
		}
		return
	}

	chunk := chooseChunk(n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for r := s; r < e; r++ {
				rowTask(r)
			}
		}(start, end)
	}
	wg.Wait()
}

// chooseChunk picks a row chunk size that keeps goroutine count low for tall grids.
func chooseChunk(n int) int {
	switch {
	case n >= 2048:
		return 128
	case n >= 512:
		return 64
	case n >= 64:
		return 32
	default:
		return 4
	}
}
