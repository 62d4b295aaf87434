// Package par provides the execution engines that run stride kernels and the
// generic range drivers that decompose index spaces across them.
//
// An Engine executes launches: a body applied over contiguous chunks of an
// index range [0, n). Engines differ in where the chunks run. Serial runs
// them inline, Pool fans them out over persistent worker goroutines, and
// Stream queues whole launches behind an asynchronous runner. All engines
// share two guarantees the drivers rely on:
//
//   - launches issued on one engine run in issue order relative to each other
//   - the chunk decomposition is a pure function of (n, parts), so repeated
//     launches over the same range see identical chunk boundaries
//
// Launch may return before the work has run. Fence blocks until every launch
// issued so far has completed and its effects are visible to the caller.
//
// Most code does not talk to an Engine directly; it calls the drivers:
//
//	par.For(e, n, func(i int) { out[i] = f(in[i]) })
//
//	var total float64
//	par.Reduce(e, n, func(i int, update *float64) { *update += in[i] }, &total)
//	e.Fence()
package par

// Engine runs launches over contiguous chunks of an index range.
//
// Workers reports the engine's parallelism; the drivers use it as a
// partition hint and it must be at least 1. Launch schedules body over parts
// chunks of [0, n) as carved by Chunk. Chunks of a single launch may run
// concurrently and in any order; distinct launches run in issue order.
// Launch may return before body has run, and empty chunks are skipped.
// Fence blocks until all previously issued launches have completed.
type Engine interface {
	Workers() int
	Launch(n, parts int, body func(part, lo, hi int))
	Fence()
}

// Chunk returns the half-open bounds [lo, hi) of chunk part when [0, n) is
// split into parts contiguous pieces. parts must be positive. Pieces are
// ceil(n/parts) wide, so trailing chunks may be empty; callers skip chunks
// with lo >= hi.
func Chunk(n, parts, part int) (lo, hi int) {
	size := (n + parts - 1) / parts
	lo = min(part*size, n)
	hi = min(lo+size, n)
	return lo, hi
}
