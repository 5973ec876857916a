package lineio

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Memoize wraps a pure function with an unbounded cache
// keyed by its argument.
// The wrapper is not safe for concurrent use,
// matching the single-goroutine model of the rest of the package.
func Memoize[A comparable, R any](fn func(A) R) func(A) R {
	cache := make(map[A]R)
	return func(a A) R {
		if r, ok := cache[a]; ok {
			return r
		}

		r := fn(a)
		cache[a] = r
		return r
	}
}

// Memoize2 is Memoize for two-argument functions,
// keyed by the argument pair.
func Memoize2[A1, A2 comparable, R any](fn func(A1, A2) R) func(A1, A2) R {
	type key struct {
		a1 A1
		a2 A2
	}

	cache := make(map[key]R)
	return func(a1 A1, a2 A2) R {
		k := key{a1, a2}
		if r, ok := cache[k]; ok {
			return r
		}

		r := fn(a1, a2)
		cache[k] = r
		return r
	}
}

// Memoize3 is Memoize for three-argument functions,
// keyed by the argument triple.
func Memoize3[A1, A2, A3 comparable, R any](fn func(A1, A2, A3) R) func(A1, A2, A3) R {
	type key struct {
		a1 A1
		a2 A2
		a3 A3
	}

	cache := make(map[key]R)
	return func(a1 A1, a2 A2, a3 A3) R {
		k := key{a1, a2, a3}
		if r, ok := cache[k]; ok {
			return r
		}

		r := fn(a1, a2, a3)
		cache[k] = r
		return r
	}
}

// MemoizeRec memoizes a self-recursive function.
// fn receives the memoized form of itself to use for recursive calls:
//
//	fib := lineio.MemoizeRec(func(fib func(int) int, n int) int {
//		if n <= 1 {
//			return 1
//		}
//		return fib(n-1) + fib(n-2)
//	})
func MemoizeRec[A comparable, R any](fn func(rec func(A) R, a A) R) func(A) R {
	cache := make(map[A]R)
	var rec func(A) R
	rec = func(a A) R {
		if r, ok := cache[a]; ok {
			return r
		}

		r := fn(rec, a)
		cache[a] = r
		return r
	}

	return rec
}

// MemoizeLRU is Memoize with the cache bounded to size entries,
// evicting least-recently-used, for long-running callers
// that cannot afford an unbounded cache.
func MemoizeLRU[A comparable, R any](size int, fn func(A) R) (func(A) R, error) {
	cache, err := lru.New[A, R](size)
	if err != nil {
		return nil, err
	}

	return func(a A) R {
		if r, ok := cache.Get(a); ok {
			return r
		}

		r := fn(a)
		cache.Add(a, r)
		return r
	}, nil
}
