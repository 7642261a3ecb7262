package coord

import "gonum.org/v1/gonum/stat/combin"

// rankCombination returns the co-lexicographic rank of the ascending
// k-element subset elems of {0, 1, 2, ...}, using the combinatorial number
// system: rank = sum_i C(elems[i], i+1), where C(n, k) is 0 for n < k
// (combin.Binomial panics there, so those terms are skipped).
func rankCombination(elems []int) int {
	rank := 0
	for i, a := range elems {
		if a >= i+1 {
			rank += combin.Binomial(a, i+1)
		}
	}
	return rank
}

// unrankCombination is the inverse of rankCombination: given rank and the
// subset size k, it recovers the ascending k-element subset.
func unrankCombination(rank, k int) []int {
	elems := make([]int, k)
	r := rank
	for i := k; i >= 1; i-- {
		a := i - 1
		for combin.Binomial(a+1, i) <= r {
			a++
		}
		elems[i-1] = a
		if a >= i {
			r -= combin.Binomial(a, i)
		}
	}
	return elems
}

// rankPermutation returns the Lehmer-code (factorial number system) rank of
// perm, a permutation of {0, ..., len(perm)-1}: rank = sum_i c_i*(n-1-i)!,
// where c_i counts the entries after position i that are smaller than
// perm[i].
func rankPermutation(perm []int) int {
	n := len(perm)
	rank := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		rank += smaller * factorial(n-1-i)
	}
	return rank
}

// factorial returns n! for small non-negative n.
func factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}
	return out
}

// unrankPermutation is the inverse of rankPermutation: given rank and size
// n, it recovers the permutation of {0, ..., n-1}.
func unrankPermutation(rank, n int) []int {
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}
	perm := make([]int, n)
	r := rank
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		idx := r / f
		r %= f
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return perm
}
