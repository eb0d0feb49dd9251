package lis

import "golang.org/x/exp/constraints"

// noPredecessor marks a position that starts its own subsequence in the
// predecessor table.
const noPredecessor = -1

// Find returns one longest strictly-increasing subsequence of seq.
//
// Algorithm Outline (quadratic tabulation):
//  1. lengths[i] — length of the longest increasing subsequence ending
//     exactly at i; prev[i] — index of the element before seq[i] on that
//     subsequence, or noPredecessor when seq[i] starts its own.
//  2. For each i ascending, scan every j < i ascending:
//     if seq[j] < seq[i] and lengths[j]+1 > lengths[i],
//     take j as the new predecessor of i.
//  3. Track the first index holding the maximum lengths value.
//  4. Walk prev back from that index, then reverse into increasing order.
//
// Tie-breaks are frozen for reproducibility: among equally good
// predecessors the smallest j wins (later equal candidates never
// overwrite, step 2 improves strictly), and among equally long
// subsequences the one ending earliest wins (step 3 compares strictly).
// Equal values never chain — the subsequence is strictly increasing.
//
// Empty input yields an empty result; a single element yields itself.
// The result is always freshly allocated and never nil. For float
// element types note that NaN never compares less than anything, so NaN
// elements act as isolated one-element subsequences.
//
// Complexity: O(n²) time, O(n) table space.
func Find[T constraints.Ordered](seq []T) []T {
	indices := FindIndices(seq)

	out := make([]T, len(indices))
	for k, i := range indices {
		out[k] = seq[i]
	}

	return out
}

// FindIndices returns the positions of one longest strictly-increasing
// subsequence of seq, in ascending order. It applies the same
// tabulation and the same frozen tie-breaks as Find, so
// seq[FindIndices(seq)[k]] == Find(seq)[k] for every k.
//
// Complexity: O(n²) time, O(n) space.
func FindIndices[T constraints.Ordered](seq []T) []int {
	if len(seq) == 0 {
		return []int{}
	}

	lengths, prev, best := tabulate(seq)

	// Walk the predecessor chain back from the winning end, collecting
	// positions, then reverse in place to restore increasing order.
	path := make([]int, 0, lengths[best])
	for i := best; i != noPredecessor; i = prev[i] {
		path = append(path, i)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// Length returns the length of a longest strictly-increasing subsequence
// of seq without reconstructing it. Length(seq) == len(Find(seq)) always;
// this variant only skips the reconstruction allocation.
//
// Complexity: O(n²) time, O(n) space.
func Length[T constraints.Ordered](seq []T) int {
	if len(seq) == 0 {
		return 0
	}

	lengths, _, best := tabulate(seq)

	return lengths[best]
}

// tabulate fills the two DP tables over seq and reports the index of the
// first element at which a maximal subsequence ends. Both tables are
// fully populated for every index before returning. Callers own the
// returned slices exclusively.
func tabulate[T constraints.Ordered](seq []T) (lengths, prev []int, best int) {
	n := len(seq)
	lengths = make([]int, n)
	prev = make([]int, n)

	for i := 0; i < n; i++ {
		// Every element is at least a subsequence of itself.
		lengths[i] = 1
		prev[i] = noPredecessor

		// Ascending j keeps candidate order deterministic; the strict
		// improvement test keeps the first among equal extensions.
		for j := 0; j < i; j++ {
			if seq[j] < seq[i] && lengths[j]+1 > lengths[i] {
				lengths[i] = lengths[j] + 1
				prev[i] = j
			}
		}

		// First maximal end wins; later ties never displace it.
		if lengths[i] > lengths[best] {
			best = i
		}
	}

	return lengths, prev, best
}
