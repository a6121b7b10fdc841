// Package antichain implements a generic antichain — a set of pairwise
// incomparable elements under a caller-supplied partial order — used by
// package safety as the symbolic state representation of the backward
// safety-game fixpoint (spec.md §4.3/§4.4).
//
// Grounded on original_source/generalizedparity-master/antichain.py,
// reshaped with Go generics (Antichain[T]) instead of the Python source's
// untyped list, and with Equal fixed to the mutual-inclusion check
// spec.md §9 calls for (the Python source's one-directional compare is a
// latent bug the callers' shrinking-only fixpoints happen to mask).
package antichain
