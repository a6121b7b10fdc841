// Package buchi solves the ω-regular sub-objectives psolB needs as inner
// loops: plain Büchi, Büchi-inter-safety, Büchi-inter-co-Büchi and
// generalized-Büchi-inter-safety, all for a single designated player j.
//
// Grounded on original_source/generalizedparity-master/buchi/buchi.py,
// buchi_inter_safety.py, buchi_inter_cobuchi.py, and
// generalized_buchi.py / generalized_buchi_inter_safety.py. Every solver
// here returns only the winning region of the designated player — the
// Python source's own docstrings note the complementary region is
// unused by any caller in this module.
package buchi
