// Package psol implements the fatal-attractor family of partial solvers:
// psol, psolB (plus its Büchi∩co-Büchi and Büchi∩safety variants), psolQ
// and psolC, for both single-dimension and generalized parity games. A
// partial solver never claims to solve a whole game; it decides as many
// vertices as it safely can and hands back the unsolved residual arena.
//
// Grounded on original_source/generalizedparity-master/fatalattractors/
// psol.py, psolB.py, psolB_generalized.py, psolQ_generalized.py,
// psol_generalized.py, and original_source/tool/.../fatalattractors/
// psolC.py, psolQ.py, psolC_generalized.py.
package psol
