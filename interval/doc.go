// Package interval implements the algebra of musical intervals: qualities and
// numbers, simple (sub-octave) intervals, octave-extended intervals and
// signed intervals, with addition, subtraction and inversion.
//
// Arithmetic runs on the circle of fifths. Every simple interval has an
// integer index (P1 = 0, P5 = 1, M2 = 2, ... P4 = -1; each half step of
// augmentation adds 7), so adding intervals is adding indices and folding the
// result back into one octave.
//
// All types are small immutable values and safe to share between goroutines.
package interval
