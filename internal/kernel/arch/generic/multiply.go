package generic

// BlockedMultiply computes result = a × b with a (m×k), b (k×n) and result
// (m×n), all row-major. The i, j and k loops are tiled by block.
//
// For every (i, j) the partial sum of one k-tile is accumulated left to
// right from zero and then added to result[i, j]; k-tiles are visited in
// ascending order. All backends follow this order so their results are
// bit-identical. The explicit float32 conversion rounds each product and
// keeps the compiler from contracting it into a fused multiply-add.
func BlockedMultiply(result, a, b []float32, m, n, k, block int) {
	out := result[:m*n]
	clear(out)

	for i0 := 0; i0 < m; i0 += block {
		imax := min(i0+block, m)

		for j0 := 0; j0 < n; j0 += block {
			jmax := min(j0+block, n)

			for k0 := 0; k0 < k; k0 += block {
				kmax := min(k0+block, k)

				for i := i0; i < imax; i++ {
					arow := a[i*k : i*k+k]
					orow := out[i*n : i*n+n]

					for j := j0; j < jmax; j++ {
						var sum float32
						for p := k0; p < kmax; p++ {
							sum += float32(arow[p] * b[p*n+j])
						}
						orow[j] += sum
					}
				}
			}
		}
	}
}
