//go:build amd64 && !purego

package avx2

// BlockedMultiply computes result = a × b with the same tiling and the same
// per-element summation order as the generic backend. Inside a tile, eight
// adjacent output columns are accumulated at once so one row of b is read
// as a contiguous 8-wide vector per reduction step.
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

					j := j0
					for ; j+lanes <= jmax; j += lanes {
						var s0, s1, s2, s3, s4, s5, s6, s7 float32
						for p := k0; p < kmax; p++ {
							av := arow[p]
							bv := b[p*n+j : p*n+j+lanes : p*n+j+lanes]
							s0 += float32(av * bv[0])
							s1 += float32(av * bv[1])
							s2 += float32(av * bv[2])
							s3 += float32(av * bv[3])
							s4 += float32(av * bv[4])
							s5 += float32(av * bv[5])
							s6 += float32(av * bv[6])
							s7 += float32(av * bv[7])
						}
						ov := orow[j : j+lanes : j+lanes]
						ov[0] += s0
						ov[1] += s1
						ov[2] += s2
						ov[3] += s3
						ov[4] += s4
						ov[5] += s5
						ov[6] += s6
						ov[7] += s7
					}

					for ; j < jmax; j++ {
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
