//go:build amd64 && !purego

package sse2

// BlockedMultiply is the 4-column variant of the tiled multiply. Summation
// order per output element matches the generic backend.
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
						var s0, s1, s2, s3 float32
						for p := k0; p < kmax; p++ {
							av := arow[p]
							bv := b[p*n+j : p*n+j+lanes : p*n+j+lanes]
							s0 += float32(av * bv[0])
							s1 += float32(av * bv[1])
							s2 += float32(av * bv[2])
							s3 += float32(av * bv[3])
						}
						ov := orow[j : j+lanes : j+lanes]
						ov[0] += s0
						ov[1] += s1
						ov[2] += s2
						ov[3] += s3
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
