package matrix2d

// RotateCCW returns the M×N matrix holding a (N×M) turned a quarter turn
// counterclockwise: dest[M-1-j][i] = src[i][j].
//
//	1 2 3    3 6
//	4 5 6 -> 2 5
//	         1 4
func RotateCCW[T Number](a *Matrix[T]) *Matrix[T] {
	n, m := a.rows, a.cols
	out := alloc[T](m, n)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out.data[(m-1-j)*n+i] = a.data[i*m+j]
		}
	}
	return out
}

// RotateCW returns a turned a quarter turn clockwise: dest[j][N-1-i] = src[i][j].
//
//	1 2 3    4 1
//	4 5 6 -> 5 2
//	         6 3
func RotateCW[T Number](a *Matrix[T]) *Matrix[T] {
	n, m := a.rows, a.cols
	out := alloc[T](m, n)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out.data[j*n+(n-1-i)] = a.data[i*m+j]
		}
	}
	return out
}

// Rotate180 returns a turned half way round: dest[N-1-i][M-1-j] = src[i][j].
func Rotate180[T Number](a *Matrix[T]) *Matrix[T] {
	out := alloc[T](a.rows, a.cols)
	last := len(a.data) - 1
	for k, v := range a.data {
		out.data[last-k] = v
	}
	return out
}
