package matrixio

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio/npy"
)

// maxElements caps nrows*ncols before anything is allocated. It is far past
// any matrix the O(V²) engines can process.
const maxElements = 1 << 28

// readNPY decodes a 2-D NumPy array. Values of any supported dtype are
// widened to float64; Fortran-ordered data is transposed into rows.
func readNPY(r io.Reader) ([][]float64, error) {
	nr, err := npy.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("matrixio: npy header: %w", err)
	}

	shape := nr.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: shape %v", ErrBadDims, shape)
	}
	nrows, ncols := shape[0], shape[1]
	if nrows < 0 || ncols < 0 || (ncols > 0 && nrows > maxElements/ncols) {
		return nil, fmt.Errorf("%w: shape %v", ErrBadDims, shape)
	}

	flat, err := readFlat(nr, nrows*ncols)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, nrows)
	for i := range rows {
		rows[i] = make([]float64, ncols)
		for j := range rows[i] {
			if nr.Header.Descr.Fortran {
				rows[i][j] = flat[j*nrows+i]
			} else {
				rows[i][j] = flat[i*ncols+j]
			}
		}
	}

	return rows, nil
}

// readFlat reads size elements into a slice matching the header dtype and
// widens them to float64.
func readFlat(nr *npy.Reader, size int) ([]float64, error) {
	dtype := nr.Header.Descr.Type
	if len(dtype) < 2 {
		return nil, fmt.Errorf("%w: dtype %q", ErrUnsupportedFormat, dtype)
	}

	switch dtype[1:] { // drop the byte-order mark
	case "f8":
		out := make([]float64, size)
		if err := nr.Read(&out); err != nil {
			return nil, fmt.Errorf("matrixio: npy data: %w", err)
		}
		return out, nil
	case "f4":
		return readWiden[float32](nr, size)
	case "i8":
		return readWiden[int64](nr, size)
	case "i4":
		return readWiden[int32](nr, size)
	case "i2":
		return readWiden[int16](nr, size)
	case "i1":
		return readWiden[int8](nr, size)
	case "u8":
		return readWiden[uint64](nr, size)
	case "u4":
		return readWiden[uint32](nr, size)
	case "u2":
		return readWiden[uint16](nr, size)
	case "u1":
		return readWiden[uint8](nr, size)
	default:
		return nil, fmt.Errorf("%w: dtype %q", ErrUnsupportedFormat, dtype)
	}
}

type number interface {
	~float32 | ~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8
}

func readWiden[T number](nr *npy.Reader, size int) ([]float64, error) {
	raw := make([]T, size)
	if err := nr.Read(&raw); err != nil {
		return nil, fmt.Errorf("matrixio: npy data: %w", err)
	}
	out := make([]float64, size)
	for i, v := range raw {
		out[i] = float64(v)
	}

	return out, nil
}
