package room

import "fmt"

// Fitness summarizes a field. For a perfect arctic circle with even N the
// filling is one half and all six pole areas match.
type Fitness struct {
	Monotone bool
	Filling  float64

	XFull, XEmpty int
	YFull, YEmpty int
	ZFull, ZEmpty int
}

// Measure computes the fitness of f.
func Measure(f *Field) Fitness {
	n := f.n
	area := n * n
	out := Fitness{Monotone: f.Monotone()}
	out.Filling = float64(f.Volume()) / float64(area*n)

	var lastCol, firstCol, lastRow, firstRow int
	for i := 0; i < n; i++ {
		lastCol += f.h.At(n-1, i)
		firstCol += f.h.At(0, i)
		lastRow += f.h.At(i, n-1)
		firstRow += f.h.At(i, 0)
	}
	out.XFull = lastCol
	out.XEmpty = area - firstCol
	out.YFull = lastRow
	out.YEmpty = area - firstRow

	for _, v := range f.h.Cells() {
		switch v {
		case n:
			out.ZFull++
		case 0:
			out.ZEmpty++
		}
	}
	return out
}

func (f Fitness) String() string {
	return fmt.Sprintf("Monotony: %v, Filling: %v, Poles: (%d, %d), (%d, %d), (%d, %d)",
		f.Monotone, f.Filling, f.XFull, f.XEmpty, f.YFull, f.YEmpty, f.ZFull, f.ZEmpty)
}
