package discr

// Set is a bounded continuous domain that can be sampled on a uniform grid.
type Set interface {
	// Dim returns the number of axes of the domain.
	Dim() int
	// Bounds returns per-axis lower and upper limits.
	Bounds() (lo, hi []float64)
}

// Interval is the closed 1D interval [Min, Max].
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval with Min < Max.
func NewInterval(min, max float64) (Interval, error) {
	if !(min < max) {
		return Interval{}, ErrInvalidSet
	}
	return Interval{Min: min, Max: max}, nil
}

func (i Interval) Dim() int { return 1 }

func (i Interval) Bounds() (lo, hi []float64) {
	return []float64{i.Min}, []float64{i.Max}
}

// Length returns the extent of the interval.
func (i Interval) Length() float64 { return i.Max - i.Min }

// Rectangle is the axis-aligned 2D box [Min[0], Max[0]] × [Min[1], Max[1]].
type Rectangle struct {
	Min, Max [2]float64
}

// NewRectangle creates a rectangle with strictly increasing bounds per axis.
func NewRectangle(min, max [2]float64) (Rectangle, error) {
	if !(min[0] < max[0]) || !(min[1] < max[1]) {
		return Rectangle{}, ErrInvalidSet
	}
	return Rectangle{Min: min, Max: max}, nil
}

func (r Rectangle) Dim() int { return 2 }

func (r Rectangle) Bounds() (lo, hi []float64) {
	return []float64{r.Min[0], r.Min[1]}, []float64{r.Max[0], r.Max[1]}
}

// Area returns the area of the rectangle.
func (r Rectangle) Area() float64 {
	return (r.Max[0] - r.Min[0]) * (r.Max[1] - r.Min[1])
}
