package cuboid

// Cuboid holds the three edge lengths of a rectangular box. Negative edges are allowed.
type Cuboid [3]int

func (c Cuboid) Volume() int64 {
	return int64(c[0]) * int64(c[1]) * int64(c[2])
}

func VolumeDifference(a, b Cuboid) int64 {
	d := a.Volume() - b.Volume()
	if d < 0 {
		return -d
	}
	return d
}
