package vec

// MinPolygonVertices is the smallest vertex count Polygon will produce.
const MinPolygonVertices = 3

// Polygon returns the vertices of a regular polygon with n corners inscribed in a
// circle of the given radius, rotated by angleDeg degrees. The first vertex points
// straight up before rotation.
func Polygon(center Vector2, radius float64, n int, angleDeg float64) []Vector2 {
	if n < MinPolygonVertices {
		n = MinPolygonVertices
	}

	points := make([]Vector2, n)
	step := 360.0 / float64(n)
	up := Vector2{X: 0, Y: -radius}
	for i := range n {
		points[i] = center.Add(up.Rotate(angleDeg + step*float64(i)))
	}
	return points
}

// Contains reports whether p lies inside the convex polygon described by points.
// Points must be ordered consistently (all clockwise or all counter-clockwise).
func Contains(points []Vector2, p Vector2) bool {
	if len(points) < MinPolygonVertices {
		return false
	}

	var sign float64
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}
