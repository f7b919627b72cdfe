package geometry2D

import (
	"math"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) *Point { return &Point{X: [2]float64{x, y}} }

func (pt *Point) Equal(rhs Point) bool { return pt.X == rhs.X }

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin, Box.XMax = Geometry[0].X, Geometry[0].X
	for _, point := range Geometry {
		for i := 0; i < 2; i++ {
			Box.XMin[i] = math.Min(Box.XMin[i], point.X[i])
			Box.XMax[i] = math.Max(Box.XMax[i], point.X[i])
		}
	}
	return Box
}

func (bb *BoundingBox) Centroid() (centroid *Point) {
	return NewPoint(0.5*(bb.XMax[0]+bb.XMin[0]), 0.5*(bb.XMax[1]+bb.XMin[1]))
}

func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		centroid := 0.5 * (bb.XMin[i] + bb.XMax[i])
		bbOut.XMin[i] = scale*(bb.XMin[i]-centroid) + centroid
		bbOut.XMax[i] = scale*(bb.XMax[i]-centroid) + centroid
	}
	return bbOut
}

// Square grows the shorter side so both axes span the same range, keeping
// the aspect ratio of a plotted airfoil
func (bb *BoundingBox) Square() (bbOut *BoundingBox) {
	var (
		c    = bb.Centroid()
		half = 0.5 * math.Max(bb.XMax[0]-bb.XMin[0], bb.XMax[1]-bb.XMin[1])
	)
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		bbOut.XMin[i], bbOut.XMax[i] = c.X[i]-half, c.X[i]+half
	}
	return bbOut
}

func (bb *BoundingBox) PointInside(point *Point) (within bool) {
	for ii := 0; ii < 2; ii++ {
		if point.X[ii] > bb.XMax[ii] || point.X[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

// Polygon is closed, the first point is repeated at the end
type Polygon struct {
	Box      *BoundingBox
	Geometry []Point
}

func NewPolygon(x, y []float64) (poly *Polygon) {
	geom := make([]Point, len(x), len(x)+1)
	for i := range x {
		geom[i] = Point{X: [2]float64{x[i], y[i]}}
	}
	if len(geom) != 0 && !geom[len(geom)-1].Equal(geom[0]) {
		geom = append(geom, geom[0])
	}
	return &Polygon{
		Box:      NewBoundingBox(geom),
		Geometry: geom,
	}
}

func (pg *Polygon) Area() (area float64) {
	/*
		Algorithm: Green's theorem in the plane, positive for counterclockwise
	*/
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0, pt1 := pg.Geometry[i], pg.Geometry[i+1]
		area += pt0.X[0]*pt1.X[1] - pt1.X[0]*pt0.X[1]
	}
	return 0.5 * area
}

func (pg *Polygon) IsCounterClockwise() bool { return pg.Area() > 0 }

func (pg *Polygon) Centroid() (centroid *Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	var (
		area = pg.Area()
		ct   [2]float64
	)
	for i := 0; i < len(pg.Geometry)-1; i++ {
		x0, y0 := pg.Geometry[i].X[0], pg.Geometry[i].X[1]
		x1, y1 := pg.Geometry[i+1].X[0], pg.Geometry[i+1].X[1]
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	return NewPoint(ct[0]/(6*area), ct[1]/(6*area))
}

func (pg *Polygon) PointInside(point Point) (inside bool) {
	if !pg.Box.PointInside(&point) {
		return false
	}
	/*
		Winding Number from http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly()
		if wn = 0, the point is outside
		isLeft() is >0 for P2 left of the line through P0 and P1, <0 for right
	*/
	isLeft := func(P0, P1, P2 Point) float64 {
		return (P1.X[0]-P0.X[0])*(P2.X[1]-P0.X[1]) -
			(P2.X[0]-P0.X[0])*(P1.X[1]-P0.X[1])
	}
	var wn int
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0, pt1 := pg.Geometry[i], pg.Geometry[i+1]
		if pt0.X[1] <= point.X[1] {
			if pt1.X[1] > point.X[1] && isLeft(pt0, pt1, point) > 0 {
				wn++
			}
		} else {
			if pt1.X[1] <= point.X[1] && isLeft(pt0, pt1, point) < 0 {
				wn--
			}
		}
	}
	return wn != 0
}
