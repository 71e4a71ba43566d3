package gtfs

const ShapeFile = "shapes.txt"

type ShapeKey struct {
	ShapeID  string
	Sequence int
}

// Shape is one point of a vehicle path.
type Shape struct {
	ShapeID           string
	ShapePtLat        float64
	ShapePtLon        float64
	ShapePtSequence   int
	ShapeDistTraveled *float64
}

func (s *Shape) Key() ShapeKey {
	return ShapeKey{ShapeID: s.ShapeID, Sequence: s.ShapePtSequence}
}

type ShapeBuilder struct {
	shapeID           *string
	shapePtLat        *float64
	shapePtLon        *float64
	shapePtSequence   *int
	shapeDistTraveled *float64
}

func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{}
}

func (b *ShapeBuilder) ShapeID(v *string) *ShapeBuilder { b.shapeID = v; return b }
func (b *ShapeBuilder) ShapePtLat(v *float64) *ShapeBuilder { b.shapePtLat = v; return b }
func (b *ShapeBuilder) ShapePtLon(v *float64) *ShapeBuilder { b.shapePtLon = v; return b }
func (b *ShapeBuilder) ShapePtSequence(v *int) *ShapeBuilder { b.shapePtSequence = v; return b }
func (b *ShapeBuilder) ShapeDistTraveled(v *float64) *ShapeBuilder { b.shapeDistTraveled = v; return b }

func (b *ShapeBuilder) Clear() *ShapeBuilder {
	*b = ShapeBuilder{}
	return b
}

func (b *ShapeBuilder) Build() BuildResult[Shape] {
	c := newCheck(ShapeFile, b.shapeID)
	s := &Shape{
		ShapeID:           requireText(c, "shape_id", b.shapeID),
		ShapePtLat:        requireValue(c, "shape_pt_lat", b.shapePtLat),
		ShapePtLon:        requireValue(c, "shape_pt_lon", b.shapePtLon),
		ShapePtSequence:   requireValue(c, "shape_pt_sequence", b.shapePtSequence),
		ShapeDistTraveled: copyPtr(b.shapeDistTraveled),
	}
	if c.failed() {
		return Failure[Shape](c.notices...)
	}
	return Success(s)
}
