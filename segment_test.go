package geometry

import "testing"

func TestSegmentsIntersectSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment[int]
		want bool
	}{
		{
			name: "crossing",
			a:    NewSegment(NewPoint(0, 0), NewPoint(10, 10)),
			b:    NewSegment(NewPoint(0, 10), NewPoint(10, 0)),
			want: true,
		},
		{
			name: "disjoint parallel",
			a:    NewSegment(NewPoint(0, 0), NewPoint(10, 0)),
			b:    NewSegment(NewPoint(0, 5), NewPoint(10, 5)),
			want: false,
		},
		{
			name: "collinear overlap",
			a:    NewSegment(NewPoint(0, 0), NewPoint(10, 0)),
			b:    NewSegment(NewPoint(5, 0), NewPoint(15, 0)),
			want: true,
		},
		{
			name: "touching endpoint",
			a:    NewSegment(NewPoint(0, 0), NewPoint(10, 10)),
			b:    NewSegment(NewPoint(10, 10), NewPoint(20, 0)),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentsIntersect(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("SegmentsIntersect(a,b) = %v, want %v", got, tt.want)
			}
			if rev := SegmentsIntersect(tt.b, tt.a); rev != got {
				t.Errorf("SegmentsIntersect not symmetric: a,b=%v b,a=%v", got, rev)
			}
		})
	}
}

func TestOrientationOf(t *testing.T) {
	cw := OrientationOf(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 0))
	if cw != Clockwise && cw != CounterClockwise {
		t.Fatalf("want a definite turn, got %v", cw)
	}
	col := OrientationOf(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2))
	if col != Collinear {
		t.Fatalf("want collinear, got %v", col)
	}
}
