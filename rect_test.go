package geometry

import "testing"

func TestIntersectsRect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect[int]
		want bool
	}{
		{
			name: "seed scenario 1 - overlapping",
			a:    NewRect(NewPoint(50, 13), 100, 100),
			b:    NewRect(NewPoint(0, 0), 123, 123),
			want: true,
		},
		{
			name: "seed scenario 1 - still overlapping after translate",
			a:    NewRect(NewPoint(50, 13), 100, 100),
			b:    TranslateRect(NewRect(NewPoint(0, 0), 123, 123), 149, 110),
			want: true,
		},
		{
			name: "seed scenario 1 - disjoint after further translate",
			a:    NewRect(NewPoint(50, 13), 100, 100),
			b:    TranslateRect(TranslateRect(NewRect(NewPoint(0, 0), 123, 123), 149, 110), 100000, 100000),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersects[int](tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got != Intersects[int](tt.b, tt.a) {
				t.Errorf("Intersects is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestContainsPoint(t *testing.T) {
	r := NewRect(NewPoint(0, 0), 100, 100)
	p := NewPoint(50, 50)
	if !ContainsPoint[int](r, p) {
		t.Fatal("want rect to contain (50,50)")
	}
	p = p.Translate(100, 100)
	if ContainsPoint[int](r, p) {
		t.Fatal("want rect to no longer contain point after translating it out")
	}
}

func TestContainsRect(t *testing.T) {
	outer := NewRect(NewPoint(0, 0), 100, 100)
	inner := NewRect(NewPoint(50, 50), 10, 10)
	if !Contains[int](outer, inner) {
		t.Fatal("want outer to contain inner")
	}
	inner = TranslateRect(inner, 100, 100)
	if Contains[int](outer, inner) {
		t.Fatal("want outer to no longer contain inner after translating it out")
	}
}

func TestCorners(t *testing.T) {
	r := NewRect(NewPoint(1, 2), 10, 20)
	if got := BottomLeft[int](r); got != (Point[int]{1, 2}) {
		t.Errorf("BottomLeft = %v", got)
	}
	if got := BottomRight[int](r); got != (Point[int]{11, 2}) {
		t.Errorf("BottomRight = %v", got)
	}
	if got := TopLeft[int](r); got != (Point[int]{1, 22}) {
		t.Errorf("TopLeft = %v", got)
	}
	if got := TopRight[int](r); got != (Point[int]{11, 22}) {
		t.Errorf("TopRight = %v", got)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	r := NewRect(NewPoint(3, 4), 7, 9)
	got := TranslateRect(TranslateRect(r, 5, -2), -5, 2)
	if got != r {
		t.Errorf("translate round trip: got %v, want %v", got, r)
	}
}

func TestSquareIsBoxLikeRect(t *testing.T) {
	sq := NewSquare(NewPoint(0, 0), 10)
	r := NewRect(NewPoint(5, 5), 2, 2)
	if !Intersects[int](sq, r) {
		t.Fatal("want square/rect to be interchangeable under Intersects")
	}
}
