package slidegate

import (
	"fmt"
	"testing"
)

func TestPoint_String(t *testing.T) {
	tests := []struct {
		point Point
		want  string
	}{
		{Point{X: 179, Y: 76}, "179,76"},
		{Point{X: 0, Y: 0}, "0,0"},
		{Point{X: -3, Y: 12}, "-3,12"},
	}

	for _, tt := range tests {
		if got := tt.point.String(); got != tt.want {
			t.Errorf("Point%+v.String() = %q, want %q", tt.point, got, tt.want)
		}
	}
}

// ExamplePoint demonstrates formatting a slider drop position.
func ExamplePoint() {
	fmt.Println(Point{X: 179, Y: 76})
	// Output: 179,76
}
