package ir

import "testing"

func TestCompare(t *testing.T) {
	ab := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromString("1")},
		{Key: "b", Val: FromString("2")},
	})
	ba := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromString("2")},
		{Key: "a", Val: FromString("1")},
	})
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{name: "nil-nil", a: nil, b: nil, want: 0},
		{name: "nil-lt", a: nil, b: FromString(""), want: -1},
		{name: "string-eq", a: FromString("x"), b: FromString("x"), want: 0},
		{name: "string-lt", a: FromString("a"), b: FromString("b"), want: -1},
		{name: "string-lt-object", a: FromString("z"), b: NewObject(), want: -1},
		{name: "object-eq", a: ab, b: ab.Clone(), want: 0},
		{name: "order-matters", a: ab, b: ba, want: -1},
		{name: "shorter-lt", a: NewObject(), b: ab, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}
