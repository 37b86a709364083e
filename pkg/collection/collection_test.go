package collection

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	want := []string{"1", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Map = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Filter = %v", got)
	}
	if Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 }) != nil {
		t.Fatal("no matches must yield nil")
	}
}

func TestKeyBy(t *testing.T) {
	type row struct {
		ID   uint
		Name string
	}
	rows := []row{{1, "a"}, {2, "b"}, {1, "c"}}

	got := KeyBy(rows, func(r row) uint { return r.ID })
	if len(got) != 2 {
		t.Fatalf("KeyBy size = %d", len(got))
	}
	if got[1].Name != "c" {
		t.Fatalf("later element must win on duplicate keys, got %q", got[1].Name)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3}, 10, func(acc, n int) int { return acc + n })
	if sum != 16 {
		t.Fatalf("Reduce = %d", sum)
	}
}
