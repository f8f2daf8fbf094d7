package ring_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/luckyring/ring"
)

// ExampleList_Delete removes every occurrence of a value.
func ExampleList_Delete() {
	l := ring.FromSlice(1, 2, 3, 2, 1)
	n := l.Delete(2)
	fmt.Printf("removed=%d list=[%s]\n", n, l)
	// Output:
	// removed=2 list=[1 3 1]
}

// ExampleList_PushHeadList merges one list in front of another.
func ExampleList_PushHeadList() {
	l := ring.FromSlice(1, 2, 0)
	l.PushHeadList(ring.FromSlice(10, 20))
	l.PushTailList(ring.FromSlice(30))
	fmt.Println(l)
	// Output:
	// 10 20 1 2 0 30
}

// ExampleList_PopHead shows underflow reporting on an empty list.
func ExampleList_PopHead() {
	l := ring.FromSlice("x")
	v, _ := l.PopHead()
	_, err := l.PopHead()
	fmt.Println(v, errors.Is(err, ring.ErrUnderflow))
	// Output:
	// x true
}

// ExampleList_Front walks the ring once from head using a bounded cursor.
func ExampleList_Front() {
	l := ring.FromSlice(4, 5, 6)
	c := l.Front()
	for i := 0; i < l.Len(); i++ {
		fmt.Print(c.Value(), ";")
		c = c.Next()
	}
	fmt.Println(c.Same(l.Front()))
	// Output:
	// 4;5;6;true
}
