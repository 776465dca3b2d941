package purefn_test

import (
	"fmt"

	"github.com/on-the-ground/functools_ive_go/purefn"
)

func ExampleWrap() {
	square := purefn.MustWrap(func(args ...any) (int, error) {
		n := args[0].(int)
		fmt.Println("computing", n)
		return n * n, nil
	}, purefn.WithName("square"))

	v, _ := square.Call(4)
	fmt.Println(v)
	v, _ = square.Call(4)
	fmt.Println(v)

	square.Clear()
	v, _ = square.Call(4)
	fmt.Println(v, square.Name())
	// Output:
	// computing 4
	// 16
	// 16
	// computing 4
	// 16 square
}

func ExampleTableizeI1O1() {
	var fib func(int) int
	fib, memo := purefn.TableizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	fmt.Println(fib(50), memo.Len())
	// Output: 12586269025 51
}
