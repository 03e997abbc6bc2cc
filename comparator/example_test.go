package comparator_test

import (
	"fmt"

	"github.com/streampulse/chronos/comparator"
)

func Example_edit() {
	c := comparator.NewDiscrete[rune](comparator.DefaultConfig())
	res, err := c.Compare([]rune("kitten"), []rune("sitting"), comparator.Edit)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Distance)
	// Output: 3
}

func Example_lcs() {
	c := comparator.NewNumeric[int](comparator.DefaultConfig())
	res, err := c.Compare([]int{1, 2, 3, 4, 5}, []int{1, 3, 5}, comparator.LCS)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Distance)
	// Output: 2
}

func Example_dtw() {
	c := comparator.NewNumeric[int](comparator.DefaultConfig())
	res, err := c.Compare([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}, comparator.DTW)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Distance)
	// Output: 0
}
