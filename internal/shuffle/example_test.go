package shuffle_test

import (
	"context"
	"fmt"

	"github.com/conneroisu/shuffle/internal/shuffle"
)

func ExampleIsValidShuffle() {
	fmt.Println(shuffle.IsValidShuffle("TOURNAMENT", "DINNER", "TDINOURNANMENTER", nil))
	fmt.Println(shuffle.IsValidShuffle("foo", "bar", "fbxoro", nil))
	// Output:
	// true
	// false
}

func ExampleValidator_Validate() {
	v := shuffle.New()
	res := v.Validate(context.Background(), "TOURNAMENT", "DINNER", "TDXNOURNANMENTER")
	fmt.Println(res.Valid, res.Reason, res.Index, string(res.Char))
	// Output: false mismatch 2 x
}

func ExampleIsInterleaving() {
	// The greedy validator rejects this shuffle; the exact check accepts it.
	fmt.Println(shuffle.IsValidShuffle("ba", "baab", "bababa", nil))
	fmt.Println(shuffle.IsInterleaving("ba", "baab", "bababa"))
	// Output:
	// false
	// true
}
