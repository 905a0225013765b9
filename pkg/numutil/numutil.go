// Package numutil provides small integer utilities. It is the code
// under test for most of the example suites in this repository.
package numutil

import (
	"fmt"
	"strconv"
)

// VerifyOdd returns an error if x is not odd.
func VerifyOdd(x int) error {
	if !IsOdd(x) {
		return fmt.Errorf("%d is not odd", x)
	}
	return nil
}

// IsOdd reports whether x is odd.
func IsOdd(x int) bool {
	return !IsEven(x)
}

// IsEven reports whether x is even.
func IsEven(x int) bool {
	return Divides(2, x)
}

// Divides reports whether a divides b with no remainder.
// a must be non-zero.
func Divides(a, b int) bool {
	return b%a == 0
}

// Factorial returns n!. For n < 1 it returns 1.
// Results overflow int for n > 20.
func Factorial(n int) int {
	result := 1
	for n > 0 {
		result *= n
		n--
	}
	return result
}

// SumTo returns the sum of the integers from 1 to n inclusive.
// n must be non-negative; SumTo(0) is 0.
func SumTo(n int) int {
	return n * (n + 1) / 2
}

// IsBalanced reports whether the digit sums of the two halves of n's
// decimal representation are equal. The middle digit of an odd-length
// number belongs to neither half. n must be non-negative.
func IsBalanced(n int) bool {
	lhs, rhs := splitAtMiddle(strconv.Itoa(n))
	return digitSum(lhs) == digitSum(rhs)
}

// IsPalindrome reports whether n's decimal representation reads the
// same forwards and backwards. n must be non-negative.
func IsPalindrome(n int) bool {
	s := strconv.Itoa(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// splitAtMiddle splits s into two halves, excluding the middle byte
// when the length is odd.
func splitAtMiddle(s string) (string, string) {
	mid := len(s) / 2
	start := mid
	if len(s)%2 == 1 {
		start++
	}
	return s[:mid], s[start:]
}

// digitSum returns the sum of the decimal digits in s.
func digitSum(s string) int {
	total := 0
	for _, r := range s {
		total += int(r - '0')
	}
	return total
}
