package numutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOdd(t *testing.T) {
	t.Run("returns an error for even numbers", func(t *testing.T) {
		err := VerifyOdd(2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not odd")
	})

	t.Run("returns nil for odd numbers", func(t *testing.T) {
		assert.NoError(t, VerifyOdd(1))
	})
}

func TestParity(t *testing.T) {
	tests := []struct {
		n    int
		odd  bool
		even bool
	}{
		{0, false, true},
		{1, true, false},
		{2, false, true},
		{7, true, false},
		{100, false, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.odd, IsOdd(tt.n))
			assert.Equal(t, tt.even, IsEven(tt.n))
		})
	}
}

func TestDivides(t *testing.T) {
	tests := []struct {
		name string
		a    int
		b    int
		want bool
	}{
		{"3 divides 9", 3, 9, true},
		{"3 does not divide 10", 3, 10, false},
		{"everything divides zero", 5, 0, true},
		{"1 divides everything", 1, 17, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Divides(tt.a, tt.b))
		})
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, Factorial(tt.n))
		})
	}
}

func TestFactorial_NegativeInput(t *testing.T) {
	assert.Equal(t, 1, Factorial(-3))
}

func TestSumTo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{5, 15},
		{100, 5050},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, SumTo(tt.n))
		})
	}
}

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1234, false},
		{1212, true},
		{13131, true}, // middle digit is ignored
		{12921, true},
		{19, false},
		{7, true}, // single digit has two empty halves
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, IsBalanced(tt.n))
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{11, true},
		{121, true},
		{1221, true},
		{1231, false},
		{10, false},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, IsPalindrome(tt.n))
		})
	}
}

// A palindrome's second half must mirror the first, not merely carry
// the same digits in the same order.
func TestIsPalindrome_HalvesMustMirror(t *testing.T) {
	assert.True(t, IsPalindrome(1221), "1221 reads the same backwards")
	assert.False(t, IsPalindrome(1212), "equal halves are not enough")
	assert.True(t, IsPalindrome(34543), "odd length mirrors around the middle")
}

func TestSplitAtMiddle(t *testing.T) {
	tests := []struct {
		s       string
		wantLHS string
		wantRHS string
	}{
		{"1234", "12", "34"},
		{"12345", "12", "45"},
		{"1", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			lhs, rhs := splitAtMiddle(tt.s)
			assert.Equal(t, tt.wantLHS, lhs)
			assert.Equal(t, tt.wantRHS, rhs)
		})
	}
}

func FuzzIsPalindrome(f *testing.F) {
	f.Add(0)
	f.Add(121)
	f.Add(1231)

	f.Fuzz(func(t *testing.T, n int) {
		if n < 0 {
			t.Skip("negative input out of contract")
		}

		s := strconv.Itoa(n)
		reversed := []byte(s)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}

		assert.Equal(t, s == string(reversed), IsPalindrome(n))
	})
}

func BenchmarkIsBalanced(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsBalanced(1234567890)
	}
}

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Factorial(20)
	}
}
