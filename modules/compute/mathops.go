package compute

// fibonacci returns the first n Fibonacci numbers starting 0, 1.
// n=0 yields an empty slice, n=1 yields [0]. The caller is responsible for
// bounding n so every value fits in int64.
func fibonacci(n int) []int64 {
	seq := make([]int64, 0, n)
	a, b := int64(0), int64(1)
	for i := 0; i < n; i++ {
		seq = append(seq, a)
		a, b = b, a+b
	}
	return seq
}

// isPrime reports whether n is a prime number. Values below 2 are never
// prime; even values above 2 are rejected before trial division.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// filterPrimes returns the primes of nums in their original order.
func filterPrimes(nums []int64) []int64 {
	primes := make([]int64, 0, len(nums))
	for _, n := range nums {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// gcd returns the greatest common divisor of a and b via the Euclidean
// algorithm.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// foldHCF returns the greatest common divisor of all elements.
// nums must be non-empty with positive elements only.
func foldHCF(nums []int64) int64 {
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = gcd(acc, n)
	}
	return acc
}

// foldLCM returns the least common multiple of all elements, folding
// lcm(a,b) = a/gcd(a,b)*b left to right. Returns ErrOverflow if an
// intermediate product leaves the int64 range. nums must be non-empty with
// positive elements only.
func foldLCM(nums []int64) (int64, error) {
	acc := nums[0]
	for _, n := range nums[1:] {
		q := acc / gcd(acc, n)
		res := q * n
		if res/n != q {
			return 0, ErrOverflow
		}
		acc = res
	}
	return acc, nil
}
