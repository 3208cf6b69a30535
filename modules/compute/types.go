package compute

// Default input bounds. Overridable via MAX_FIBONACCI_N and MAX_ARRAY_SIZE.
const (
	// DefaultMaxFibonacciN is chosen so every returned value fits in int64:
	// F(92) = 7540113804746346429 is the largest Fibonacci number below 2^63.
	DefaultMaxFibonacciN = 92

	// DefaultMaxArraySize bounds prime/lcm/hcf input length.
	DefaultMaxArraySize = 1000
)

// Config holds the compute module input bounds.
type Config struct {
	MaxFibonacciN int
	MaxArraySize  int
}

// DefaultConfig returns the default compute configuration.
func DefaultConfig() Config {
	return Config{
		MaxFibonacciN: DefaultMaxFibonacciN,
		MaxArraySize:  DefaultMaxArraySize,
	}
}

// FibonacciRequest asks for the first N Fibonacci numbers.
type FibonacciRequest struct {
	N int64 `json:"n"`
}

// FibonacciResponse carries the generated sequence.
type FibonacciResponse struct {
	Sequence []int64 `json:"sequence"`
	Error    string  `json:"error,omitempty"`
}

// FilterPrimesRequest asks for the prime subsequence of Numbers.
type FilterPrimesRequest struct {
	Numbers []int64 `json:"numbers"`
}

// FilterPrimesResponse carries the primes in their original order.
type FilterPrimesResponse struct {
	Primes []int64 `json:"primes"`
	Error  string  `json:"error,omitempty"`
}

// FoldRequest asks for the LCM or HCF of Numbers.
type FoldRequest struct {
	Numbers []int64 `json:"numbers"`
}

// FoldResponse carries a single folded result.
type FoldResponse struct {
	Result int64  `json:"result"`
	Error  string `json:"error,omitempty"`
}
