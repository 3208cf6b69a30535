package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Operation identifies one of the five recognized request keys.
type Operation string

const (
	OpFibonacci Operation = "fibonacci"
	OpPrime     Operation = "prime"
	OpLCM       Operation = "lcm"
	OpHCF       Operation = "hcf"
	OpAI        Operation = "AI"
)

// allowedOperations is the fixed key set, in the order reported to clients.
var allowedOperations = []Operation{OpFibonacci, OpPrime, OpLCM, OpHCF, OpAI}

// Command is a validated request: the operation plus its typed value.
// Exactly one of Count/Numbers/Question is meaningful, selected by Op.
type Command struct {
	Op       Operation
	Count    int64
	Numbers  []int64
	Question string
}

// ValidationError carries the HTTP status a failed validation maps to:
// 400 for structural body errors, 422 for value type/shape errors.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func badRequest(msg string) *ValidationError {
	return &ValidationError{Status: fiber.StatusBadRequest, Message: msg}
}

func unprocessable(msg string) *ValidationError {
	return &ValidationError{Status: fiber.StatusUnprocessableEntity, Message: msg}
}

// parseCommand validates a raw request body against the single-key contract
// and returns the typed command. Pure function of the body bytes.
func parseCommand(body []byte) (*Command, *ValidationError) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, badRequest("Request body is required")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, badRequest("Request body must be a JSON object")
	}

	if len(payload) == 0 {
		return nil, badRequest("Request body is required")
	}
	if len(payload) != 1 {
		return nil, badRequest("Request must contain exactly one key")
	}

	var key string
	var value any
	for k, v := range payload {
		key, value = k, v
	}

	switch Operation(key) {
	case OpFibonacci:
		n, ok := asInt64(value)
		if !ok {
			return nil, unprocessable("fibonacci requires an integer")
		}
		if n < 0 {
			return nil, unprocessable("fibonacci requires a non-negative integer")
		}
		return &Command{Op: OpFibonacci, Count: n}, nil

	case OpPrime, OpLCM, OpHCF:
		op := Operation(key)
		nums, ok := asInt64Slice(value)
		if !ok {
			return nil, unprocessable(key + " requires an array of integers")
		}
		// Empty input is valid for prime (empty output); lcm/hcf fold
		// over the elements and need at least one.
		if len(nums) == 0 && op != OpPrime {
			return nil, unprocessable(key + " requires a non-empty array")
		}
		return &Command{Op: op, Numbers: nums}, nil

	case OpAI:
		s, ok := value.(string)
		if !ok {
			return nil, unprocessable("AI requires a string")
		}
		if strings.TrimSpace(s) == "" {
			return nil, unprocessable("AI requires a non-empty string")
		}
		return &Command{Op: OpAI, Question: s}, nil
	}

	names := make([]string, len(allowedOperations))
	for i, op := range allowedOperations {
		names[i] = string(op)
	}
	return nil, badRequest("Invalid operation. Allowed: " + strings.Join(names, ", "))
}

// asInt64 reports whether v is a JSON integer and returns its value.
// Floats and strings are rejected.
func asInt64(v any) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// asInt64Slice reports whether v is a JSON array of integers.
func asInt64Slice(v any) ([]int64, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	nums := make([]int64, len(raw))
	for i, el := range raw {
		n, ok := asInt64(el)
		if !ok {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}
