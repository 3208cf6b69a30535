package api

import (
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseCommand_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"whitespace body", "  \n"},
		{"not json", "{not json"},
		{"not an object", `[1,2,3]`},
		{"scalar body", `42`},
		{"empty object", `{}`},
		{"two keys", `{"fibonacci": 5, "prime": [2]}`},
		{"unrecognized key", `{"factorial": 5}`},
		{"case-sensitive key", `{"ai": "question"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := parseCommand([]byte(tt.body))
			if verr == nil {
				t.Fatal("parseCommand() expected error, got nil")
			}
			if verr.Status != fiber.StatusBadRequest {
				t.Errorf("parseCommand() status = %d, want %d", verr.Status, fiber.StatusBadRequest)
			}
		})
	}
}

func TestParseCommand_ValueErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"fibonacci string", `{"fibonacci": "x"}`},
		{"fibonacci float", `{"fibonacci": 3.5}`},
		{"fibonacci negative", `{"fibonacci": -1}`},
		{"fibonacci null", `{"fibonacci": null}`},
		{"prime not array", `{"prime": 7}`},
		{"prime mixed types", `{"prime": [2, "three"]}`},
		{"prime float element", `{"prime": [2, 3.5]}`},
		{"lcm empty array", `{"lcm": []}`},
		{"hcf empty array", `{"hcf": []}`},
		{"AI number", `{"AI": 42}`},
		{"AI empty string", `{"AI": "  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := parseCommand([]byte(tt.body))
			if verr == nil {
				t.Fatal("parseCommand() expected error, got nil")
			}
			if verr.Status != fiber.StatusUnprocessableEntity {
				t.Errorf("parseCommand() status = %d, want %d", verr.Status, fiber.StatusUnprocessableEntity)
			}
		})
	}
}

func TestParseCommand_Valid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Command
	}{
		{
			name: "fibonacci",
			body: `{"fibonacci": 7}`,
			want: Command{Op: OpFibonacci, Count: 7},
		},
		{
			name: "fibonacci zero",
			body: `{"fibonacci": 0}`,
			want: Command{Op: OpFibonacci, Count: 0},
		},
		{
			name: "prime",
			body: `{"prime": [2, 4, 7]}`,
			want: Command{Op: OpPrime, Numbers: []int64{2, 4, 7}},
		},
		{
			name: "prime empty array",
			body: `{"prime": []}`,
			want: Command{Op: OpPrime, Numbers: []int64{}},
		},
		{
			name: "prime negative elements",
			body: `{"prime": [-3, 5]}`,
			want: Command{Op: OpPrime, Numbers: []int64{-3, 5}},
		},
		{
			name: "lcm",
			body: `{"lcm": [4, 6, 8]}`,
			want: Command{Op: OpLCM, Numbers: []int64{4, 6, 8}},
		},
		{
			name: "hcf",
			body: `{"hcf": [12, 18, 24]}`,
			want: Command{Op: OpHCF, Numbers: []int64{12, 18, 24}},
		},
		{
			name: "AI",
			body: `{"AI": "What is the capital of France?"}`,
			want: Command{Op: OpAI, Question: "What is the capital of France?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, verr := parseCommand([]byte(tt.body))
			if verr != nil {
				t.Fatalf("parseCommand() error = %v", verr)
			}
			if !reflect.DeepEqual(*cmd, tt.want) {
				t.Errorf("parseCommand() = %+v, want %+v", *cmd, tt.want)
			}
		})
	}
}
