package naming

import (
	"testing"
)

func TestSanitizedSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Vendor spellings
		{"CR", "cr"},
		{"TIMER0", "timer0"},
		{"GPIO_A", "gpio_a"},
		{"RX_STATUS", "rx_status"},
		{"SysTick", "sys_tick"},
		{"HTTPStatus", "http_status"},

		// Leading digits
		{"9CR", "_9_cr"},
		{"32KHZ", "_32_khz"},

		// Keyword collisions
		{"GO", "go_"},
		{"RANGE", "range_"},
		{"FUNC", "func_"},
		{"TYPE", "type_"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"EN", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SanitizedSnake(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizedSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizedPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CR", "Cr"},
		{"TIMER0", "Timer0"},
		{"GPIO_A", "GpioA"},
		{"RX_STATUS", "RxStatus"},
		{"SysTick", "SysTick"},
		{"up", "Up"},
		{"I2C", "I2C"},

		// Leading digits stay exported
		{"9CR", "X9Cr"},
		{"32KHZ", "X32Khz"},

		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SanitizedPascal(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizedPascal(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Control register", "Control register"},
		{"Control  register", "Control register"},
		{"Control\n\t register", "Control register"},
		{"  leading and trailing  ", "leading and trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Respace(tt.input)
			if result != tt.expected {
				t.Errorf("Respace(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
