package validators

import "testing"

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"11987654321", true},
		{"(11) 98765-4321", true},
		{"+55 11 98765-4321", true},
		{"987654321", false},
		{"", false},
		{"11 9876x-4321", false},
		{"telefone", false},
	}

	for _, tt := range tests {
		if got := IsPhoneValid(tt.phone); got != tt.want {
			t.Errorf("IsPhoneValid(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
