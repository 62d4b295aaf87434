package par

import "testing"

func TestSerialEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "unset", value: "", want: false},
		{name: "one", value: "1", want: true},
		{name: "true", value: "true", want: true},
		{name: "zero", value: "0", want: false},
		{name: "false", value: "false", want: false},
		{name: "junk", value: "yes please", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STRIDE_SERIAL", tt.value)
			if got := SerialEnv(); got != tt.want {
				t.Errorf("SerialEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDefaultShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same engine every call")
	}
}
