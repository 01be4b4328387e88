package flagx

import (
	"os"
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "postgres://x", "-a", ":8081"},
			allowed: []string{"-d"},
			want:    []string{"-d", "postgres://x"},
		},
		{
			name:    "equals form",
			args:    []string{"--dsn=postgres://x", "-a=:8081"},
			allowed: []string{"--dsn"},
			want:    []string{"--dsn=postgres://x"},
		},
		{
			name:    "value looking like flag is not consumed",
			args:    []string{"-a", "-d", "x"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "-d", "x"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", ":8081"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FilterArgs() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnvFileFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"bookstore", "-e", "dev.env", "-a", ":8081"}
	if got := EnvFileFlags(); got != "dev.env" {
		t.Fatalf("EnvFileFlags() = %q, want %q", got, "dev.env")
	}

	os.Args = []string{"bookstore", "-a", ":8081"}
	if got := EnvFileFlags(); got != "" {
		t.Fatalf("EnvFileFlags() = %q, want empty", got)
	}
}
