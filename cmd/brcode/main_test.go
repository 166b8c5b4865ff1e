package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBuilderFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "static with amount",
			args: []string{"-key", "chave@pix.com", "-name", "LOJA TESTE", "-city", "SAO PAULO", "-amount", "1050"},
			want: "00020126350014BR.GOV.BCB.PIX0113chave@pix.com520400005303986540510.505802BR5910LOJA TESTE6009SAO PAULO6304916D",
		},
		{
			name: "dynamic with url",
			args: []string{"-dynamic", "-url", "https://pix.example.com/qr/v2/abc123", "-name", "LOJA TESTE", "-city", "SAO PAULO"},
			want: "00020126500014BR.GOV.BCB.PIX2528pix.example.com/qr/v2/abc1235204000053039865802BR5910LOJA TESTE6009SAO PAULO62070503***6304627C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			got, err := opts.builder().Payload()
			if err != nil {
				t.Fatalf("Payload() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Payload() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFlagsRejectsExtraArgs(t *testing.T) {
	if _, err := parseFlags([]string{"-name", "LOJA", "sobra"}); err == nil {
		t.Error("parseFlags() expected error for positional argument")
	}
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")

	if err := run([]string{"-key", "chave@pix.com", "-name", "LOJA", "-city", "RIO", "-png", path, "-size", "128"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("PNG not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("width = %d, want 128", img.Bounds().Dx())
	}
}

func TestRunConfigurationError(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	if err := run([]string{"-name", string(long)}); err == nil {
		t.Error("run() expected error for merchant name with 100 characters")
	}
}
