package config

import (
	"os"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"SUNICON_SIZE", "SUNICON_FORMAT", "SUNICON_ALPHA", "SUNICON_FILTER", "SUNICON_ICON", "SUNICON_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	e, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Env{Size: 256, Format: "png", Alpha: 255, Filter: "none", Icon: "sun", LogLevel: "info"}
	if e != want {
		t.Errorf("LoadEnv() = %+v, want %+v", e, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUNICON_SIZE", "64")
	t.Setenv("SUNICON_FORMAT", "svg")
	t.Setenv("SUNICON_ALPHA", "128")
	e, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.Size != 64 || e.Format != "svg" || e.Alpha != 128 {
		t.Errorf("LoadEnv() = %+v", e)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("SUNICON_SIZE", "big")
	if _, err := LoadEnv(); err == nil {
		t.Error("expected error for non-numeric SUNICON_SIZE")
	}
}
