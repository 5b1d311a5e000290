package profile

import "testing"

// The package must build and run with and without the pprof tag; Start and
// Stop are always callable.
func TestConfigStart_EmptyModeIsNoOp(t *testing.T) {
	var cfg Config = func() (string, string, bool) {
		return "", "", false
	}

	cfg.Start().Stop()
}

func TestConfigStart_ConfiguredMode(t *testing.T) {
	var cfg Config = func() (string, string, bool) {
		return "", "", false
	}

	cfg = WithMode("cpu")(cfg)
	cfg = WithPath(t.TempDir())(cfg)
	cfg = WithQuiet(true)(cfg)

	mode, path, quiet := cfg()
	if mode != "cpu" || path == "" || !quiet {
		t.Fatalf("cfg() = (%q, %q, %v), want configured values", mode, path, quiet)
	}

	cfg.Start().Stop()
}
