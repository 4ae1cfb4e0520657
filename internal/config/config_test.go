package config

import (
	"testing"

	"github.com/water-run/treepp/internal/serialize"
)

func TestValidateDefaultsToStreaming(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Streaming {
		t.Errorf("expected Streaming, got %v", cfg.Mode())
	}
}

func TestValidateHumanReadableImpliesSize(t *testing.T) {
	cfg := Defaults()
	cfg.HumanReadable = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if !cfg.ShowSize {
		t.Error("expected --human-readable to imply --size")
	}
}

func TestValidateSilentWithoutOutputIsConfigError(t *testing.T) {
	cfg := Defaults()
	cfg.Silent = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected --silent without --output to fail validation")
	}
}

func TestValidateForcesBatchOnDiskUsage(t *testing.T) {
	cfg := Defaults()
	cfg.DiskUsage = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Batch {
		t.Error("expected --disk-usage to force batch mode")
	}
}

func TestValidateForcesBatchOnPrune(t *testing.T) {
	cfg := Defaults()
	cfg.Prune = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Batch {
		t.Error("expected --prune to force batch mode")
	}
}

func TestValidateForcesBatchOnExplicitThreadCount(t *testing.T) {
	cfg := Defaults()
	cfg.Threads = 4
	cfg.ThreadsIsSet = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Batch {
		t.Error("expected explicit --thread to force batch mode")
	}
}

func TestValidateForcesBatchOnNonTXTOutput(t *testing.T) {
	cfg := Defaults()
	cfg.Output = "tree.json"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Batch {
		t.Error("expected a non-txt --output to force batch mode")
	}
	if cfg.OutputFormat() != serialize.FormatJSON {
		t.Errorf("expected FormatJSON, got %v", cfg.OutputFormat())
	}
}

func TestValidateKeepsStreamingForTXTOutput(t *testing.T) {
	cfg := Defaults()
	cfg.Output = "tree.txt"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != Streaming {
		t.Error("expected a .txt --output to leave streaming mode untouched")
	}
}

func TestValidateRejectsUnsupportedOutputExtension(t *testing.T) {
	cfg := Defaults()
	cfg.Output = "tree.exe"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an unsupported --output extension to fail validation")
	}
}

func TestValidateRejectsInvalidExcludePattern(t *testing.T) {
	cfg := Defaults()
	cfg.ExcludePatterns = []string{"foo[bar"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an invalid --exclude pattern to fail validation")
	}
}

func TestValidateRejectsInvalidIncludePattern(t *testing.T) {
	cfg := Defaults()
	cfg.IncludePatterns = []string{"foo[bar"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an invalid --include pattern to fail validation")
	}
}

func TestValidateRejectsNegativeThreadCount(t *testing.T) {
	cfg := Defaults()
	cfg.Threads = -1
	cfg.ThreadsIsSet = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected a non-positive --thread to fail validation")
	}
}

func TestValidateRejectsLevelBelowUnlimited(t *testing.T) {
	cfg := Defaults()
	cfg.Level = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected --level below -1 to fail validation")
	}
}

func TestDisplayRootDefaultsToDriveDot(t *testing.T) {
	cfg := Defaults()
	if got := cfg.DisplayRoot("/home/user/project"); got != "X:." {
		t.Errorf("got %q", got)
	}
}

func TestDisplayRootUppercasesExplicitPath(t *testing.T) {
	cfg := Defaults()
	cfg.RootPathExplicit = true
	if got := cfg.DisplayRoot("/home/user/project"); got != "/HOME/USER/PROJECT" {
		t.Errorf("got %q", got)
	}
}
