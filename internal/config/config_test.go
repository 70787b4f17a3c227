package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Analysis.InitialCapital != 1000 {
		t.Fatalf("unexpected initial capital %v", cfg.Analysis.InitialCapital)
	}
	if cfg.Analysis.TransactionCostRate != 0.001 {
		t.Fatalf("unexpected cost rate %v", cfg.Analysis.TransactionCostRate)
	}
	if cfg.Analysis.Series.OneYear != "GS1" || cfg.Analysis.Series.Benchmark != "SP500" {
		t.Fatalf("unexpected series ids %+v", cfg.Analysis.Series)
	}
	if cfg.Analysis.Original.Weights.FiveYear != 0.4 {
		t.Fatalf("unexpected original weights %+v", cfg.Analysis.Original.Weights)
	}
	if cfg.Analysis.Adjusted.Weights.OneYear != 0.5 {
		t.Fatalf("unexpected adjusted weights %+v", cfg.Analysis.Adjusted.Weights)
	}

	start, end, err := cfg.Analysis.Window()
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if start.Year() != 2018 || start.Month() != time.January {
		t.Fatalf("unexpected start %s", start)
	}
	if end.Year() != 2023 || end.Month() != time.December {
		t.Fatalf("unexpected end %s", end)
	}
}

func TestValidateRejectsInvertedWindow(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Analysis.StartDate = "2024-01-01"
	if err := cfg.Validate(); err == nil {
		t.Fatal("start after end should fail validation")
	}
}

func TestValidateRejectsNegativeWeights(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Analysis.Adjusted.Weights.TenYear = -0.2
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative weight should fail validation")
	}
}

func TestValidateRequiresAnOutput(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Output.CSVPath = ""
	cfg.Output.PNGPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("dropping both outputs should fail validation")
	}
}
