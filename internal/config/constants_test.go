package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if ConfigFileName == "" {
		t.Fatalf("ConfigFileName should not be empty")
	}
	if DefaultInputIndex == DefaultOutputIndex {
		t.Fatalf("default input and output units should differ")
	}
	if DefaultInputText != "1" {
		t.Fatalf("unexpected default input text %q", DefaultInputText)
	}
	if MaxValueLength <= 0 || MaxVisibleUnits <= 0 {
		t.Fatalf("display limits must be positive")
	}
}
