package helper

import (
	"os"
	"testing"
)

func TestInterfaceToString(t *testing.T) {
	// Test 1
	input := []interface{}{"abc", float64(12), float64(12.5), []uint8("xyz"), nil}
	got := InterfaceToString(input)
	expected := []string{"abc", "12", "12.5", "xyz", ""}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %q; got %q", expected[i], got[i])
		}
	}
}

func TestReadValueFromEnvWithDefault(t *testing.T) {
	// Test 1, env var unset applies the default.
	_ = os.Unsetenv("SNOWLOAD_TEST_VALUE")
	got := ReadValueFromEnvWithDefault("SNOWLOAD_TEST_VALUE", "defaultValue")
	if got != "defaultValue" {
		t.Fatalf("expected default value; got %q", got)
	}
	// Test 2, env var set wins.
	_ = os.Setenv("SNOWLOAD_TEST_VALUE", "realValue")
	defer os.Unsetenv("SNOWLOAD_TEST_VALUE")
	got = ReadValueFromEnvWithDefault("SNOWLOAD_TEST_VALUE", "defaultValue")
	if got != "realValue" {
		t.Fatalf("expected real value; got %q", got)
	}
}

type testConfig struct {
	FieldA string `errorTxt:"field A" mandatory:"yes"`
	FieldB string `errorTxt:"field B"`
}

func TestValidateStructIsPopulated(t *testing.T) {
	// Test 1, missing mandatory field produces an error naming it.
	cfg := testConfig{}
	err := ValidateStructIsPopulated(&cfg)
	if err == nil {
		t.Fatal("expected an error for unset mandatory field")
	}
	expected := "please supply values for field A"
	if err.Error() != expected {
		t.Fatalf("expected %q; got %q", expected, err.Error())
	}
	// Test 2, populated struct validates clean.
	cfg.FieldA = "set"
	if err := ValidateStructIsPopulated(&cfg); err != nil {
		t.Fatal(err)
	}
}
