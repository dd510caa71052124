package rdbms

import (
	"testing"
)

func TestObjectName(t *testing.T) {
	// Test 1, fully qualified name.
	o := NewObjectName("DATA_PIPELINE_DB", "CSV_FILES", "ORDERS")
	expected := "DATA_PIPELINE_DB.CSV_FILES.ORDERS"
	if got := o.String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	// Test 2, schema-level name.
	expected = "DATA_PIPELINE_DB.CSV_FILES"
	if got := o.SchemaName(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	// Test 3, bare object name renders without leading dots.
	o = ObjectName{Object: "ORDERS"}
	expected = "ORDERS"
	if got := o.String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
}
