package pipeline

import (
	"os"
	"testing"
)

func unsetBundleEnv() {
	for _, v := range []string{"SF_DB", "SF_SCHEMA", "SF_FILE_FORMAT", "SF_STAGE", "SF_TABLE", "S3_URL", "COPY_PATTERN"} {
		_ = os.Unsetenv(v)
	}
}

func TestNewBundleFromEnvDefaults(t *testing.T) {
	unsetBundleEnv()
	b := NewBundleFromEnv()
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	expected := "DATA_PIPELINE_DB.CSV_FILES.ORDERS"
	if got := b.TableName().String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	expected = "DATA_PIPELINE_DB.CSV_FILES.csv_format"
	if got := b.FileFormatName().String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	expected = "DATA_PIPELINE_DB.CSV_FILES.aws_stage"
	if got := b.StageName().String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
	if b.S3Url != "s3://bucketsnowflakes3/" {
		t.Fatal("unexpected default S3 URL: ", b.S3Url)
	}
	if b.CopyPattern != ".*Order.*" {
		t.Fatal("unexpected default COPY pattern: ", b.CopyPattern)
	}
}

func TestNewBundleFromEnvOverrides(t *testing.T) {
	unsetBundleEnv()
	_ = os.Setenv("SF_DB", "MY_DB")
	_ = os.Setenv("SF_TABLE", "MY_TABLE")
	defer unsetBundleEnv()
	b := NewBundleFromEnv()
	expected := "MY_DB.CSV_FILES.MY_TABLE"
	if got := b.TableName().String(); got != expected {
		t.Fatalf("expected %q; got %q", expected, got)
	}
}

func TestBundleValidate(t *testing.T) {
	// Test 1, missing mandatory fields are reported.
	b := &Bundle{}
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for an empty bundle")
	}
	// Test 2, a bad COPY pattern is rejected.
	b = testBundle()
	b.CopyPattern = "((("
	if err := b.Validate(); err == nil {
		t.Fatal("expected an error for an invalid COPY pattern")
	}
}
