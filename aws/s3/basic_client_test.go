package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// fakeS3API serves canned ListObjects pages and records the prefixes requested.
// When truncated is set it overrides the IsTruncated flag per page (a nil entry
// leaves the flag unset, as seen from some S3-compatible endpoints).
type fakeS3API struct {
	s3iface.S3API
	pages     [][]string
	truncated []*bool
	pageIdx   int
	prefixes  []string
}

func (f *fakeS3API) ListObjects(in *awss3.ListObjectsInput) (*awss3.ListObjectsOutput, error) {
	f.prefixes = append(f.prefixes, *in.Prefix)
	page := f.pages[f.pageIdx]
	contents := make([]*awss3.Object, 0, len(page))
	for _, k := range page {
		contents = append(contents, &awss3.Object{Key: aws.String(k)})
	}
	out := &awss3.ListObjectsOutput{Contents: contents}
	if f.truncated != nil {
		out.IsTruncated = f.truncated[f.pageIdx]
	} else {
		out.IsTruncated = aws.Bool(f.pageIdx+1 < len(f.pages))
	}
	f.pageIdx++
	return out, nil
}

func TestBasicClientList(t *testing.T) {
	// Test 1, keys are collected across truncated pages.
	api := &fakeS3API{pages: [][]string{
		{"Order-1.csv", "Order-2.csv"},
		{"Order-3.csv"},
	}}
	c := newBasicClientWithAPI("bucketsnowflakes3", "eu-west-1", "", api)
	keys, err := c.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 3 {
		t.Fatal("expected 3 keys; got ", len(keys))
	}
	if keys[2] != "Order-3.csv" {
		t.Fatal("unexpected last key: ", keys[2])
	}
	// Test 2, the configured prefix is applied to requests.
	api = &fakeS3API{pages: [][]string{{}}}
	c = newBasicClientWithAPI("bucketsnowflakes3", "eu-west-1", "incoming/", api)
	if _, err := c.List("orders"); err != nil {
		t.Fatal(err)
	}
	if api.prefixes[0] != "incoming/orders" {
		t.Fatal("unexpected request prefix: ", api.prefixes[0])
	}
	// Test 3, a response without the IsTruncated flag ends the listing cleanly.
	api = &fakeS3API{
		pages:     [][]string{{"Order-1.csv"}},
		truncated: []*bool{nil},
	}
	c = newBasicClientWithAPI("bucketsnowflakes3", "eu-west-1", "", api)
	keys, err = c.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || api.pageIdx != 1 {
		t.Fatalf("expected a single page with 1 key; got %v keys over %v pages", len(keys), api.pageIdx)
	}
	// Test 4, a truncated response with no contents cannot advance the marker so the listing must stop.
	api = &fakeS3API{
		pages:     [][]string{{}, {"Order-1.csv"}},
		truncated: []*bool{aws.Bool(true), aws.Bool(false)},
	}
	c = newBasicClientWithAPI("bucketsnowflakes3", "eu-west-1", "", api)
	keys, err = c.List("")
	if err != nil {
		t.Fatal(err)
	}
	if api.pageIdx != 1 {
		t.Fatal("expected the listing to stop after the empty page; pages fetched: ", api.pageIdx)
	}
	if len(keys) != 0 {
		t.Fatal("expected no keys from the empty page; got ", len(keys))
	}
}

func TestParseDSN(t *testing.T) {
	// Test 1, full URL form.
	b, err := ParseDSN("s3://bucketsnowflakes3/incoming", "eu-west-1")
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "bucketsnowflakes3" || b.Prefix != "incoming" || b.Region != "eu-west-1" {
		t.Fatalf("unexpected bucket details: %+v", b)
	}
	// Test 2, missing region is an error.
	if _, err := ParseDSN("s3://bucketsnowflakes3/", ""); err == nil {
		t.Fatal("expected an error for missing region")
	}
	// Test 3, wrong scheme is an error.
	if _, err := ParseDSN("http://bucketsnowflakes3/", "eu-west-1"); err == nil {
		t.Fatal("expected an error for a non-S3 scheme")
	}
}
