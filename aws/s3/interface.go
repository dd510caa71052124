package s3

// BasicClient covers the S3 operations used by the stage preview.
type BasicClient interface {
	Lister
}

type Lister interface {
	List(key string) (keys []string, err error)
}
