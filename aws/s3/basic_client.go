package s3

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

func NewBasicClient(bucket, region, prefix string) BasicClient {
	awsConfig := aws.NewConfig()
	awsConfig.Region = aws.String(region)
	sess := session.Must(session.NewSession(awsConfig))
	api := s3.New(sess)

	return &basicClient{
		bucket: bucket,
		region: region,
		prefix: prefix,
		api:    api,
	}
}

func newBasicClientWithAPI(bucket, region, prefix string, api s3iface.S3API) BasicClient {
	return &basicClient{
		bucket: bucket,
		region: region,
		prefix: prefix,
		api:    api,
	}
}

type basicClient struct {
	region string
	bucket string
	prefix string
	api    s3iface.S3API
}

func (s *basicClient) List(key string) (keys []string, err error) {
	keys = make([]string, 0, 1000)
	lastKey := ""
	for {
		params := &s3.ListObjectsInput{
			Bucket:  aws.String(s.bucket),
			Marker:  aws.String(lastKey),
			MaxKeys: aws.Int64(1000),
			Prefix:  aws.String(s.getKeyWithPrefix(key)),
		}
		resp, err := s.api.ListObjects(params)
		if err != nil {
			return nil, err
		}

		for _, v := range resp.Contents {
			keys = append(keys, aws.StringValue(v.Key))
		}
		// An empty page cannot advance the marker, so stop rather than loop forever.
		if !aws.BoolValue(resp.IsTruncated) || len(resp.Contents) == 0 {
			break
		}
		lastKey = aws.StringValue(resp.Contents[len(resp.Contents)-1].Key)
	}
	return
}

func (s *basicClient) getKeyWithPrefix(key string) string {
	if s.prefix != "" {
		return strings.TrimRight(s.prefix, "/") + "/" + key // ensure trailing slash after prefix.
	} else {
		return key
	}
}
