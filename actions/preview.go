package actions

import (
	"fmt"
	"regexp"

	"github.com/dataops-works/snowload/aws/s3"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
)

type PreviewConfig struct {
	// Load parameters
	Bundle *pipeline.Bundle
	// S3 access
	Region string `errorTxt:"AWS S3 region" mandatory:"yes"`
	// Generic
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
	// Lister is resolved from the Bundle S3 URL when nil. Tests inject their own.
	Lister s3.Lister
}

// RunPreview lists the staged files a COPY would pick up: the objects behind
// the Bundle's S3 URL whose keys match the COPY pattern.
func RunPreview(cfg *PreviewConfig) error {
	log := logger.NewLogger("snowload", cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	if err := cfg.Bundle.Validate(); err != nil {
		return err
	}
	re, err := regexp.Compile(cfg.Bundle.CopyPattern)
	if err != nil {
		return err
	}
	if cfg.Lister == nil { // if no client was injected...
		bucket, err := s3.ParseDSN(cfg.Bundle.S3Url, cfg.Region)
		if err != nil {
			return err
		}
		log.Debug("listing bucket ", bucket.Name, " with prefix ", bucket.Prefix)
		cfg.Lister = s3.NewBasicClient(bucket.Name, bucket.Region, bucket.Prefix)
	}
	keys, err := cfg.Lister.List("")
	if err != nil {
		return err
	}
	matched := filterKeysByPattern(keys, re)
	for _, k := range matched {
		fmt.Println(k)
	}
	log.Info("objects listed: ", len(keys), "; matching COPY pattern: ", len(matched))
	return nil
}

// filterKeysByPattern returns the keys a COPY with the given pattern would load.
func filterKeysByPattern(keys []string, re *regexp.Regexp) []string {
	retval := make([]string, 0, len(keys))
	for _, k := range keys {
		if re.MatchString(k) {
			retval = append(retval, k)
		}
	}
	return retval
}
