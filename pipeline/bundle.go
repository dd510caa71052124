package pipeline

import (
	"fmt"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/rdbms"
)

// Bundle holds the warehouse object names and load parameters for one pipeline run.
// Fully qualified object names are always derived from the same Bundle so the
// provisioning DDL and the statements that reference those objects cannot disagree.
type Bundle struct {
	Database    string `json:"database" yaml:"database" errorTxt:"database name" mandatory:"yes"`
	Schema      string `json:"schema" yaml:"schema" errorTxt:"schema name" mandatory:"yes"`
	FileFormat  string `json:"fileFormat" yaml:"fileFormat" errorTxt:"file format name" mandatory:"yes"`
	Stage       string `json:"stage" yaml:"stage" errorTxt:"stage name" mandatory:"yes"`
	Table       string `json:"table" yaml:"table" errorTxt:"table name" mandatory:"yes"`
	S3Url       string `json:"s3Url" yaml:"s3Url" errorTxt:"S3 URL for the external stage" mandatory:"yes"`
	CopyPattern string `json:"copyPattern" yaml:"copyPattern" errorTxt:"file name pattern for COPY" mandatory:"yes"`
}

// NewBundleFromEnv builds a Bundle from the environment, applying the
// well-known defaults for anything that is not set.
// A .env file in the working directory is loaded first if one exists.
func NewBundleFromEnv() *Bundle {
	_ = godotenv.Load() // missing .env files are fine; real env vars win anyway.
	return &Bundle{
		Database:    helper.ReadValueFromEnvWithDefault(constants.EnvVarDatabase, constants.DefaultDatabase),
		Schema:      helper.ReadValueFromEnvWithDefault(constants.EnvVarSchema, constants.DefaultSchema),
		FileFormat:  helper.ReadValueFromEnvWithDefault(constants.EnvVarFileFormat, constants.DefaultFileFormat),
		Stage:       helper.ReadValueFromEnvWithDefault(constants.EnvVarStage, constants.DefaultStage),
		Table:       helper.ReadValueFromEnvWithDefault(constants.EnvVarTable, constants.DefaultTable),
		S3Url:       helper.ReadValueFromEnvWithDefault(constants.EnvVarS3Url, constants.DefaultS3Url),
		CopyPattern: helper.ReadValueFromEnvWithDefault(constants.EnvVarCopyPattern, constants.DefaultCopyPattern),
	}
}

// Validate checks that all mandatory fields are populated and that the COPY
// pattern is a usable regular expression.
func (b *Bundle) Validate() error {
	if err := helper.ValidateStructIsPopulated(b); err != nil {
		return err
	}
	if _, err := regexp.Compile(b.CopyPattern); err != nil {
		return fmt.Errorf("invalid COPY file name pattern %q: %v", b.CopyPattern, err)
	}
	return nil
}

// FileFormatName returns the fully qualified file format name.
func (b *Bundle) FileFormatName() rdbms.ObjectName {
	return rdbms.NewObjectName(b.Database, b.Schema, b.FileFormat)
}

// StageName returns the fully qualified stage name.
func (b *Bundle) StageName() rdbms.ObjectName {
	return rdbms.NewObjectName(b.Database, b.Schema, b.Stage)
}

// TableName returns the fully qualified table name.
func (b *Bundle) TableName() rdbms.ObjectName {
	return rdbms.NewObjectName(b.Database, b.Schema, b.Table)
}
