package constants

const (
	EnvVarPrefix = "SNOWLOAD" // prefix for environment variables in twelveFactorMode

	// Pipeline environment variables. These are unprefixed for compatibility
	// with deployments that predate the CLI wrapper.
	EnvVarDatabase    = "SF_DB"
	EnvVarSchema      = "SF_SCHEMA"
	EnvVarFileFormat  = "SF_FILE_FORMAT"
	EnvVarStage       = "SF_STAGE"
	EnvVarTable       = "SF_TABLE"
	EnvVarS3Url       = "S3_URL"
	EnvVarCopyPattern = "COPY_PATTERN"

	DefaultDatabase    = "DATA_PIPELINE_DB"
	DefaultSchema      = "CSV_FILES"
	DefaultFileFormat  = "csv_format"
	DefaultStage       = "aws_stage"
	DefaultTable       = "ORDERS"
	DefaultS3Url       = "s3://bucketsnowflakes3/"
	DefaultCopyPattern = ".*Order.*"

	// SampleRowLimit bounds the number of rows returned after a load.
	SampleRowLimit = 10

	ConnectionTypeSnowflake     = "snowflake"
	ConnectionTypeMockSnowflake = "mockSnowflake"
	ConnectionTypeS3            = "s3"
)
