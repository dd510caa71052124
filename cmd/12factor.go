package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/aws/s3"
	"github.com/dataops-works/snowload/config"
	c "github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms"
	"github.com/dataops-works/snowload/rdbms/shared"
)

// init will be called first due to the lexical order in which these functions are executed.
// This ensures the value of twelveFactorMode is set such that other init() functions that configure
// Cobra can do the job of processing all environment variables that would contain equivalent of the CLI flag
// structures used by Snowload's actions.
func init() {
	setupTwelveFactorMode()
}

// setupTwelveFactorMode will enable or disable 12 factor mode based on environment variable.
func setupTwelveFactorMode() {
	mode := os.Getenv(envVarTwelveFactorMode)
	if mode != "" { // if variable for 12factor mode is set and we should read env vars to determine actions...
		twelveFactorMode = true
		if strings.ToLower(mode) == "lambda" {
			lambdaMode = true
		}
	} else { // else 12factor mode should be off...
		twelveFactorMode = false // explicitly turn off this mode since tests may have turned it on while others require it off.
	}
}

const (
	envVarTwelveFactorMode      = c.EnvVarPrefix + "_" + "12FACTOR_MODE"
	envVarCommand               = c.EnvVarPrefix + "_" + "COMMAND"
	envVarTargetType            = c.EnvVarPrefix + "_" + "TARGET_TYPE" // snowflake|s3
	envVarTargetS3Region        = c.EnvVarPrefix + "_" + "TARGET_S3_REGION"
	envVarLogLevel              = c.EnvVarPrefix + "_" + "LOG_LEVEL"
	envVarStackDump             = c.EnvVarPrefix + "_" + "STACK_DUMP"
	defaultConnectionNameTarget = "TARGET"
)

var (
	twelveFactorMode bool // true if os env var envVarTwelveFactorMode is set
	lambdaMode       bool // true if os env var envVarTwelveFactorMode is set to "lambda"
	twelveFactorVars = map[string]string{
		envVarCommand: "",
		// Target
		envVarTargetType: "",
		helper.GetDsnEnvVarName(defaultConnectionNameTarget): "",
		envVarTargetS3Region: "",
		// Misc
		envVarLogLevel:  "",
		envVarStackDump: "",
	}
	twelveFactorVarsSensitive = map[string]string{ // used to flag some of the above variables as being sensitive.
		helper.GetDsnEnvVarName(defaultConnectionNameTarget): "",
	}
)

type twelveFactorAction struct {
	setupFunc  func(tgt string)
	runnerFunc func() error
}

var twelveFactorActions = map[string]twelveFactorAction{
	"load": {
		setupFunc: func(tgt string) {
			loadCfg.SourceString.ConnectionObject = tgt
		},
		runnerFunc: runLoad,
	},
	"setup": {
		setupFunc: func(tgt string) {
			setupCfg.SourceString.ConnectionObject = tgt
		},
		runnerFunc: runSetup,
	},
	"sample": {
		setupFunc: func(tgt string) {
			sampleCfg.SourceString.ConnectionObject = tgt
		},
		runnerFunc: runSample,
	},
	"preview": {
		setupFunc: func(tgt string) {}, // preview uses the bucket in the load parameters, not a saved connection.
		runnerFunc: runPreview,
	},
}

func getConnectionHandler() actions.ConnectionHandler {
	if twelveFactorMode {
		return &TwelveFactorConnections{}
	} else {
		return config.Connections
	}
}

func getConnectionLoader() actions.ConnectionLoader {
	if twelveFactorMode {
		return &TwelveFactorConnections{}
	} else {
		return config.Connections
	}
}

func getConnectionGetterSetter() actions.ConnectionGetterSetter {
	if twelveFactorMode {
		fmt.Printf("Error: connections cannot be configured when %v is set (supply them using %v instead)",
			envVarTwelveFactorMode,
			helper.GetDsnEnvVarName("<target-connection-name>"))
		os.Exit(1)
	}
	return config.Connections
}

func execute12FactorMode(acts map[string]twelveFactorAction) (err error) {
	logLevel := helper.ReadValueFromEnvWithDefault(envVarLogLevel, "warn") // fetch logLevel from env as this is not a persistent flag, given that we wanted different logging defaults per cobra action.
	log := logger.NewLogger("snowload", logLevel, stackDumpOnPanic)
	log.Info("Snowload is running in 12 Factor mode...")
	// Save values for the required variables.
	for k := range twelveFactorVars { // for each env variable that we need...
		// Save it and log it.
		twelveFactorVars[k] = os.Getenv(k)
		_, sensitive := twelveFactorVarsSensitive[k]
		if !sensitive { // if the env variable does not contain sensitive values...
			// Log the value.
			log.Debug(k, "=", twelveFactorVars[k])
		} else { // else output obfuscated value...
			log.Debug(k, "=", "<obfuscated>")
		}
	}
	// Use the command to fetch the appropriate action.
	action := twelveFactorVars[envVarCommand]
	a, ok := acts[action]
	if !ok {
		err = fmt.Errorf("invalid command (%v)", twelveFactorVars[envVarCommand])
		log.Error(err.Error())
		return
	}
	// Setup the connection string as Cobra would have with CLI args.
	a.setupFunc(defaultConnectionNameTarget)
	// Run the action.
	err = a.runnerFunc()
	if err != nil {
		log.Error("Error: ", err)
	}
	return err
}

type TwelveFactorConnections struct{} // implements interfaces in module, actions.

// GetConnectionType is for use when running in twelveFactorMode.
// It returns the value of envVarTargetType when the supplied connectionName is
// defaultConnectionNameTarget, which is the only connection available in this mode.
// It reads the global map twelveFactorVars[] which should have been setup using environment variables.
func (t *TwelveFactorConnections) GetConnectionType(connectionName string) (connectionType string, err error) {
	var ok bool
	if connectionName == defaultConnectionNameTarget {
		connectionType, ok = twelveFactorVars[envVarTargetType]
		if !ok {
			err = fmt.Errorf("missing value for %v", envVarTargetType)
		}
	} else {
		err = fmt.Errorf("unexpected connectionName %v while running in twelveFactorMode", connectionName)
	}
	return
}

// GetConnectionDetails fills a shared.ConnectionDetails with connection details fetched from
// env variables by using the connectionName to do the lookup.
// The connection type is picked up from the environment using variable envVarTargetType.
// If the DSN in the environment cannot be parsed for the type then an error is produced.
func (t *TwelveFactorConnections) GetConnectionDetails(connectionName string) (*shared.ConnectionDetails, error) {
	var kDsn, vDsn, vType string
	var err error
	var connectionDetails shared.ConnectionDetails
	connectionDetails.Data = make(map[string]string)
	connectionDetails.LogicalName = connectionName
	// Fetch connection info from the environment based on the connection name.
	kDsn = helper.GetDsnEnvVarName(connectionName)
	if err = helper.ReadValueFromEnv(kDsn, &vDsn); err != nil { // if we cannot find the DSN in the environment...
		return nil, fmt.Errorf("unable to find value for %v in the environment: %w", kDsn, err)
	}
	// Fetch connection type from the environment based on the connection name.
	vType, err = t.GetConnectionType(connectionName)
	if err != nil {
		return nil, err
	}
	connectionDetails.Type = vType
	// Parse the connection based on the type.
	switch vType { // switch on the connection type...
	case c.ConnectionTypeSnowflake: // if the user wants Snowflake connection details...
		_, err := rdbms.SnowflakeParseDSN(vDsn)
		if err != nil { // if the DSN was invalid...
			return nil, err
		}
		connectionDetails.Data = shared.DsnConnectionDetailsToMap(connectionDetails.Data, &shared.DsnConnectionDetails{Dsn: vDsn})
	case c.ConnectionTypeS3: // if the user wants S3 bucket details...
		// Fetch bucket region from the environment.
		var vRegion string
		kRegion := helper.GetRegionEnvVarName(connectionName)
		if err := helper.ReadValueFromEnv(kRegion, &vRegion); err != nil { // if we cannot find the bucket region in the environment...
			fmt.Printf("bucket region not found in environment variable %v\n", kRegion)
		}
		cn, err := s3.ParseDSN(vDsn, vRegion)
		if err != nil { // if the DSN was invalid...
			return nil, err
		}
		connectionDetails.Data = s3.AwsBucketToMap(connectionDetails.Data, cn)
	default:
		return nil, fmt.Errorf("unsupported connection type %q for DSN %q", vType, vDsn)
	}
	return &connectionDetails, nil
}

// LoadConnection loads the connection DSN from the environment, parses it based on the type
// set in the environment and returns the shared.ConnectionDetails.
// This mimics functionality whereby connection details are loaded from the connections config file,
// but reads info from the environment instead.
func (t *TwelveFactorConnections) LoadConnection(connectionName string) (shared.ConnectionDetails, error) {
	kDsn := helper.GetDsnEnvVarName(connectionName)
	var vDsn, vType string
	if err := helper.ReadValueFromEnv(kDsn, &vDsn); err != nil { // if we cannot find the DSN in the environment...
		return shared.ConnectionDetails{}, err
	}
	if err := helper.ReadValueFromEnv(envVarTargetType, &vType); err != nil { // if we can't read the target type from the environment...
		return shared.ConnectionDetails{}, err
	}
	vType = strings.TrimSpace(strings.ToLower(vType)) // sanitise vType.
	m := make(map[string]string)                      // map for generic connection data.
	switch vType {
	case c.ConnectionTypeSnowflake:
		cn, err := rdbms.SnowflakeParseDSN(vDsn)
		if err != nil {
			return shared.ConnectionDetails{}, err
		}
		// Rebuild the DSN again.
		dsn, err := rdbms.SnowflakeGetDSN(cn)
		if err != nil {
			return shared.ConnectionDetails{}, err
		}
		shared.DsnConnectionDetailsToMap(m, &shared.DsnConnectionDetails{Dsn: dsn})
	case c.ConnectionTypeS3:
		var vRegion string
		kRegion := helper.GetRegionEnvVarName(connectionName)
		if err := helper.ReadValueFromEnv(kRegion, &vRegion); err != nil { // if we cannot find the bucket region in the environment...
			fmt.Printf("bucket region not found in environment variable %v\n", kRegion)
		}
		cn, err := s3.ParseDSN(vDsn, vRegion)
		if err != nil {
			return shared.ConnectionDetails{}, err
		}
		m["name"] = cn.Name
		m["prefix"] = cn.Prefix
		m["region"] = cn.Region
	default:
		return shared.ConnectionDetails{}, fmt.Errorf("unsupported connection type %q for connection %q", vType, connectionName)
	}
	return shared.ConnectionDetails{
		Type:        vType,
		LogicalName: connectionName,
		Data:        m,
	}, nil
}
