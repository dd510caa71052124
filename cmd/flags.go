package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/config"
	"github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"db": cliFlag{name: "db", shortHand: "D",
		desc: "The Snowflake database to provision and load into (or set SF_DB)"},
	"schema": cliFlag{name: "schema", shortHand: "s",
		desc: "The Snowflake schema to provision and load into (or set SF_SCHEMA)"},
	"file-format": cliFlag{name: "file-format", shortHand: "f",
		desc: "The CSV file format name to provision (or set SF_FILE_FORMAT)"},
	"stage": cliFlag{name: "stage", shortHand: "g",
		desc: "The external Snowflake stage name to load data from (or set SF_STAGE)"},
	"table": cliFlag{name: "table", shortHand: "t",
		desc: "The target table name (or set SF_TABLE)"},
	"s3-url": cliFlag{name: "s3-url", shortHand: "u",
		desc: "AWS S3 bucket URL to be added to a new STAGE object. Use format: s3://<bucket>[/<prefix>/] \n" +
			"(or set S3_URL)"},
	"copy-pattern": cliFlag{name: "copy-pattern", shortHand: "X",
		desc: "The regular expression used by COPY INTO to filter staged file names \n" +
			"(or set COPY_PATTERN)"},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Specify \"csv\", \"json\" or \"yaml\" for the sample row output. Dry runs print the \n" +
			"statement plan as \"yaml\" or \"json\""},
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug\""},
	"dry-run": cliFlag{name: "dry-run", shortHand: "d",
		desc: "Print the SQL statements without executing them"},
	"print-header": cliFlag{name: "print-header", shortHand: "x",
		desc: "Print a header for CSV results"},
	"execute-ddl": cliFlag{name: "execute-ddl", shortHand: "e",
		desc: "Execute the generated DDL against the target connection (otherwise it's printed only)"},
	"connection-name": cliFlag{name: "connection-name", shortHand: "c",
		desc: "Connection name referred to by load actions"},
	"dsn": cliFlag{name: "dsn", shortHand: "d",
		desc: "Snowflake connect string to parse"},
	"force-connection": cliFlag{name: "force", shortHand: "f",
		desc: "Allow overwrite of existing connections"},
	"s3-dsn": cliFlag{name: "dsn", shortHand: "d",
		desc: "DSN of the form s3://<bucket name>/<prefix> (takes priority over individual flags)"},
	"s3-bucket": cliFlag{name: "s3-bucket", shortHand: "b",
		desc: "AWS S3 bucket name holding the staged CSV files \n" +
			"(set AWS environment variables for access)"},
	"s3-prefix": cliFlag{name: "s3-prefix", shortHand: "P",
		desc: "AWS S3 bucket prefix"},
	"s3-region": cliFlag{name: "s3-region", shortHand: "R",
		desc: "AWS S3 bucket region"},
	"port": cliFlag{name: "port", shortHand: "p",
		desc: "Port to listen on"},
	"mock": cliFlag{name: "mock", shortHand: "m", desc: "mock switch for testing"},
}

// addFlag add a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// When running in twelveFactorMode, the targetVar is populated using the value of environment variable for the supplied
// name, or if not set then the supplied default value is used.
// When NOT running in twelveFactorMode, the default value is fetched from config if it exists else the supplied
// defaultValue is applied.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue, config.Main.Get) // get the cliFlag details, with defaults taken from config or the supplied defaultValue
	desc := sw.desc + desc2                                 // create the full flag description for use below
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		if twelveFactorMode {
			*p = sw.val
		} else {
			c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
			// Signal that the flag was set so defaults take effect.
			if sw.val != "" { // if there is a value via config or default...
				mustSetFlag(c.Flags(), sw.name, sw.val)
			}
		}
	case *bool:
		if twelveFactorMode {
			// Convert any string value into True.
			if sw.val != "" {
				*p = true
			} else {
				*p = false
			}
		} else {
			defaultBool := false
			if strings.ToLower(sw.val) == "true" {
				defaultBool = true
			}
			c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
			// Signal that the flag was set so defaults take effect.
			if defaultBool {
				mustSetFlag(c.Flags(), sw.name, "true")
			} else {
				mustSetFlag(c.Flags(), sw.name, "false")
			}
		}
	case *int:
		defaultInt, err := strconv.Atoi(sw.val)
		if err != nil {
			fmt.Printf("the value for flag %q must be an integer: %v\n", sw.name, err)
			os.Exit(1)
		}
		if twelveFactorMode {
			*p = defaultInt
		} else {
			c.Flags().IntVarP(p, sw.name, sw.shortHand, defaultInt, desc)
			// Signal that the flag was set so defaults take effect.
			if sw.val != "" { // if there is a value via config or default...
				mustSetFlag(c.Flags(), sw.name, sw.val)
			}
		}
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required && !twelveFactorMode { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the value of name from the environment, when running in twelveFactorMode,
// else read the Main config file to find it.
// If a value cannot be found then use the supplied defaultValue in its place.
func (f *cliFlags) getCliFlag(name string, defaultValue string, fnGetConfig func(key string, out interface{}) error) cliFlag {
	s, ok := switches[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	if twelveFactorMode { // if we should read env vars...
		if err := helper.ReadValueFromEnv(flagNameToEnvVar(name), &s.val); err != nil { // if there's no value for the env var read into the switch val...
			// Apply the default.
			s.val = defaultValue
		}
	} else { // else check the config file or apply default...
		err := fnGetConfig(s.name, &s.val)
		if errors.As(err, &config.KeyNotFoundError{}) || s.val == "" { // if there was no key found...
			// Apply the default.
			s.val = defaultValue
		}
	}
	return s
}

// flagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix.
func flagNameToEnvVar(name string) string {
	return constants.EnvVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func mustSetFlag(f *pflag.FlagSet, name string, val string) {
	if err := f.Set(name, val); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// addFlagsBundle registers the load parameter flags against c, targeting the fields of b.
// The defaults supplied here are b's current values so that the pipeline environment
// variables (SF_DB etc.) still win when the flags are not given.
func addFlagsBundle(c *cobra.Command, b *pipeline.Bundle) {
	switches.addFlag(c, &b.Database, "db", b.Database, false, "")
	switches.addFlag(c, &b.Schema, "schema", b.Schema, false, "")
	switches.addFlag(c, &b.FileFormat, "file-format", b.FileFormat, false, "")
	switches.addFlag(c, &b.Stage, "stage", b.Stage, false, "")
	switches.addFlag(c, &b.Table, "table", b.Table, false, "")
	switches.addFlag(c, &b.S3Url, "s3-url", b.S3Url, false, "")
	switches.addFlag(c, &b.CopyPattern, "copy-pattern", b.CopyPattern, false, "")
}

// getConnectionArgsFunc returns a func that cobra uses to validate that we have 1 arg.
// It saves arg[0] as the src connection.
func getConnectionArgsFunc(src *actions.ConnectionObject, customErrMsg string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			if customErrMsg != "" {
				return errors.New(customErrMsg)
			} else {
				return errors.New("requires source <connection>")
			}
		}
		*src = actions.ConnectionObject{ConnectionObject: args[0]}
		return nil
	}
}

// getQueryFromArgsFunc concatenates all args into a string.
// Returns an error if there are no args.
func getQueryFromArgsFunc(src *actions.ConnectionObject, query *string, customErrMsg string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 { // if we are missing arguments...
			if customErrMsg != "" {
				return errors.New(customErrMsg)
			} else {
				return errors.New("please supply a connection and a SQL query")
			}
		}
		*src = actions.ConnectionObject{ConnectionObject: args[0]}
		// Build a new []string for the SQL; skip the connection in arg[0].
		q := make([]string, 0)
		for idx := 1; idx < len(args); idx++ { // for each piece of SQL...
			q = append(q, args[idx])
		}
		*query = strings.Join(q, " ")
		return nil
	}
}
