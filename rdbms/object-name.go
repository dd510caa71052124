package rdbms

import (
	"fmt"
	"strings"
)

// ObjectName holds the fully qualified name of a database object.
// All parts are resolved from one set of load parameters so a provisioned
// object and the statements that reference it can never disagree.
type ObjectName struct {
	Database string `errorTxt:"database name" mandatory:"yes"`
	Schema   string `errorTxt:"schema name" mandatory:"yes"`
	Object   string `errorTxt:"object name" mandatory:"yes"`
}

func NewObjectName(database string, schema string, object string) ObjectName {
	return ObjectName{Database: database, Schema: schema, Object: object}
}

// String returns the dotted database.schema.object form.
// Empty leading parts are omitted so a bare object name still renders cleanly.
func (o ObjectName) String() string {
	parts := make([]string, 0, 3)
	if o.Database != "" {
		parts = append(parts, o.Database)
	}
	if o.Schema != "" {
		parts = append(parts, o.Schema)
	}
	parts = append(parts, o.Object)
	return strings.Join(parts, ".")
}

// SchemaName returns the dotted database.schema form for schema-level DDL.
func (o ObjectName) SchemaName() string {
	return fmt.Sprintf("%v.%v", o.Database, o.Schema)
}
