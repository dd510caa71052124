package rdbms

import (
	"fmt"

	"github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms/shared"
)

// OpenDbConnection opens a database connection using the supplied ConnectionDetails struct in c.
func OpenDbConnection(log logger.Logger, c shared.ConnectionDetails) (db shared.Connector, err error) {
	log.Debug("opening connection type ", c.Type, " with logicalName ", c.LogicalName) // don't log password details in c.Data!
	switch c.Type {
	case constants.ConnectionTypeSnowflake:
		db, err = newSnowflakeConnection(log, shared.GetDsnConnectionDetails(&c))
	case constants.ConnectionTypeMockSnowflake:
		db, _ = shared.NewMockConnection(log, constants.ConnectionTypeSnowflake)
	default: // else we have an unsupported database...
		err = fmt.Errorf("unsupported database type, %q", c.Type)
	}
	return
}
