package config

import (
	"fmt"

	"github.com/dataops-works/snowload/rdbms/shared"
)

// GetConnectionType returns the connection type by un-marshalling the connection into
// a shared.ConnectionDetails struct - so connections need to match that structure for now.
// Return an error if the key doesn't exist.
func (c *File) GetConnectionType(connectionName string) (connectionType string, err error) {
	genericConn := &shared.ConnectionDetails{}
	if err := c.Get(connectionName, genericConn); err != nil {
		return "", err
	}
	if genericConn.Type == "" {
		return "", fmt.Errorf("unknown type for connection %q", connectionName)
	}
	return genericConn.Type, nil
}

// GetConnectionDetails fetches generic connection details from the File c using the connectionName to do the lookup.
// If the connection is not found then an error is produced.
func (c *File) GetConnectionDetails(connectionName string) (*shared.ConnectionDetails, error) {
	// Load generic connection details from file.
	genericConn := &shared.ConnectionDetails{}
	if err := c.Get(connectionName, genericConn); err != nil {
		return nil, err
	}
	if genericConn.Type == "" { // if the connection was not found...
		return nil, fmt.Errorf("connection %q is not configured: use 'config' command to create it", connectionName)
	}
	return genericConn, nil
}

func (c *File) LoadConnection(connectionName string) (shared.ConnectionDetails, error) {
	d := shared.ConnectionDetails{}
	err := c.Get(connectionName, &d)
	if err != nil { // if there was an error fetching the connection from config...
		return d, err
	}
	return d, nil
}
