package actions

import (
	"strings"
	"sync"
)

// ConnectionObject should be constructed with public property ConnectionObject set using format:
// <connection>[.<ignored>]
// Anything after the first period is dropped; only the connection name is used.
type ConnectionObject struct {
	ConnectionObject string `errorTxt:"<connection>" mandatory:"yes"`
	connection       string
	done             bool
	mu               sync.Mutex
}

func (c *ConnectionObject) GetConnectionName() string {
	c.splitConnectString()
	return c.connection
}

// splitConnectString extracts the connection name from the input string,
// dropping any trailing period-separated parts.
func (c *ConnectionObject) splitConnectString() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		i := strings.Index(c.ConnectionObject, ".")
		if i > 0 {
			c.connection = c.ConnectionObject[:i]
		} else {
			c.connection = c.ConnectionObject
		}
		if c.ConnectionObject != "" { // if struct was constructed with a valid ConnectionObject...
			c.done = true // flag that we're done doing the split.
		}
	}
	return
}
