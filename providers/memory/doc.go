// Package memory defines the conversation history store consumed by agent
// loops. The inmemory subpackage provides the default implementation.
package memory
