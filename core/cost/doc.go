// Package cost holds cost and performance metadata attached to tools.
package cost
