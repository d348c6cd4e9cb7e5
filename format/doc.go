// Package format holds the small value types shared by the wire, codec and frame
// packages: element-type OIDs and compression identifiers.
package format
