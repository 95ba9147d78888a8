// Package venue browses venues and lets venue managers maintain their own.
package venue
