// Package backend builds status probes for the services a Q&A strategy
// depends on. Each backend lives in its own subpackage.
package backend
