// Package deps checks that the external binaries audioswitch invokes are
// resolvable before any work starts.
package deps
