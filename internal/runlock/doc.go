// Package runlock keeps two audioswitch processes from working on the same
// video directory at once. Locks are flock(2) based and keyed by the
// absolute directory path, so they vanish with the process that held them.
package runlock
