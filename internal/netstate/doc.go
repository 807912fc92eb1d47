// Package netstate reports whether the device has a usable network interface
// and notifies subscribers when that changes.
//
// It is the platform half of connectivity detection. Whether the movie server
// itself answers is decided by the service layer with a reachability probe.
package netstate
