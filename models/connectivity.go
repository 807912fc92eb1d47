// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectivityState is the client's view of whether the server can be used.
type ConnectivityState struct {
	// NetworkReachable reflects the platform network signal.
	NetworkReachable bool `json:"networkReachable"`
	// ServerReachable reflects the outcome of the last probe.
	ServerReachable bool `json:"serverReachable"`
}

// Reachable reports whether remote calls should be attempted.
func (s ConnectivityState) Reachable() bool {
	return s.NetworkReachable && s.ServerReachable
}

// String renders the state for status lines.
func (s ConnectivityState) String() string {
	switch {
	case !s.NetworkReachable:
		return "No Network"
	case !s.ServerReachable:
		return "Server Offline"
	default:
		return "Online"
	}
}
