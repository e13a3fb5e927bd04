/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package transport

import "sync"

var (
	// serializes proxied calls across authentication attempts
	activationMu sync.Mutex

	stateMu     sync.RWMutex
	activeProxy *ProxyConfig
)

// ActiveProxy returns a snapshot of the proxy currently in use by an
// in-flight proxied request, or nil if none is.
func ActiveProxy() *ProxyConfig {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if activeProxy == nil {
		return nil
	}
	p := *activeProxy
	return &p
}

func activateProxy(p *ProxyConfig) (release func()) {
	activationMu.Lock()

	stateMu.Lock()
	activeProxy = p
	stateMu.Unlock()

	return func() {
		stateMu.Lock()
		activeProxy = nil
		stateMu.Unlock()

		activationMu.Unlock()
	}
}
