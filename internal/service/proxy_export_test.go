package service

import "time"

// SetProxyTimeoutForTest shortens the upstream header timeout.
func SetProxyTimeoutForTest(svc ProxyService, d time.Duration) {
	if impl, ok := svc.(*proxyService); ok {
		impl.timeout = d
	}
}
