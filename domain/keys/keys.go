package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxListingLock prefixes the per listing purchase lock
	PfxListingLock = "lock:listing"
	// ChannelEvents is the pub/sub channel marketplace events are published on
	ChannelEvents = "marketplace:events"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns every component of key but the last one, it is used to
// tag metrics without blowing up their cardinality
func GetPrefix(key string) string {
	i := strings.LastIndex(key, ":")
	if i < 0 {
		return ""
	}
	return key[:i]
}
