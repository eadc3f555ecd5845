package redis

import "fmt"

// Key prefix for all storefront data
const keyPrefix = "freeplay"

// seedKey returns the Redis key holding the published seed document
func seedKey() string {
	return fmt.Sprintf("%s:seed:current", keyPrefix)
}

// seedVersionKey returns the Redis key holding the published seed version
func seedVersionKey() string {
	return fmt.Sprintf("%s:seed:version", keyPrefix)
}
