package types

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_QUOTATION     = "quot"
	UUID_PREFIX_INTERIOR_ITEM = "intr"
	UUID_PREFIX_CEILING_ITEM  = "ceil"
	UUID_PREFIX_OTHER_ITEM    = "othr"
	UUID_PREFIX_RATE_ENTRY    = "rate"
	UUID_PREFIX_BRAND_ADDER   = "badd"
	UUID_PREFIX_CATALOG_ITEM  = "cat"
	UUID_PREFIX_REQUEST       = "req"
)

// GenerateUUID returns a lowercase ULID.
func GenerateUUID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}

// GenerateUUIDWithPrefix returns a prefixed ULID, ex: quot_01HXXX...
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
