package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "ens:reverse:0xabc", RedisKey(PfxEns, "reverse", "0xabc"))
}

func TestGetPrefix(t *testing.T) {
	cases := map[string]string{
		"ens:reverse:0xabc": "ens:reverse",
		"healthcheck:ping":  "healthcheck",
		"plain":             "",
	}
	for key, exp := range cases {
		assert.Equal(t, exp, GetPrefix(key), key)
	}
}
