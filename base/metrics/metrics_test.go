package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"method:GET", "path:/"}, parseTag([]string{"method", "GET", "path", "/"}))
	assert.Panics(t, func() { parseTag([]string{"odd"}) })
}

func TestLogClientFallback(t *testing.T) {
	// datadog_host is unset in tests, every client must be the log client
	m := New("test", WithoutPodName())
	assert.NotPanics(t, func() {
		m.BumpSum("feed.load.err", 1)
		m.BumpAvg("feed.size", 3)
		m.BumpHistogram("subgraph.latency", 12)
		m.BumpTime("request.time", "method", "GET").End()
	})
	for _, c := range ddClients {
		assert.IsType(t, &LogClient{}, c)
	}
}

func TestTagsDoNotAlias(t *testing.T) {
	dm := &DDMetrics{ddTags: make([]string, 1, 8)}
	a := dm.tags([]string{"k", "a"})
	b := dm.tags([]string{"k", "b"})
	assert.Equal(t, "k:a", a[1])
	assert.Equal(t, "k:b", b[1])
}
