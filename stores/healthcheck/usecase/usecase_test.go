package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	errDown := errors.New("down")
	tests := []struct {
		name        string
		subgraphErr error
		cacheErr    error
		wantErr     error
		pingsCache  bool
	}{
		{name: "healthy", pingsCache: true},
		{name: "subgraph down", subgraphErr: errDown, wantErr: errDown},
		{name: "cache down", cacheErr: errDown, wantErr: errDown, pingsCache: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.HealthCheckRepo{}
			repo.On("PingSubgraph", mock.Anything).Return(tt.subgraphErr)
			repo.On("PingCache", mock.Anything).Return(tt.cacheErr)

			err := New(repo).Check(ctx.Background())
			assert.Equal(t, tt.wantErr, err)
			if tt.pingsCache {
				repo.AssertCalled(t, "PingCache", mock.Anything)
			} else {
				repo.AssertNotCalled(t, "PingCache", mock.Anything)
			}
		})
	}
}
