package ethereum

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

type slowBackend struct {
	bind.ContractBackend
	inFlight int32
	maxSeen  int32
}

func (b *slowBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	n := atomic.AddInt32(&b.inFlight, 1)
	defer atomic.AddInt32(&b.inFlight, -1)
	for {
		max := atomic.LoadInt32(&b.maxSeen)
		if n <= max || atomic.CompareAndSwapInt32(&b.maxSeen, max, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return []byte{1}, nil
}

func TestThrottledClientCapsInFlight(t *testing.T) {
	backend := &slowBackend{}
	client := NewThrottledClient(backend, 2)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := client.CallContract(context.Background(), ethereum.CallMsg{}, nil)
			assert.NoError(t, err)
			assert.Equal(t, []byte{1}, res)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&backend.maxSeen), int32(2))
}

func TestThrottledClientCanceled(t *testing.T) {
	client := NewThrottledClient(&slowBackend{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.CodeAt(ctx, common.Address{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
