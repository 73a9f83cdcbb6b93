package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ThrottledClient caps the number of contract reads in flight against one rpc
type ThrottledClient struct {
	bind.ContractBackend
	tokens chan int
}

func NewThrottledClient(backend bind.ContractBackend, n int) *ThrottledClient {
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		ContractBackend: backend,
		tokens:          tokens,
	}
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.ContractBackend.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.ContractBackend.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) before(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case token := <-c.tokens:
		return token, nil
	}
}

func (c *ThrottledClient) after(token int) {
	c.tokens <- token
}
