package domain

import (
	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/explorer"
)

// CollectorRecord is one mint, a Transfer whose source is EmptyAddress
type CollectorRecord struct {
	Id      string  `json:"id"`
	To      Address `json:"to"`
	TokenId TokenId `json:"tokenId"`
}

type FeedStatus string

const (
	FeedStatusIdle    FeedStatus = "idle"
	FeedStatusLoading FeedStatus = "loading"
	FeedStatusLoaded  FeedStatus = "loaded"
	FeedStatusFailed  FeedStatus = "failed"
)

// CollectorRow is a record prepared for the three column table
type CollectorRow struct {
	Key     string        `json:"key"`
	TokenId TokenId       `json:"tokenId"`
	Minter  explorer.Link `json:"minter"`
	TxHash  explorer.Link `json:"txHash"`
}

type CollectorRepo interface {
	// FindMinted returns the minted transfers in the order the indexer returns them
	FindMinted(ctx.Ctx) ([]CollectorRecord, error)
}

// CollectorFeed holds the collector list of one page mount
type CollectorFeed interface {
	Id() string
	Load(ctx.Ctx) error
	Wait(ctx.Ctx) error
	Close()
	Status() FeedStatus
	Collectors() []CollectorRecord
	Rows(ctx.Ctx) []CollectorRow
}

type CollectorUseCase interface {
	// Mount creates a feed and starts its one initial load
	Mount(ctx.Ctx) CollectorFeed
}
