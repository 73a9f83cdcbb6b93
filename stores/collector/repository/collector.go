package repository

import (
	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain"
	"github.com/earthart/aether/service/subgraph"
)

type collectorRepo struct {
	subgraph subgraph.Client
}

// New creates a CollectorRepo reading minted transfers from the subgraph
func New(client subgraph.Client) domain.CollectorRepo {
	return &collectorRepo{
		subgraph: client,
	}
}

func (r *collectorRepo) FindMinted(c ctx.Ctx) ([]domain.CollectorRecord, error) {
	transfers, err := r.subgraph.Transfers(c)
	if err != nil {
		c.WithField("err", err).Error("subgraph.Transfers failed")
		return nil, &domain.FetchOrParseError{Err: err}
	}

	records := make([]domain.CollectorRecord, len(transfers))
	for i, t := range transfers {
		records[i] = domain.CollectorRecord{
			Id:      t.Id,
			To:      domain.Address(t.To),
			TokenId: domain.TokenId(t.TokenId),
		}
	}
	return records, nil
}
