package subgraph

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/metrics"
	"github.com/earthart/aether/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrGraphQL         = errors.New("graphql errors in response")
	ErrEmptyData       = errors.New("graphql response without data")
	ErrUnexpectedShape = errors.New("graphql data has unexpected shape")
)

const (
	DefaultEndpointURL = "https://api.studio.thegraph.com/query/24825/aether-optimism/version/latest"

	// DefaultQueryTemplate selects every Transfer minted from {{.From}}
	DefaultQueryTemplate = `query {
  transfers(where: { from: "{{.From}}" }) {
    id
    to
    tokenId
  }
}`

	metaQuery = `query {
  _meta {
    deployment
    hasIndexingErrors
    block {
      number
      hash
    }
  }
}`
)

// Config locates the subgraph and the mint query sent to it
type Config struct {
	EndpointURL   string `mapstructure:"endpointUrl" validate:"required,url"`
	QueryTemplate string `mapstructure:"queryTemplate" validate:"required"`
	FilterAddress string `mapstructure:"filterAddress" validate:"required,eth_addr"`
}

func DefaultConfig() Config {
	return Config{
		EndpointURL:   DefaultEndpointURL,
		QueryTemplate: DefaultQueryTemplate,
		FilterAddress: string(domain.EmptyAddress),
	}
}

type Client interface {
	// Query posts a GraphQL query and decodes its data into out
	Query(ctx bCtx.Ctx, query string, variables map[string]interface{}, out interface{}) error
	// Transfers runs the configured mint query
	Transfers(ctx bCtx.Ctx) ([]Transfer, error)
	// Meta returns the indexing status of the subgraph
	Meta(ctx bCtx.Ctx) (*Meta, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Subgraph   Config
	Metrics    metrics.Service
}

type Transfer struct {
	Id      string `json:"id"`
	To      string `json:"to"`
	TokenId string `json:"tokenId"`
}

type TransfersResp struct {
	Transfers *[]Transfer `json:"transfers"`
}

type Meta struct {
	Deployment        string `json:"deployment"`
	HasIndexingErrors bool   `json:"hasIndexingErrors"`
	Block             struct {
		Number uint64 `json:"number"`
		Hash   string `json:"hash"`
	} `json:"block"`
}

type MetaResp struct {
	Meta *Meta `json:"_meta"`
}

type GraphQLError struct {
	Message string `json:"message"`
}
