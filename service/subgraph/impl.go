package subgraph

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"text/template"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/base/metrics"
	"github.com/earthart/aether/base/validator"
)

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

func NewClient(cfg *ClientCfg) (Client, error) {
	if err := validator.Struct(cfg.Subgraph); err != nil {
		return nil, xerrors.Errorf("invalid subgraph config: %w", err)
	}

	tmpl, err := template.New("transfers").Option("missingkey=error").Parse(cfg.Subgraph.QueryTemplate)
	if err != nil {
		return nil, xerrors.Errorf("invalid query template: %w", err)
	}
	var query strings.Builder
	if err := tmpl.Execute(&query, struct{ From string }{cfg.Subgraph.FilterAddress}); err != nil {
		return nil, xerrors.Errorf("render query template: %w", err)
	}

	met := cfg.Metrics
	if met == nil {
		met = metrics.New("subgraph")
	}

	return &client{
		client:         cfg.HttpClient,
		timeout:        cfg.Timeout,
		endpoint:       cfg.Subgraph.EndpointURL,
		transfersQuery: query.String(),
		met:            met,
	}, nil
}

type client struct {
	client         http.Client
	timeout        time.Duration
	endpoint       string
	transfersQuery string
	met            metrics.Service
}

func (c *client) Transfers(ctx bCtx.Ctx) ([]Transfer, error) {
	resp := TransfersResp{}
	if err := c.Query(ctx, c.transfersQuery, nil, &resp); err != nil {
		ctx.WithField("err", err).Error("c.Query transfers failed")
		return nil, err
	}
	if resp.Transfers == nil {
		ctx.Error("transfers missing in data")
		return nil, xerrors.Errorf("transfers: %w", ErrUnexpectedShape)
	}
	return *resp.Transfers, nil
}

func (c *client) Meta(ctx bCtx.Ctx) (*Meta, error) {
	resp := MetaResp{}
	if err := c.Query(ctx, metaQuery, nil, &resp); err != nil {
		ctx.WithField("err", err).Error("c.Query _meta failed")
		return nil, err
	}
	if resp.Meta == nil {
		return nil, xerrors.Errorf("_meta: %w", ErrUnexpectedShape)
	}
	return resp.Meta, nil
}

func (c *client) Query(ctx bCtx.Ctx, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	data, err := c.post(ctx, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.endpoint,
			"err": err,
		}).Error("c.post failed")
		return err
	}

	resp := response{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return xerrors.Errorf("decode response: %w", ErrUnexpectedShape)
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		if len(resp.Errors) > 0 {
			ctx.WithField("errors", resp.Errors).Error("graphql errors")
			return xerrors.Errorf("%s: %w", resp.Errors[0].Message, ErrGraphQL)
		}
		return ErrEmptyData
	}
	// partial answers keep their data
	if len(resp.Errors) > 0 {
		ctx.WithField("errors", resp.Errors).Warn("graphql errors along with data")
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal data failed")
		return xerrors.Errorf("decode data: %w", ErrUnexpectedShape)
	}
	return nil
}

func (c *client) post(ctx bCtx.Ctx, body []byte) ([]byte, error) {
	defer c.met.BumpTime("latency").End()

	var cancel func()
	if c.timeout > 0 {
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = bCtx.WithCancel(ctx)
	}
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.endpoint,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		c.met.BumpSum("err", 1, "reason", "do")
		ctx.WithFields(log.Fields{
			"url": c.endpoint,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.met.BumpSum("err", 1, "reason", "status")
		ctx.WithFields(log.Fields{
			"url":        c.endpoint,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.endpoint,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
