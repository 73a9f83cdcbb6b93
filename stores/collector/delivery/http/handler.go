package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/delivery"
	"github.com/earthart/aether/domain"
)

type collectorHandler struct {
	uc          domain.CollectorUseCase
	waitTimeout time.Duration
}

type collectorsQuery struct {
	Rows bool `query:"rows"`
}

type collectorsResp struct {
	Feed       string                   `json:"feed"`
	Status     domain.FeedStatus        `json:"status"`
	Collectors []domain.CollectorRecord `json:"collectors"`
	Rows       []domain.CollectorRow    `json:"rows,omitempty"`
}

// New registers GET /api/collectors. waitTimeout bounds how long a request
// waits for the feed's initial load and the minters' ens names.
func New(e *echo.Echo, uc domain.CollectorUseCase, waitTimeout time.Duration) {
	h := &collectorHandler{
		uc:          uc,
		waitTimeout: waitTimeout,
	}
	g := e.Group("/api/collectors")
	g.GET("", h.getCollectors)
}

// getCollectors answers 200 even when the fetch failed, the status field tells
// the client why the list is empty. ?rows=true adds the formatted table.
//
//	@Summary		List collectors
//	@Description	Mounts a feed, waits for its first load and returns the minted transfers in subgraph order
//	@Tags			collectors
//	@Produce		json
//	@Param			rows	query		bool	false	"include the formatted table rows"
//	@Success		200		{object}	delivery.JsonResponse{data=collectorsResp}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Router			/api/collectors [get]
func (h *collectorHandler) getCollectors(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	query := collectorsQuery{}
	if err := c.Bind(&query); err != nil {
		context.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	feed := h.uc.Mount(context)
	defer feed.Close()

	renderCtx, cancel := ctx.WithTimeout(context, h.waitTimeout)
	defer cancel()
	if err := feed.Wait(renderCtx); err != nil {
		context.WithField("err", err).Warn("feed.Wait failed")
	}

	resp := collectorsResp{
		Feed:       feed.Id(),
		Status:     feed.Status(),
		Collectors: feed.Collectors(),
	}
	if query.Rows {
		resp.Rows = feed.Rows(renderCtx)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp)
}
