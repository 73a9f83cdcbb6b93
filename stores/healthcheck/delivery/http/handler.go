package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/delivery"
	hcdomain "github.com/earthart/aether/domain/healthcheck"
)

type healthResp struct {
	Subgraph string `json:"subgraph"`
	Cache    string `json:"cache"`
}

type healthHandler struct {
	uc hcdomain.HealthCheckUsecase
}

// New registers GET /health, answering 503 while the subgraph or the shared
// cache is unreachable.
func New(e *echo.Echo, uc hcdomain.HealthCheckUsecase) {
	h := &healthHandler{
		uc: uc,
	}
	e.GET("/health", h.getHealth)
}

// getHealth godoc
//
//	@Summary		Service health
//	@Description	Pings the subgraph and, when configured, the redis cache
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	delivery.JsonResponse{data=healthResp}
//	@Failure		503	{object}	delivery.JsonResponse{data=string}
//	@Router			/health [get]
func (h *healthHandler) getHealth(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.uc.Check(context); err != nil {
		context.WithField("err", err).Warn("uc.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, healthResp{
		Subgraph: "ok",
		Cache:    "ok",
	})
}
