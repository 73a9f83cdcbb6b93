package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/domain"
)

const (
	Title   = "Aether, Earth, and Art"
	Tagline = "We create regenerative art that funds reforestation on Lamu Island, Kenya."
	Intro   = "We have also created a subgraph so that you can fetch the accounts which have collected this token easily. " +
		"Notice how we use specific kinds of Transfer events to determine which accounts minted NFTs..."

	heroImage = "/dunes.jpg"
)

// Card is one of the static link cards below the feed
type Card struct {
	Before string
	Label  string
	Href   string
	After  string
}

var Cards = []Card{
	{Before: "Tinker with our ERC721A NFT contract using the", Label: "Debug Contract", Href: "/debug", After: "tab."},
	{Before: "Check out our live website at", Label: "earthart.africa", Href: "https://earthart.africa", After: "to get involved and help us plant more trees."},
	{Before: "Explore your local transactions with the", Label: "Block Explorer", Href: "/blockexplorer", After: "tab."},
}

type pageData struct {
	Title       string
	Description string
	Heading     string
	Tagline     string
	HeroImage   string
	Intro       string
	FeedId      string
	FeedStatus  domain.FeedStatus
	Rows        []domain.CollectorRow
	Cards       []Card
}

type pageHandler struct {
	uc            domain.CollectorUseCase
	renderTimeout time.Duration
	heroImage     string
}

// New registers the landing page on GET /. The echo instance must use a
// Renderer from NewRenderer. staticDir, when set, serves the hero image;
// without it the page renders no image.
func New(e *echo.Echo, uc domain.CollectorUseCase, renderTimeout time.Duration, staticDir string) {
	h := &pageHandler{
		uc:            uc,
		renderTimeout: renderTimeout,
	}
	e.GET("/", h.index)
	if staticDir != "" {
		h.heroImage = heroImage
		e.Static("/", staticDir)
	}
}

// index mounts a feed for the request, renders whatever the feed holds once
// its load settled or the timeout hit, and tears the feed down.
func (h *pageHandler) index(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	feed := h.uc.Mount(context)
	defer feed.Close()

	renderCtx, cancel := ctx.WithTimeout(context, h.renderTimeout)
	defer cancel()
	if err := feed.Wait(renderCtx); err != nil {
		context.WithFields(log.Fields{
			"err":  err,
			"feed": feed.Id(),
		}).Warn("rendering before feed settled")
	}

	return c.Render(http.StatusOK, pageTemplateName, pageData{
		Title:       Title,
		Description: Tagline,
		Heading:     Title,
		Tagline:     Tagline,
		HeroImage:   h.heroImage,
		Intro:       Intro,
		FeedId:      feed.Id(),
		FeedStatus:  feed.Status(),
		Rows:        feed.Rows(renderCtx),
		Cards:       Cards,
	})
}
