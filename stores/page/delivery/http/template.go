package http

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

const pageTemplateName = "page"

const pageTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
</head>
<body>
  <main class="page">
    <section class="hero">
      <h1><span>{{.Heading}}</span></h1>
      <p class="tagline">{{.Tagline}}</p>
      {{- if .HeroImage}}
      <img alt="Shela Sand Dunes" width="800" height="400" src="{{.HeroImage}}">
      {{- end}}
    </section>

    <section class="collectors">
      <p>{{.Intro}}</p>
      <div class="feed" data-feed="{{.FeedId}}" data-status="{{.FeedStatus}}">
        <p class="feed-title">NFTs Minted By</p>
        <div class="grid">
          <div class="col">
            <h3>Token ID</h3>
            {{range .Rows}}<div data-key="{{.Key}}">{{.TokenId}}</div>
            {{end}}
          </div>
          <div class="col">
            <h3>Minter</h3>
            {{range .Rows}}<div data-key="{{.Key}}">{{template "link" .Minter}}</div>
            {{end}}
          </div>
          <div class="col hidden-sm">
            <h3>Tx Hash</h3>
            {{range .Rows}}<div data-key="{{.Key}}">{{template "link" .TxHash}}</div>
            {{end}}
          </div>
        </div>
      </div>
    </section>

    <section class="cards">
      {{range .Cards}}<div class="card">
        <p>{{.Before}} <a class="link" href="{{.Href}}">{{.Label}}</a> {{.After}}</p>
      </div>
      {{end}}
    </section>
  </main>
</body>
</html>
{{define "link"}}{{if .Href}}<a href="{{.Href}}" title="{{.Title}}">{{.Text}}</a>{{else}}<span title="{{.Title}}">{{.Text}}</span>{{end}}{{end}}`

// Renderer implements echo.Renderer over the page template
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.New(pageTemplateName).Parse(pageTemplateText)),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
