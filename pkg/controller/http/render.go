package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"github.com/secmon-lab/riskmatrix/pkg/i18n"
	"github.com/secmon-lab/riskmatrix/pkg/utils/safe"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer holds the parsed page template. The "t" function and the other
// locale dependent helpers are bound per request on a clone.
type renderer struct {
	tmpl *template.Template
}

func newRenderer() (*renderer, error) {
	tmpl, err := template.New("page.html").
		Funcs(localeFuncs(types.DefaultLanguage)).
		Funcs(template.FuncMap{
			"levelClass": levelClass,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}
	return &renderer{tmpl: tmpl}, nil
}

func (x *renderer) render(ctx context.Context, w http.ResponseWriter, lang types.Language, data *pageData) error {
	tmpl, err := x.tmpl.Clone()
	if err != nil {
		return goerr.Wrap(err, "failed to clone template")
	}
	tmpl.Funcs(localeFuncs(lang))

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return goerr.Wrap(err, "failed to render page", goerr.V("language", lang))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safe.Write(ctx, w, buf.Bytes())
	return nil
}

func localeFuncs(lang types.Language) template.FuncMap {
	tr := i18n.For(lang)
	return template.FuncMap{
		"t": func(key string) string {
			return tr(i18n.Key(key))
		},
		"level": func(l types.RiskLevel) string {
			return tr(i18n.LevelKey(l))
		},
		"frequency": func(f types.Frequency) string {
			return tr(i18n.FrequencyKey(f))
		},
		"section": func(s types.Section) string {
			return tr(sectionKey(s))
		},
		"date": func(t time.Time) string {
			return i18n.FormatDate(lang, t)
		},
	}
}

func sectionKey(s types.Section) i18n.Key {
	switch s {
	case types.SectionRisk:
		return i18n.KeyRisks
	case types.SectionControl:
		return i18n.KeyControls
	default:
		return i18n.KeyCompanies
	}
}

func levelClass(l types.RiskLevel) string {
	switch l {
	case types.RiskLevelHigh:
		return "badge badge-high"
	case types.RiskLevelMedium:
		return "badge badge-medium"
	default:
		return "badge badge-low"
	}
}
