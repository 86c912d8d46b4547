package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
}

func (t *TopBar) onTitleClick(ctx app.Context, e app.Event) {
	e.PreventDefault()
	ctx.Reload()
}

func (t *TopBar) Render() app.UI {
	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.A().
					Href("#").
					OnClick(t.onTitleClick).
					Style("text-decoration", "none").
					Body(app.Strong().Text("GoTrick")),
			),
		),
		app.Ul().Body(
			app.Li().Body(
				app.Span().Text("Think of a card. Any card."),
			),
		),
	)
}
