package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoTrick/internal/trick"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// CardWidth is the width in pixels of every card image.
const CardWidth = 150

// Trick is the page running one trick. It owns the controller and the
// in-memory surfaces the controller renders into; Render draws those.
type Trick struct {
	app.Compo

	ctrl   *trick.Controller
	groups [trick.NumGroups]*trick.Pile
	result *trick.Pile
	info   *trick.Notice
}

// OnInit builds the controller and deals the first round.
func (t *Trick) OnInit() {
	t.groups = [trick.NumGroups]*trick.Pile{trick.NewPile(), trick.NewPile(), trick.NewPile()}
	t.result = trick.NewPile()
	t.info = &trick.Notice{}
	t.ctrl = trick.NewController(trick.NewRandomSampler(), trick.Surfaces{
		Groups: [trick.NumGroups]trick.GroupSurface{t.groups[0], t.groups[1], t.groups[2]},
		Result: t.result,
		Info:   t.info,
	})
	if err := t.ctrl.Start(); err != nil {
		klog.Errorf("Trick: failed to start: %v", err)
		return
	}
	klog.Infof("Trick %s: started", t.ctrl.ID())
}

func (t *Trick) OnMount(ctx app.Context) {
	klog.V(1).Infof("Trick component: OnMount called")
}

func (t *Trick) OnAppUpdate(ctx app.Context) {
	klog.Infof("Trick component: App update available, not reloading not to interrupt the trick...")
}

func (t *Trick) onGroupEnter(g trick.Group) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		t.ctrl.Highlight(g, true)
	}
}

func (t *Trick) onGroupLeave(g trick.Group) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		t.ctrl.Highlight(g, false)
	}
}

func (t *Trick) onGroupDown(g trick.Group) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		if err := t.ctrl.Advance(g); err != nil {
			klog.Errorf("Trick %s: click on group %s: %v", t.ctrl.ID(), g, err)
		}
	}
}

func renderCards(cards []trick.Card) []app.UI {
	imgs := make([]app.UI, 0, len(cards))
	for _, c := range cards {
		imgs = append(imgs, app.Img().
			Src(trick.AssetPath(c)).
			Alt(string(c)).
			Width(CardWidth))
	}
	return imgs
}

// groupClass returns the CSS classes of a pile.
func groupClass(p *trick.Pile) string {
	class := "group"
	if p.Highlighted() {
		class += " highlight"
	}
	if p.Hidden() {
		class += " hide"
	}
	return class
}

func (t *Trick) renderGroup(g trick.Group, p *trick.Pile) app.UI {
	return app.Div().
		ID(groupID(g)).
		Class(groupClass(p)).
		OnMouseEnter(t.onGroupEnter(g)).
		OnMouseLeave(t.onGroupLeave(g)).
		OnMouseDown(t.onGroupDown(g)).
		Body(renderCards(p.Cards())...)
}

// groupID is the element id of a pile: group1, group2 or group3.
func groupID(g trick.Group) string {
	return fmt.Sprintf("group%d", int(g))
}

func (t *Trick) Render() app.UI {
	if t.ctrl == nil {
		return app.Main().Class("container").Body(
			&TopBar{},
			app.Div().Aria("busy", "true").Text("Shuffling..."),
		)
	}

	piles := make([]app.UI, 0, trick.NumGroups)
	for i, p := range t.groups {
		piles = append(piles, t.renderGroup(trick.Group(i+1), p))
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.P().ID("info").Text(t.info.Text()),
		app.Div().Class("groups").Body(piles...),
		app.Div().ID("result").Body(renderCards(t.result.Cards())...),
	)
}
