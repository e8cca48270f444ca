package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/shop"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

var (
	uiWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiGrey  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// ShopUI is the between-runs shop screen. Clicking an item buys it, or
// toggles its equip state if the player already owns it. The widget tree is
// rebuilt after every change so labels never go stale.
type ShopUI struct {
	shop   *shop.Shop
	log    *zap.Logger
	ui     *ebitenui.UI
	player gadget.Player
	status string
	dirty  bool
	face   ebtext.Face
}

func NewShopUI(s *shop.Shop, log *zap.Logger) *ShopUI {
	u := &ShopUI{
		shop: s,
		log:  log,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
	u.Refresh()
	return u
}

// Refresh rebuilds the widget tree from the registry and the shelf.
func (u *ShopUI) Refresh() {
	u.ui = u.build()
	u.dirty = false
}

func (u *ShopUI) Update() {
	u.ui.Update()
	if u.dirty {
		u.Refresh()
	}
}

func (u *ShopUI) Draw(screen *ebiten.Image) {
	u.ui.Draw(screen)
}

func (u *ShopUI) click(it shop.Item) {
	defer func() { u.dirty = true }()

	if !u.shop.Registry().IsPurchased(u.player, it.ID) {
		err := u.shop.Buy(u.player, it.ID)
		switch {
		case err == nil:
			u.status = fmt.Sprintf("Bought %v. %s", it.ID, it.Description)
		case errors.Is(err, shop.ErrInsufficientAcorns):
			u.status = fmt.Sprintf("%v costs %d acorns.", it.ID, it.Cost)
		default:
			u.status = err.Error()
			u.log.Warn("buy failed", zap.Stringer("player", u.player), zap.Stringer("item", it.ID), zap.Error(err))
		}
		return
	}

	equipped, err := u.shop.ToggleEquip(u.player, it.ID)
	switch {
	case errors.Is(err, shop.ErrSlotsFull):
		u.status = fmt.Sprintf("All %d slots are full. Unequip something first.", gadget.Capacity)
	case err != nil:
		u.status = err.Error()
	case equipped:
		u.status = fmt.Sprintf("Equipped %v.", it.ID)
	default:
		u.status = fmt.Sprintf("Unequipped %v.", it.ID)
	}
}

func (u *ShopUI) itemLabel(it shop.Item) string {
	reg := u.shop.Registry()
	state := fmt.Sprintf("%d acorns", it.Cost)
	switch {
	case reg.IsEquipped(u.player, it.ID):
		state = "equipped"
	case reg.IsPurchased(u.player, it.ID):
		state = "owned"
	}
	return fmt.Sprintf("%-18v %s", it.ID, state)
}

func (u *ShopUI) build() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff})
	btnTextColor := &widget.ButtonTextColor{Idle: uiWhite}
	face := u.face
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	reg := u.shop.Registry()
	title := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Shop  %v  acorns: %d  slots: %d/%d", u.player, reg.Acorns(u.player), reg.EquippedCount(u.player), gadget.Capacity), &face, uiWhite),
		widget.TextOpts.WidgetOpts(center),
	)

	switchBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
		widget.ButtonOpts.Text(fmt.Sprintf("Switch to %v", u.player.Opponent()), &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			u.player = u.player.Opponent()
			u.status = ""
			u.dirty = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(switchBtn)

	for _, it := range u.shop.Items() {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(u.itemLabel(it), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				u.click(it)
			}),
		))
	}

	if u.status != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(u.status, &face, uiWhite),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("click to buy or equip, Tab to close", &face, uiGrey),
		widget.TextOpts.WidgetOpts(center),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
