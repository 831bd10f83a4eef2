package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title screen.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnQuit  func()

	// Widget references for updates
	highScoreLabel   *widget.Label
	gamesPlayedLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title menu with ebitenui.
func NewMenuUI(highScore, gamesPlayed int, onStart, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}

	mui.loadFonts()
	mui.buildUI()
	mui.SetStats(highScore, gamesPlayed)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   30,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{8, 8, 20, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CYBER DEFENDER", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{0, 229, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("defend the grid", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 144, 156, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	mui.highScoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{224, 247, 250, 255},
		}),
	)
	contentContainer.AddChild(mui.highScoreLabel)

	mui.gamesPlayedLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 144, 156, 255},
		}),
	)
	contentContainer.AddChild(mui.gamesPlayedLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 32),
		),
		widget.ButtonOpts.Image(mui.startButtonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("QUIT", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("arrows/A-D move   space fires   esc pauses", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 144, 156, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStats refreshes the persisted-stat labels.
func (mui *MenuUI) SetStats(highScore, gamesPlayed int) {
	mui.highScoreLabel.Label = fmt.Sprintf("HIGH SCORE  %d", highScore)
	mui.gamesPlayedLabel.Label = fmt.Sprintf("runs flown  %d", gamesPlayed)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 44, 66, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 66, 96, 255})
	pressed := image.NewNineSliceColor(color.RGBA{28, 30, 48, 255})
	disabled := image.NewNineSliceColor(color.RGBA{30, 30, 30, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{0, 96, 120, 255})
	hover := image.NewNineSliceColor(color.RGBA{0, 140, 170, 255})
	pressed := image.NewNineSliceColor(color.RGBA{0, 70, 90, 255})
	disabled := image.NewNineSliceColor(color.RGBA{30, 50, 56, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update advances the widget tree.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
