package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// TextButton creates a standard text button with consistent styling.
// Use for regular actions like "Back".
func TextButton(text string, padding int, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ButtonImage()),
		widget.ButtonOpts.Text(text, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(padding)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// CardButton creates a large colored card button for menus and grids.
// Cards are the primary tap target in the whole UI, so they get a
// generous minimum size regardless of their label.
func CardButton(text string, c color.Color, width, height int, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(CardButtonImage(c)),
		widget.ButtonOpts.Text(text, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(DefaultPadding)),
		widget.ButtonOpts.ClickedHandler(handler),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
		),
	)
}

// BackButton creates the corner button that pops navigation history.
func BackButton(handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(AccentButtonImage()),
		widget.ButtonOpts.Text("< Back", FontFace(), &widget.ButtonTextColor{
			Idle:     TextDark,
			Disabled: TextSecondary,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(DefaultPadding)),
		widget.ButtonOpts.ClickedHandler(handler),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(MinTapSize, 56),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(BackButtonPadding),
			}),
		),
	)
}

// EmptyState creates a centered message for screens with nothing to show.
func EmptyState(title, subtitle string) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)

	centerContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centerContent.AddChild(widget.NewText(
		widget.TextOpts.Text(title, FontFace(), TextDark),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))
	if subtitle != "" {
		centerContent.AddChild(widget.NewText(
			widget.TextOpts.Text(subtitle, FontFace(), Border),
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		))
	}

	container.AddChild(centerContent)
	return container
}

// RootContainer creates the standard full-screen container: sky blue
// background with an anchor layout for screen content.
func RootContainer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

// scrollSlider creates a vertical scroll slider bound to a scroll container.
func scrollSlider(scrollContainer *widget.ScrollContainer, needsScroll func() bool) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionVertical),
		widget.SliderOpts.MinMax(0, 1000),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(Border),
				Hover: image.NewNineSliceColor(Border),
			},
			&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(Primary),
				Hover:    image.NewNineSliceColor(PrimaryHover),
				Pressed:  image.NewNineSliceColor(Primary),
				Disabled: image.NewNineSliceColor(Border),
			},
		),
		widget.SliderOpts.FixedHandleSize(40),
		widget.SliderOpts.PageSizeFunc(func() int {
			if !needsScroll() {
				return 1000
			}
			viewHeight := scrollContainer.ViewRect().Dy()
			contentHeight := scrollContainer.ContentRect().Dy()
			return int(float64(viewHeight) / float64(contentHeight) * 1000)
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if !needsScroll() {
				scrollContainer.ScrollTop = 0
				return
			}
			scrollContainer.ScrollTop = float64(args.Current) / 1000
		}),
	)
}

// ScrollableContainer wraps content in a scroll container with a wide
// vertical slider (a toddler drags it like anything else). Returns the
// scroll container and the wrapper widget for embedding in layouts.
func ScrollableContainer(content *widget.Container) (*widget.ScrollContainer, widget.PreferredSizeLocateableWidget) {
	scrollContainer := widget.NewScrollContainer(
		widget.ScrollContainerOpts.Content(content),
		widget.ScrollContainerOpts.StretchContentWidth(),
		widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
			Idle: image.NewNineSliceColor(Background),
			Mask: image.NewNineSliceColor(Background),
		}),
	)

	needsScroll := func() bool {
		contentHeight := scrollContainer.ContentRect().Dy()
		viewHeight := scrollContainer.ViewRect().Dy()
		return contentHeight > 0 && viewHeight > 0 && contentHeight > viewHeight
	}

	vSlider := scrollSlider(scrollContainer, needsScroll)

	// Touch-drag and wheel scrolling on the content itself.
	scrollContainer.GetWidget().ScrolledEvent.AddHandler(func(args interface{}) {
		if !needsScroll() {
			scrollContainer.ScrollTop = 0
			return
		}
		a := args.(*widget.WidgetScrolledEventArgs)
		p := scrollContainer.ScrollTop + (a.Y * 0.05)
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		scrollContainer.ScrollTop = p
		vSlider.Current = int(p * 1000)
	})

	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(4, 0),
		)),
	)
	wrapper.AddChild(scrollContainer)
	wrapper.AddChild(vSlider)

	return scrollContainer, wrapper
}
