// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"seatmap/internal/app"
	"seatmap/internal/cart"
	"seatmap/internal/interaction"
	"seatmap/internal/project"
	"seatmap/internal/venue"
	"seatmap/internal/version"
	"seatmap/ui/canvas"
	"seatmap/ui/prefs"
	"seatmap/pkg/geometry"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.MapCanvas
	statusBar *widget.Label
	tierTabs  *widget.Select
	cartBox   *fyne.Container
	cartList  *widget.Label
	modeBtn   *widget.Button
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Seat Map Designer")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state)
	mw.canvas.OnStatus = mw.updateStatus

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()
	mw.cartBox = mw.createCartPanel()
	mw.cartBox.Hide()

	canvasArea := container.NewBorder(
		toolbar,   // top
		nil,       // bottom
		nil,       // left
		mw.cartBox, // right
		mw.canvas, // center
	)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		canvasArea,                        // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1200, 800))
}

// createToolbar creates tool, tier, and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	selectBtn := widget.NewButton("Select", func() { mw.setTool(interaction.ToolSelect) })
	panBtn := widget.NewButton("Pan", func() { mw.setTool(interaction.ToolPan) })
	rowsBtn := widget.NewButton("Rows", mw.onPlaceStraight)
	curveBtn := widget.NewButton("Curve", mw.onPlaceCurved)
	stageBtn := widget.NewButton("Stage", mw.onPlaceStage)
	viewBtn := widget.NewButton("Seat View", func() { mw.setTool(interaction.ToolViewFromSeat) })

	tierNames := make([]string, len(mw.state.Venue.Tiers))
	for i, t := range mw.state.Venue.Tiers {
		tierNames[i] = t.Name
	}
	mw.tierTabs = widget.NewSelect(tierNames, func(name string) {
		for i, t := range mw.state.Venue.Tiers {
			if t.Name == name {
				if err := mw.state.SwitchTier(i); err != nil {
					mw.updateStatus(err.Error())
				}
				return
			}
		}
	})
	mw.tierTabs.SetSelectedIndex(mw.state.Venue.CurrentTier)

	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	fitBtn := widget.NewButton("Fit", mw.onFitAll)

	mw.modeBtn = widget.NewButton("Book Seats", mw.onToggleMode)

	return container.NewHBox(
		selectBtn, panBtn, rowsBtn, curveBtn, stageBtn, viewBtn,
		widget.NewSeparator(),
		widget.NewLabel("Tier:"), mw.tierTabs,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"), zoomOutBtn, zoomInBtn, fitBtn,
		widget.NewSeparator(),
		mw.modeBtn,
	)
}

// createCartPanel builds the consumer-mode cart sidebar.
func (mw *MainWindow) createCartPanel() *fyne.Container {
	mw.cartList = widget.NewLabel("Cart is empty")
	addBtn := widget.NewButton("Add Selected", mw.onAddSelectedToCart)
	checkoutBtn := widget.NewButton("Checkout", mw.onCheckout)
	clearBtn := widget.NewButton("Clear", func() {
		mw.state.Cart.Clear()
		mw.state.Emit(app.EventCartChanged, nil)
	})
	return container.NewVBox(
		widget.NewLabelWithStyle("Your Seats", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		mw.cartList,
		addBtn,
		checkoutBtn,
		clearBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Venue", mw.onNewVenue),
		fyne.NewMenuItem("Open Venue...", mw.onOpenVenue),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Venue", mw.onSaveVenue),
		fyne.NewMenuItem("Export Venue As...", mw.onExportVenue),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Reset View", mw.onResetView),
		fyne.NewMenuItem("Fit All", mw.onFitAll),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Grid", mw.onToggleGrid),
		fyne.NewMenuItem("Toggle 3D", mw.onToggle3D),
	)

	seatsMenu := fyne.NewMenu("Seats",
		fyne.NewMenuItem("Mark Available", func() { mw.onMarkSelected(venue.StatusAvailable) }),
		fyne.NewMenuItem("Mark Reserved", func() { mw.onMarkSelected(venue.StatusReserved) }),
		fyne.NewMenuItem("Mark Blocked", func() { mw.onMarkSelected(venue.StatusBlocked) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu, seatsMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupEventHandlers registers for application events. Handler bodies
// run through fyne.Do because events can also fire from the checkout
// goroutine, and the toolkit must only be touched on its main thread.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventVenueLoaded, func(data interface{}) {
		fyne.Do(func() {
			if path, ok := data.(string); ok {
				mw.SetTitle("Seat Map Designer - " + filepath.Base(path))
				mw.updateStatus("Venue loaded: " + path)
			}
			mw.refreshTierTabs()
		})
	})

	mw.state.On(app.EventVenueSaved, func(data interface{}) {
		fyne.Do(func() {
			if path, ok := data.(string); ok {
				mw.updateStatus("Venue saved: " + path)
			}
		})
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		fyne.Do(func() {
			if modified, ok := data.(bool); ok && modified {
				title := mw.Title()
				if len(title) > 0 && title[len(title)-1] != '*' {
					mw.SetTitle(title + " *")
				}
			}
		})
	})

	mw.state.On(app.EventCartChanged, func(interface{}) {
		fyne.Do(mw.refreshCart)
	})

	mw.state.On(app.EventModeChanged, func(data interface{}) {
		fyne.Do(func() {
			if mode, ok := data.(app.Mode); ok {
				if mode == app.ModeConsumer {
					mw.modeBtn.SetText("Edit Layout")
					mw.cartBox.Show()
					mw.updateStatus("Booking mode: pick your seats")
				} else {
					mw.modeBtn.SetText("Book Seats")
					mw.cartBox.Hide()
					mw.updateStatus("Builder mode")
				}
			}
		})
	})

	mw.state.On(app.EventOrderCompleted, func(data interface{}) {
		fyne.Do(func() {
			if order, ok := data.(*cart.Order); ok {
				dialog.ShowInformation("Order Confirmed",
					fmt.Sprintf("Order %s\n%d ticket(s), total $%.2f",
						order.ID, len(order.Tickets), order.Total),
					mw.Window)
			}
		})
	})
}

// onPlaceStraight asks for row grid parameters, then arms the
// placement tool; the next canvas click drops the section.
func (mw *MainWindow) onPlaceStraight() {
	p := mw.state.Controller.StraightParams()
	rows := newIntEntry(p.Rows)
	seats := newIntEntry(p.SeatsPerRow)
	seatSpacing := newFloatEntry(p.Spacing)
	rowSpacing := newFloatEntry(p.RowSpacing)
	items := []*widget.FormItem{
		widget.NewFormItem("Rows", rows),
		widget.NewFormItem("Seats per row", seats),
		widget.NewFormItem("Seat spacing", seatSpacing),
		widget.NewFormItem("Row spacing", rowSpacing),
	}
	dialog.ShowForm("Straight Section", "Place", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		p.Rows = parseInt(rows.Text, p.Rows)
		p.SeatsPerRow = parseInt(seats.Text, p.SeatsPerRow)
		p.Spacing = parseFloat(seatSpacing.Text, p.Spacing)
		p.RowSpacing = parseFloat(rowSpacing.Text, p.RowSpacing)
		if err := mw.state.Controller.SetStraightParams(p); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.setTool(interaction.ToolPlaceStraight)
		mw.updateStatus("Click the canvas to place the section")
	}, mw.Window)
}

func (mw *MainWindow) onPlaceCurved() {
	p := mw.state.Controller.CurvedParams()
	startAngle := newFloatEntry(p.StartAngle)
	endAngle := newFloatEntry(p.EndAngle)
	innerRadius := newFloatEntry(p.InnerRadius)
	outerRadius := newFloatEntry(p.OuterRadius)
	rows := newIntEntry(p.Rows)
	items := []*widget.FormItem{
		widget.NewFormItem("Start angle", startAngle),
		widget.NewFormItem("End angle", endAngle),
		widget.NewFormItem("Inner radius", innerRadius),
		widget.NewFormItem("Outer radius", outerRadius),
		widget.NewFormItem("Rows", rows),
	}
	dialog.ShowForm("Curved Section", "Place", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		p.StartAngle = parseFloat(startAngle.Text, p.StartAngle)
		p.EndAngle = parseFloat(endAngle.Text, p.EndAngle)
		p.InnerRadius = parseFloat(innerRadius.Text, p.InnerRadius)
		p.OuterRadius = parseFloat(outerRadius.Text, p.OuterRadius)
		p.Rows = parseInt(rows.Text, p.Rows)
		if err := mw.state.Controller.SetCurvedParams(p); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.setTool(interaction.ToolPlaceCurved)
		mw.updateStatus("Click the canvas to place the section")
	}, mw.Window)
}

func (mw *MainWindow) onPlaceStage() {
	p := mw.state.Controller.StageParams()
	width := newFloatEntry(p.Width)
	height := newFloatEntry(p.Height)
	shape := widget.NewSelect([]string{
		string(venue.ShapeRectangle),
		string(venue.ShapeArc),
		string(venue.ShapeCircle),
	}, nil)
	shape.SetSelected(string(p.Shape))
	items := []*widget.FormItem{
		widget.NewFormItem("Width", width),
		widget.NewFormItem("Height", height),
		widget.NewFormItem("Shape", shape),
	}
	dialog.ShowForm("Stage", "Place", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		p.Width = parseFloat(width.Text, p.Width)
		p.Height = parseFloat(height.Text, p.Height)
		p.Shape = venue.StageShape(shape.Selected)
		if err := mw.state.Controller.SetStageParams(p); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.setTool(interaction.ToolPlaceStage)
		mw.updateStatus("Click the canvas to place the stage")
	}, mw.Window)
}

func newIntEntry(v int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(v))
	return e
}

func newFloatEntry(v float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(v, 'f', -1, 64))
	return e
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return f
}

func (mw *MainWindow) setTool(t interaction.Tool) {
	mw.state.Controller.SetTool(t)
	mw.updateStatus("Tool: " + t.String())
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) refreshTierTabs() {
	names := make([]string, len(mw.state.Venue.Tiers))
	for i, t := range mw.state.Venue.Tiers {
		names[i] = t.Name
	}
	mw.tierTabs.Options = names
	mw.tierTabs.SetSelectedIndex(mw.state.Venue.CurrentTier)
	mw.tierTabs.Refresh()
}

func (mw *MainWindow) refreshCart() {
	items := mw.state.Cart.Items()
	if len(items) == 0 {
		mw.cartList.SetText("Cart is empty")
		return
	}
	text := ""
	for _, it := range items {
		text += fmt.Sprintf("%s %s  $%.2f\n", it.Section, it.Label, it.Price)
	}
	text += fmt.Sprintf("\nTotal: $%.2f", mw.state.Cart.Total())
	mw.cartList.SetText(text)
}

func (mw *MainWindow) getLastDir() fyne.ListableURI {
	lastDir := mw.prefs.String(prefKeyLastDir)
	if lastDir == "" {
		return nil
	}
	uri := storage.NewFileURI(lastDir)
	lister, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return lister
}

func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	_ = mw.prefs.Save()
}

func (mw *MainWindow) onNewVenue() {
	dialog.ShowConfirm("New Venue", "Discard the current venue?", func(ok bool) {
		if !ok {
			return
		}
		mw.state.Venue.Tiers = venue.NewDefaultMap().Tiers
		mw.state.Venue.CurrentTier = 0
		mw.state.Selection.Clear()
		mw.state.Cart.Clear()
		mw.state.Camera.Reset()
		mw.state.SetModified(false)
		mw.state.Emit(app.EventObjectsChanged, nil)
		mw.refreshTierTabs()
	}, mw.Window)
}

func (mw *MainWindow) onOpenVenue() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		if err := mw.state.LoadVenue(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.saveLastDir(path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	if dir := mw.getLastDir(); dir != nil {
		fd.SetLocation(dir)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveVenue() {
	if mw.state.ProjectPath != "" {
		if err := mw.state.SaveVenue(mw.state.ProjectPath); err != nil {
			dialog.ShowError(err, mw.Window)
		}
		return
	}
	mw.onExportVenue()
}

func (mw *MainWindow) onExportVenue() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()
		if err := mw.state.SaveVenue(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.saveLastDir(path)
	}, mw.Window)
	fd.SetFileName(project.ExportFileName(mw.state.Venue.Name))
	if dir := mw.getLastDir(); dir != nil {
		fd.SetLocation(dir)
	}
	fd.Show()
}

func (mw *MainWindow) onZoomIn() {
	mw.state.Camera.ZoomIn()
	mw.state.Emit(app.EventCameraChanged, nil)
	mw.updateStatus(fmt.Sprintf("Zoom: %.0f%%", mw.state.Camera.Zoom*100))
}

func (mw *MainWindow) onZoomOut() {
	mw.state.Camera.ZoomOut()
	mw.state.Emit(app.EventCameraChanged, nil)
	mw.updateStatus(fmt.Sprintf("Zoom: %.0f%%", mw.state.Camera.Zoom*100))
}

func (mw *MainWindow) onResetView() {
	mw.state.Camera.Reset()
	mw.state.Emit(app.EventCameraChanged, nil)
}

func (mw *MainWindow) onFitAll() {
	size := mw.canvas.Size()
	if err := mw.state.FitAll(geometry.Size{Width: float64(size.Width), Height: float64(size.Height)}); err != nil {
		mw.updateStatus(err.Error())
	}
}

func (mw *MainWindow) onToggleGrid() {
	mw.state.Venue.Settings.ShowGrid = !mw.state.Venue.Settings.ShowGrid
	mw.state.Emit(app.EventObjectsChanged, nil)
}

func (mw *MainWindow) onToggle3D() {
	mw.state.Venue.Settings.Show3D = !mw.state.Venue.Settings.Show3D
	mw.state.Emit(app.EventObjectsChanged, nil)
}

func (mw *MainWindow) onToggleMode() {
	if mw.state.Mode() == app.ModeBuilder {
		mw.state.SetMode(app.ModeConsumer)
	} else {
		mw.state.SetMode(app.ModeBuilder)
	}
}

func (mw *MainWindow) onMarkSelected(status venue.SeatStatus) {
	if mw.state.Selection.Len() == 0 {
		mw.updateStatus("No seats selected")
		return
	}
	if err := mw.state.SetSelectedStatus(status); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onAddSelectedToCart() {
	for _, id := range mw.state.Selection.IDs() {
		if err := mw.state.ToggleCartSeat(id); err != nil {
			mw.updateStatus(err.Error())
		}
	}
}

func (mw *MainWindow) onCheckout() {
	if mw.state.Cart.Len() == 0 {
		mw.updateStatus("Cart is empty")
		return
	}

	nameEntry := widget.NewEntry()
	emailEntry := widget.NewEntry()
	phoneEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Email", emailEntry),
		widget.NewFormItem("Phone", phoneEntry),
	}

	dialog.ShowForm("Checkout", "Pay", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		customer := cart.CustomerInfo{
			Name:  nameEntry.Text,
			Email: emailEntry.Text,
			Phone: phoneEntry.Text,
		}
		mw.updateStatus("Processing payment...")
		go func() {
			_, err := mw.state.Checkout(context.Background(), customer)
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(err, mw.Window)
					mw.updateStatus("Payment failed")
					return
				}
				mw.updateStatus("Payment complete")
			})
		}()
	}, mw.Window)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Seat Map Designer",
		fmt.Sprintf("Seat Map Designer v%s\n\n"+
			"Design venue seat layouts and sell tickets from the same map.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
