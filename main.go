package main

import (
	"flag"
	"math/rand"
	"strconv"
	"time"

	"github.com/Piripant/sudoku/game"
	"github.com/gonutz/w32/v2"
	"github.com/gonutz/wui/v2"
)

var (
	backColor      = wui.RGB(64, 64, 64)
	borderColor    = wui.RGB(192, 192, 192)
	blockColor     = wui.RGB(192, 64, 64)
	givenColor     = wui.RGB(192, 192, 255)
	certainColor   = wui.RGB(96, 208, 96)
	uncertainColor = wui.RGB(255, 255, 255)
)

var digitKeys = [9]wui.Key{
	wui.Key1, wui.Key2, wui.Key3,
	wui.Key4, wui.Key5, wui.Key6,
	wui.Key7, wui.Key8, wui.Key9,
}

var numpadKeys = [9]wui.Key{
	wui.KeyNum1, wui.KeyNum2, wui.KeyNum3,
	wui.KeyNum4, wui.KeyNum5, wui.KeyNum6,
	wui.KeyNum7, wui.KeyNum8, wui.KeyNum9,
}

func main() {
	box := flag.Int("box", 3, "box size, the board side is box*box")
	givens := flag.Int("givens", 30, "givens target for -minimal puzzles")
	minimal := flag.Bool("minimal", false, "dig for a minimal unique-solution puzzle instead of a forced-move solvable one")
	flag.Parse()

	var g *game.Game
	if *box == 3 {
		policy := game.DigLogic
		if *minimal {
			policy = game.DigMinimal
		}
		n := *givens
		if n < 17 {
			n = 17
		}
		if n > 80 {
			n = 80
		}
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		g = game.New(policy, n, rnd)
	} else {
		g = game.NewEmpty(*box)
	}

	newUI(g).run()
}

// ui owns the window, the layout metrics and the game state. All
// event handlers share this one value.
type ui struct {
	game   *game.Game
	window *wui.Window
	board  *wui.PaintBox

	largeFont  *wui.Font
	mediumFont *wui.Font

	tileSize int
	thin     int
	thick    int

	showHelp bool
}

func newUI(g *game.Game) *ui {
	return &ui{game: g, tileSize: 60}
}

func (u *ui) run() {
	u.applyMetrics()

	u.window = wui.NewWindow()
	u.window.SetResizable(false)
	u.window.SetHasMaxButton(false)
	u.updateTitle()

	u.board = wui.NewPaintBox()
	u.window.Add(u.board)
	u.window.SetInnerSize(u.boardSize(), u.boardSize())
	u.board.SetBounds(0, 0, u.window.InnerWidth(), u.window.InnerHeight())
	u.board.SetAnchors(wui.AnchorMinAndMax, wui.AnchorMinAndMax)
	u.board.SetOnPaint(u.paint)

	side := u.game.Board().Side()
	for d := 1; d <= 9 && d <= side; d++ {
		d := d
		sel := func() {
			u.game.Select(d)
			u.refresh()
		}
		u.window.SetShortcut(sel, digitKeys[d-1])
		u.window.SetShortcut(sel, numpadKeys[d-1])
	}
	u.window.SetShortcut(u.deselect, wui.KeyEscape)
	u.window.SetShortcut(u.toggleHelp, wui.KeyF1)
	u.window.SetShortcut(u.newPuzzle, wui.KeyF2)
	u.window.SetShortcut(u.zoomIn, wui.KeyControl, wui.KeyAdd)
	u.window.SetShortcut(u.zoomIn, wui.KeyControl, wui.KeyOEMPlus)
	u.window.SetShortcut(u.zoomOut, wui.KeyControl, wui.KeySubtract)
	u.window.SetShortcut(u.zoomOut, wui.KeyControl, wui.KeyOEMMinus)

	u.window.SetOnMouseDown(func(button wui.MouseButton, x, y int) {
		if u.showHelp {
			return
		}
		col, row := u.screenToBoard(x, y)
		switch button {
		case wui.MouseButtonLeft:
			u.game.Place(col, row)
		case wui.MouseButtonRight:
			u.game.Remove(col, row)
		default:
			return
		}
		u.refresh()
	})

	// Tab never reaches a shortcut, the window eats it for focus
	// traversal, so catch the raw key message.
	u.window.SetOnMessage(func(window uintptr, msg uint32, w, l uintptr) (handled bool, result uintptr) {
		if msg == w32.WM_KEYDOWN && w == w32.VK_TAB {
			handled = true
			if !u.showHelp && u.game.AutoPlace() {
				u.refresh()
			}
		}
		return
	})

	u.window.Show()
}

func (u *ui) refresh() {
	u.updateTitle()
	u.board.Paint()
}

func (u *ui) updateTitle() {
	if v := u.game.Selected(); v != 0 {
		u.window.SetTitle("Sudoku - placing " + strconv.Itoa(v))
	} else {
		u.window.SetTitle("Sudoku")
	}
}

func (u *ui) deselect() {
	u.game.Select(0)
	u.refresh()
}

func (u *ui) toggleHelp() {
	u.showHelp = !u.showHelp
	u.board.Paint()
}

func (u *ui) newPuzzle() {
	if u.showHelp {
		return
	}
	u.game.Reset()
	u.refresh()
}

func (u *ui) applyMetrics() {
	u.thin = 3
	u.thick = 3 * u.thin

	u.largeFont, _ = wui.NewFont(wui.FontDesc{
		Name:   "Tahoma",
		Height: u.tileSize - u.tileSize/10,
	})

	u.mediumFont, _ = wui.NewFont(wui.FontDesc{
		Name:   "Tahoma",
		Height: u.tileSize / 3,
	})
}

func (u *ui) boardSize() int {
	box := u.game.Board().Box()
	side := u.game.Board().Side()
	return (box+1)*u.thick + (side-box)*u.thin + side*u.tileSize
}

func (u *ui) tileTopLeft(col, row int) (x, y int) {
	box := u.game.Board().Box()
	x = (1+col/box)*(u.thick-u.thin) + col*(u.thin+u.tileSize)
	y = (1+row/box)*(u.thick-u.thin) + row*(u.thin+u.tileSize)
	return
}

func (u *ui) screenToBoard(x, y int) (col, row int) {
	side := u.game.Board().Side()

	best := 9999999
	for c := 0; c < side; c++ {
		cx, _ := u.tileTopLeft(c, 0)
		cx += u.tileSize / 2
		if abs(x-cx) < best {
			col = c
			best = abs(x - cx)
		}
	}

	best = 9999999
	for r := 0; r < side; r++ {
		_, cy := u.tileTopLeft(0, r)
		cy += u.tileSize / 2
		if abs(y-cy) < best {
			row = r
			best = abs(y - cy)
		}
	}

	return
}

func (u *ui) paint(canvas *wui.Canvas) {
	if u.showHelp {
		canvas.FillRect(0, 0, u.boardSize(), u.boardSize(), backColor)
		canvas.SetFont(u.mediumFont)
		canvas.TextRectFormat(0, 0, u.boardSize(), u.boardSize(), `
F1 - Help On/Off
F2 - New Puzzle
Ctrl +/- - Zoom In/Out
1-9 - Select Digit
Escape - Deselect
Left Click - Place Selected Digit
Right Click - Remove Uncertain Digit
Tab - Place One Value Automatically

Green digits are pinned by the current
constraints, white ones could still change.
`, wui.FormatCenter, uncertainColor)
		return
	}

	canvas.FillRect(0, 0, u.boardSize(), u.boardSize(), borderColor)

	side := u.game.Board().Side()
	blocking, blocked := u.game.Blocking()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			x, y := u.tileTopLeft(col, row)

			tile := backColor
			if blocked && blocking.Col == col && blocking.Row == row {
				tile = blockColor
			}
			canvas.FillRect(x, y, u.tileSize, u.tileSize, tile)

			v := u.game.Value(col, row)
			if v == 0 {
				continue
			}

			color := uncertainColor
			if u.game.Fixed(col, row) {
				color = givenColor
			} else if u.game.Tag(col, row) == game.TagCertain {
				color = certainColor
			}

			text := strconv.Itoa(v)
			canvas.SetFont(u.largeFont)
			w, h := canvas.TextExtent(text)
			canvas.TextOut(x+(u.tileSize-w)/2, y+(u.tileSize-h)/2, text, color)
		}
	}
}

func (u *ui) zoom(delta int) {
	u.tileSize += delta
	if u.tileSize < 30 {
		u.tileSize = 30
	}
	u.applyMetrics()
	u.window.SetInnerSize(u.boardSize(), u.boardSize())
	u.board.Paint()
}

func (u *ui) zoomIn()  { u.zoom(10) }
func (u *ui) zoomOut() { u.zoom(-10) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
