// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-minesweeper/internal/session"
	"go-minesweeper/internal/utils"
	"go-minesweeper/internal/viewmodel"
)

var hoverOverlayColor = color.RGBA{255, 255, 255, 40}

// BoardRenderer keeps a pre-rendered image of the grid and repaints only
// the cells whose display changed since the last Sync.
type BoardRenderer struct {
	geom       utils.GridGeometry // screen placement
	local      utils.GridGeometry // same grid with origin at (0, 0)
	colors     *BoardColors
	fontFace   font.Face
	fillImg    *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	boardImage *ebiten.Image
	last       viewmodel.Snapshot
}

func NewBoardRenderer(geom utils.GridGeometry, fontFace font.Face, colors *BoardColors) *BoardRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	local := geom
	local.OriginX, local.OriginY = 0, 0
	side := geom.Width()

	return &BoardRenderer{
		geom:       geom,
		local:      local,
		colors:     colors,
		fontFace:   fontFace,
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 8),
		fillIs:     make([]uint16, 0, 12),
		boardImage: ebiten.NewImage(side, side),
	}
}

// CellAt maps a cursor position to the cell under it.
func (r *BoardRenderer) CellAt(x, y int) (row, col int, ok bool) {
	return r.geom.ScreenToCell(x, y)
}

// Invalidate forces the next Sync to repaint every cell.
func (r *BoardRenderer) Invalidate() {
	r.last = viewmodel.Snapshot{}
}

// Sync brings the pre-rendered grid up to date with snap and returns
// how many cells were repainted.
func (r *BoardRenderer) Sync(snap viewmodel.Snapshot) int {
	if r.last.Size != snap.Size {
		r.boardImage.Fill(r.colors.BackgroundColor)
	}
	changes := viewmodel.Diff(r.last, snap)
	for _, ch := range changes {
		r.drawCell(r.boardImage, ch.Row, ch.Col, ch.To)
	}
	r.last = snap
	return len(changes)
}

// Draw blits the grid and highlights the hidden cell under the cursor
// while the session is still in progress.
func (r *BoardRenderer) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.geom.OriginX), float64(r.geom.OriginY))
	screen.DrawImage(r.boardImage, op)

	if r.last.Outcome != session.InProgress {
		return
	}
	row, col, ok := r.geom.ScreenToCell(cursorX, cursorY)
	if !ok || r.last.At(row, col).State == viewmodel.Revealed {
		return
	}
	x, y := r.geom.CellOrigin(row, col)
	s := float32(r.geom.CellSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), s, s, hoverOverlayColor, false)
}

func (r *BoardRenderer) drawCell(target *ebiten.Image, row, col int, v viewmodel.CellView) {
	x, y := r.local.CellOrigin(row, col)
	fx, fy, s := float32(x), float32(y), float32(r.local.CellSize)

	bg := r.colors.HiddenCellColor
	switch {
	case v.State == viewmodel.Mine && v.Detonated:
		bg = r.colors.MineCellColor
	case v.State == viewmodel.Revealed || v.State == viewmodel.Mine:
		bg = r.colors.RevealedCellColor
	}
	vector.DrawFilledRect(target, fx, fy, s, s, bg, false)
	if v.State == viewmodel.Hidden || v.State == viewmodel.Flagged {
		// darker bottom and right edges make the cell look raised
		edge := DarkenColor(bg)
		vector.DrawFilledRect(target, fx, fy+s-3, s, 3, edge, false)
		vector.DrawFilledRect(target, fx+s-3, fy, 3, s, edge, false)
	}

	switch v.State {
	case viewmodel.Flagged:
		r.drawFlag(target, fx, fy, s)
	case viewmodel.Revealed:
		if v.Count > 0 {
			r.drawLabel(target, strconv.Itoa(v.Count), fx+s/2, fy+s/2, r.colors.NumberColor(v.Count))
		}
	case viewmodel.Mine:
		vector.DrawFilledCircle(target, fx+s/2, fy+s/2, s*0.28, r.colors.MineColor, true)
		vector.StrokeRect(target, fx+1, fy+1, s-2, s-2, r.colors.StrokeWidth, r.colors.MineColor, false)
	}
}

func (r *BoardRenderer) drawFlag(target *ebiten.Image, fx, fy, s float32) {
	poleX := fx + s*0.35
	poleW := s * 0.06
	vector.DrawFilledRect(target, poleX, fy+s*0.2, poleW, s*0.6, r.colors.MineColor, false)

	path := vector.Path{}
	path.MoveTo(poleX+poleW, fy+s*0.2)
	path.LineTo(fx+s*0.75, fy+s*0.35)
	path.LineTo(poleX+poleW, fy+s*0.5)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := r.colors.FlagColor.RGBA()
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(cr) / 0xffff
		r.fillVs[i].ColorG = float32(cg) / 0xffff
		r.fillVs[i].ColorB = float32(cb) / 0xffff
		r.fillVs[i].ColorA = float32(ca) / 0xffff
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *BoardRenderer) drawLabel(target *ebiten.Image, label string, cx, cy float32, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	y := int(cy) + bounds.Dy()/2 - bounds.Max.Y
	text.Draw(target, label, r.fontFace, x, y, clr)
}
