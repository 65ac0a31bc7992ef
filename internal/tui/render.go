package tui

import (
	"fmt"

	"github.com/dgallion1/txtread/internal/session"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const keyHelp = "n/→ next  p/← prev  j/k scroll  r reload  q quit"

var (
	styleHeader  = tcell.StyleDefault.Reverse(true).Bold(true)
	styleBody    = tcell.StyleDefault
	styleFooter  = tcell.StyleDefault.Reverse(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// bodyHeight is the rows left for text under the header and above the
// notice and footer rows.
func bodyHeight(screenHeight int) int {
	return max(screenHeight-3, 0)
}

func (a *App) draw() {
	a.mu.Lock()
	st := a.state
	a.mu.Unlock()

	s := a.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	title := st.title
	if !st.loaded {
		title = "txtread"
	}
	fillRow(s, 0, w, styleHeader)
	drawText(s, 0, 0, w, " "+title, styleHeader)

	rows := bodyHeight(h)
	for i := 0; i < rows && st.scroll+i < len(st.lines); i++ {
		drawText(s, 0, 1+i, w, st.lines[st.scroll+i], styleBody)
	}

	if h >= 3 && st.notice != nil {
		style := styleWarning
		if st.notice.Level == session.LevelError {
			style = styleError
		}
		drawText(s, 0, h-2, w, st.notice.Message, style)
	}

	if h >= 2 {
		status := " -"
		if st.loaded {
			status = fmt.Sprintf(" page %d/%d", st.pageNumber, st.total)
		}
		fillRow(s, h-1, w, styleFooter)
		drawText(s, 0, h-1, w, status+"  "+keyHelp, styleFooter)
	}
	s.Show()
}

func fillRow(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes text at (x, y), clipped to maxWidth cells. Text is
// never wrapped.
func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, maxWidth, "…")
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
}
