package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"synapse/canvas"
	"synapse/kernel"
)

// installPanicHandler logs a crashed scene with its stack and leaves a fault
// card on the scene's surface. The kernel has already stopped the task, so
// the card stays up while the other scenes keep animating.
func (s *system) installPanicHandler() {
	s.k.SetPanicHandler(func(info kernel.PanicInfo) {
		s.logf("app: panic in scene %s (task %d): %v", info.Task, info.TaskID, info.Value)
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line == "" {
				continue
			}
			s.logf("%s", line)
		}

		for _, sl := range s.slots {
			if sl.handle.ID() == info.TaskID {
				sl.faulted = true
				drawFault(sl.dst, info)
			}
		}
	})
}

var faultColor = canvas.Alpha(canvas.MustHex("#e53e3e"), 0.85)

func drawFault(dst canvas.Surface, info kernel.PanicInfo) {
	w, h := dst.Size()
	const inset = 12
	lh := dst.LineHeight()

	dst.Clear()
	dst.FillRoundRect(inset, inset, float64(w)-2*inset, float64(h)-2*inset, 8, canvas.Solid(canvas.Alpha(canvas.Black, 0.8)))
	dst.StrokeRoundRect(inset, inset, float64(w)-2*inset, float64(h)-2*inset, 8, 2, faultColor)

	lines := []string{fmt.Sprintf("%s stopped", info.Task)}
	msg := fmt.Sprintf("panic: %v", info.Value)
	cw := dst.MeasureText("0")
	if cw <= 0 {
		cw = 6
	}
	cols := int(float64(w-4*inset) / cw)
	for msg != "" {
		chunk, rest := takeRunes(msg, cols)
		lines = append(lines, chunk)
		msg = strings.TrimLeft(rest, " ")
	}

	y := 2*inset + lh
	for i, line := range lines {
		if y > float64(h-inset) {
			break
		}
		c := canvas.Muted
		if i == 0 {
			c = faultColor
		}
		dst.Text(2*inset, y, line, c)
		y += lh
	}
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
