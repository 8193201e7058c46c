package executor

import (
	"strings"
	"unicode"

	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/search"
	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/parser"
	"github.com/kiahjh/raven/internal/vim/register"
)

// applyAction dispatches the fixed, motion-less/text-object-less action
// set. toggle-case is special: while a visual selection is active it acts
// on the whole selection instead of N characters at the cursor.
func applyAction(s *State, cmd *parser.Command) Result {
	if cmd.Action == "toggle-case" && s.Visual != nil {
		return applyVisualToggleCase(s)
	}

	switch cmd.Action {
	case "insert":
		s.Mode = cursor.ModeInsert
		return Result{ModeChanged: true}
	case "insert-bol":
		s.Cur = s.Cur.MoveTo(motion.FirstNonBlank(s.Buf, s.Cur.Pos))
		s.Mode = cursor.ModeInsert
		return Result{ModeChanged: true}
	case "append":
		target := s.Cur.Pos
		if max := s.Buf.LineLength(target.Line); target.Column < max {
			target.Column++
		}
		s.Cur = s.Cur.MoveTo(target)
		s.Mode = cursor.ModeInsert
		return Result{ModeChanged: true}
	case "append-eol":
		s.Cur = s.Cur.MoveTo(buffer.Position{Line: s.Cur.Pos.Line, Column: s.Buf.LineLength(s.Cur.Pos.Line)})
		s.Mode = cursor.ModeInsert
		return Result{ModeChanged: true}
	case "open-below":
		return applyOpenLine(s, true)
	case "open-above":
		return applyOpenLine(s, false)
	case "delete-char":
		return applyDeleteChar(s, cmd.Count, true)
	case "delete-char-before":
		return applyDeleteChar(s, cmd.Count, false)
	case "substitute-char":
		res := applyDeleteChar(s, cmd.Count, true)
		s.Mode = cursor.ModeInsert
		res.ModeChanged = true
		return res
	case "substitute-line":
		return applySubstituteLine(s)
	case "delete-to-eol":
		return applyDeleteToEOL(s, false)
	case "change-to-eol":
		return applyDeleteToEOL(s, true)
	case "join-lines":
		return applyJoinLines(s, cmd.Count)
	case "toggle-case":
		return applyToggleCaseAtCursor(s, cmd.Count)
	case "replace":
		return applyReplaceChar(s, cmd.CharArg, cmd.Count)
	case "undo":
		return applyUndo(s)
	case "redo":
		return applyRedo(s)
	case "paste-after":
		return applyPaste(s, cmd.Register, true)
	case "paste-before":
		return applyPaste(s, cmd.Register, false)
	case "visual-char":
		s.Visual = cursor.NewVisual(s.Cur.Pos, cursor.VisualChar)
		return Result{}
	case "visual-line":
		s.Visual = cursor.NewVisual(s.Cur.Pos, cursor.VisualLine)
		return Result{}
	case "search-next":
		return applySearchJump(s, s.Search.Forward)
	case "search-previous":
		return applySearchJump(s, !s.Search.Forward)
	case "search-word-forward":
		return applyWordSearch(s, true)
	case "search-word-backward":
		return applyWordSearch(s, false)
	case "scroll-center":
		return Result{Viewport: ViewportCenter}
	case "scroll-top":
		return Result{Viewport: ViewportTop}
	case "scroll-bottom":
		return Result{Viewport: ViewportBottom}
	}
	return Result{}
}

func applyOpenLine(s *State, below bool) Result {
	s.pushHistory()
	line := s.Cur.Pos.Line
	var insertPos buffer.Position
	newLine := line
	if below {
		insertPos = buffer.Position{Line: line, Column: s.Buf.LineLength(line)}
		newLine = line + 1
	} else {
		insertPos = buffer.Position{Line: line, Column: 0}
	}
	s.Buf = s.Buf.Insert(insertPos, "\n")
	s.Cur = cursor.New(buffer.Position{Line: newLine, Column: 0})
	s.Mode = cursor.ModeInsert
	return Result{Modified: true, BufferChanged: true, ModeChanged: true}
}

func applyDeleteChar(s *State, count int, forward bool) Result {
	line := s.Buf.Line(s.Cur.Pos.Line)
	col := s.Cur.Pos.Column

	if forward {
		end := col
		for i := 0; i < count && end < len(line); i++ {
			end = buffer.NextGraphemeStart(line, end)
		}
		if end == col {
			return Result{}
		}
		rng := buffer.Range{Start: buffer.Position{Line: s.Cur.Pos.Line, Column: col}, End: buffer.Position{Line: s.Cur.Pos.Line, Column: end}}
		text := textInRange(s.Buf, rng)
		s.pushHistory()
		s.Registers.Set('"', register.Content{Text: text})
		s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
		s.clampCursor()
		return Result{Modified: true, BufferChanged: true}
	}

	start := col
	for i := 0; i < count && start > 0; i++ {
		start = buffer.PrevGraphemeStart(line, start)
	}
	if start == col {
		return Result{}
	}
	rng := buffer.Range{Start: buffer.Position{Line: s.Cur.Pos.Line, Column: start}, End: buffer.Position{Line: s.Cur.Pos.Line, Column: col}}
	text := textInRange(s.Buf, rng)
	s.pushHistory()
	s.Registers.Set('"', register.Content{Text: text})
	s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
	s.Cur = cursor.New(rng.Start)
	return Result{Modified: true, BufferChanged: true}
}

func applySubstituteLine(s *State) Result {
	line := s.Cur.Pos.Line
	text := s.Buf.Line(line)
	modified := text != ""
	if modified {
		s.pushHistory()
		s.Buf = s.Buf.DeleteRange(buffer.Position{Line: line, Column: 0}, buffer.Position{Line: line, Column: len(text)})
	}
	s.Cur = cursor.New(buffer.Position{Line: line, Column: 0})
	s.Mode = cursor.ModeInsert
	return Result{Modified: modified, BufferChanged: modified, ModeChanged: true}
}

func applyDeleteToEOL(s *State, isChange bool) Result {
	line := s.Cur.Pos.Line
	lineLen := s.Buf.LineLength(line)
	if s.Cur.Pos.Column >= lineLen {
		if isChange {
			s.Mode = cursor.ModeInsert
			return Result{ModeChanged: true}
		}
		return Result{}
	}
	rng := buffer.Range{Start: s.Cur.Pos, End: buffer.Position{Line: line, Column: lineLen}}
	text := textInRange(s.Buf, rng)
	s.pushHistory()
	s.Registers.Set('"', register.Content{Text: text})
	s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
	s.clampCursor()
	if isChange {
		s.Mode = cursor.ModeInsert
	}
	return Result{Modified: true, BufferChanged: true, ModeChanged: isChange}
}

func applyJoinLines(s *State, count int) Result {
	line := s.Cur.Pos.Line
	joined := false
	landCol := 0
	for i := 0; i < count; i++ {
		if line+1 >= s.Buf.LineCount() {
			break
		}
		if !joined {
			s.pushHistory()
			joined = true
		}
		left := s.Buf.Line(line)
		right := s.Buf.Line(line + 1)
		trimmed := strings.TrimLeft(right, " \t")
		wsLen := len(right) - len(trimmed)
		s.Buf = s.Buf.DeleteRange(buffer.Position{Line: line, Column: len(left)}, buffer.Position{Line: line + 1, Column: wsLen})
		landCol = len(left)
		if left != "" && trimmed != "" {
			s.Buf = s.Buf.Insert(buffer.Position{Line: line, Column: len(left)}, " ")
			landCol = len(left) + 1
		}
	}
	if !joined {
		return Result{}
	}
	s.Cur = cursor.New(buffer.Position{Line: line, Column: landCol})
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func toggleCase(text string) string {
	out := []rune(text)
	for i, r := range out {
		switch {
		case unicode.IsUpper(r):
			out[i] = unicode.ToLower(r)
		case unicode.IsLower(r):
			out[i] = unicode.ToUpper(r)
		}
	}
	return string(out)
}

func applyToggleCaseAtCursor(s *State, count int) Result {
	line := s.Cur.Pos.Line
	text := s.Buf.Line(line)
	col := s.Cur.Pos.Column
	end := col
	for i := 0; i < count && end < len(text); i++ {
		end = buffer.NextGraphemeStart(text, end)
	}
	if end == col {
		return Result{}
	}
	s.pushHistory()
	toggled := toggleCase(text[col:end])
	s.Buf = s.Buf.DeleteRange(buffer.Position{Line: line, Column: col}, buffer.Position{Line: line, Column: end})
	s.Buf = s.Buf.Insert(buffer.Position{Line: line, Column: col}, toggled)
	s.Cur = cursor.New(buffer.Position{Line: line, Column: end})
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applyVisualToggleCase(s *State) Result {
	rng, ok := visualRange(s)
	s.Visual = nil
	if !ok || rng.IsEmpty() {
		return Result{}
	}
	s.pushHistory()
	text := textInRange(s.Buf, rng)
	s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
	s.Buf = s.Buf.Insert(rng.Start, toggleCase(text))
	s.Cur = cursor.New(rng.Start)
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applyReplaceChar(s *State, ch rune, count int) Result {
	line := s.Buf.Line(s.Cur.Pos.Line)
	col := s.Cur.Pos.Column
	end := col
	for i := 0; i < count; i++ {
		if end >= len(line) {
			return Result{}
		}
		end = buffer.NextGraphemeStart(line, end)
	}
	replacement := strings.Repeat(string(ch), count)
	s.pushHistory()
	s.Buf = s.Buf.DeleteRange(buffer.Position{Line: s.Cur.Pos.Line, Column: col}, buffer.Position{Line: s.Cur.Pos.Line, Column: end})
	s.Buf = s.Buf.Insert(buffer.Position{Line: s.Cur.Pos.Line, Column: col}, replacement)
	s.Cur = cursor.New(buffer.Position{Line: s.Cur.Pos.Line, Column: col + count - 1})
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applyUndo(s *State) Result {
	entry, err := s.History.Undo(s.Buf, s.Cur)
	if err != nil {
		return Result{}
	}
	s.Buf = entry.Buffer
	s.Cur = entry.Cursor
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applyRedo(s *State) Result {
	entry, err := s.History.Redo(s.Buf, s.Cur)
	if err != nil {
		return Result{}
	}
	s.Buf = entry.Buffer
	s.Cur = entry.Cursor
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func endOfInsertedText(start buffer.Position, text string) buffer.Position {
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		return buffer.Position{Line: start.Line, Column: start.Column + len(text)}
	}
	return buffer.Position{Line: start.Line + len(parts) - 1, Column: len(parts[len(parts)-1])}
}

func applyPaste(s *State, regName rune, after bool) Result {
	if regName == 0 {
		regName = '"'
	}
	content := s.Registers.Get(regName)
	if content.Text == "" {
		return Result{}
	}
	s.pushHistory()

	if content.Linewise {
		line := s.Cur.Pos.Line
		insertLine := line
		if after {
			insertLine = line + 1
		}
		text := content.Text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		var insertPos buffer.Position
		if insertLine >= s.Buf.LineCount() {
			insertPos = buffer.Position{Line: line, Column: s.Buf.LineLength(line)}
			text = "\n" + strings.TrimSuffix(text, "\n")
		} else {
			insertPos = buffer.Position{Line: insertLine, Column: 0}
		}
		s.Buf = s.Buf.Insert(insertPos, text)
		s.Cur = cursor.New(motion.FirstNonBlank(s.Buf, buffer.Position{Line: insertLine}))
	} else {
		col := s.Cur.Pos.Column
		if after && s.Buf.LineLength(s.Cur.Pos.Line) > 0 {
			col = buffer.NextGraphemeStart(s.Buf.Line(s.Cur.Pos.Line), col)
		}
		insertPos := buffer.Position{Line: s.Cur.Pos.Line, Column: col}
		s.Buf = s.Buf.Insert(insertPos, content.Text)
		s.Cur = cursor.New(endOfInsertedText(insertPos, content.Text))
	}
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applySearchJump(s *State, forward bool) Result {
	if len(s.Search.Matches) == 0 {
		return Result{}
	}
	m, ok := search.NextMatch(s.Search.Matches, s.Cur.Pos, forward)
	if !ok {
		return Result{}
	}
	s.Cur = cursor.New(m.Start)
	s.clampCursor()
	return Result{}
}

func applyWordSearch(s *State, forward bool) Result {
	word, start, end, ok := search.WordUnderCursor(s.Buf, s.Cur.Pos)
	if !ok {
		return Result{}
	}
	matches := search.FindAll(s.Buf, word)
	s.Search = SearchState{Pattern: word, Forward: forward, Matches: matches}

	anchor := buffer.Position{Line: s.Cur.Pos.Line, Column: end}
	if !forward {
		anchor = buffer.Position{Line: s.Cur.Pos.Line, Column: start}
	}
	m, ok2 := search.NextMatch(matches, anchor, forward)
	if !ok2 {
		return Result{}
	}
	s.Cur = cursor.New(m.Start)
	s.clampCursor()
	return Result{}
}
