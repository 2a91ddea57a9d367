package chess

import "strings"

// Render draws the snapshot as eight rows, rank 8 first, followed by the
// file labels:
//
//	8|r|n|b|q|k|b|n|r|
//	...
//	  a b c d e f g h
func Render(s *Snapshot, g Glyphs) string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('0' + BoardSize - row))
		sb.WriteByte('|')
		for col := 0; col < BoardSize; col++ {
			sb.WriteRune(s[row*BoardSize+col].Symbol(g))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteByte(byte(FirstFile + col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
