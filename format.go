package ringlog

import "strconv"

// appendFileLine renders rec in the persistent line format:
//
//	2006-01-02 15:04:05 LEVEL [cat] file:line: message\n
//
// with the level name padded to width 5.
func appendFileLine(buf []byte, rec record) []byte {
	buf = rec.when.AppendFormat(buf, fileTimeLayout)
	buf = append(buf, ' ')
	buf = append(buf, rec.level.padded()...)
	buf = appendLocation(buf, rec)
	buf = append(buf, rec.message...)
	buf = append(buf, '\n')
	return buf
}

// appendConsoleLine renders the same fields with time-of-day only.
// With color enabled, the level name is wrapped in a per-level color
// and the bracketed prefix in bright black, reset before the message.
func appendConsoleLine(buf []byte, rec record, color bool) []byte {
	buf = rec.when.AppendFormat(buf, consoleTimeLayout)
	buf = append(buf, ' ')
	if color {
		buf = append(buf, rec.level.color()...)
		buf = append(buf, rec.level.padded()...)
		buf = append(buf, colorReset...)
		buf = append(buf, ' ')
		buf = append(buf, colorPrefix...)
		buf = append(buf, '[')
		buf = append(buf, rec.category...)
		buf = append(buf, "] "...)
		buf = append(buf, rec.file...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(rec.line), 10)
		buf = append(buf, ':')
		buf = append(buf, colorReset...)
		buf = append(buf, ' ')
	} else {
		buf = append(buf, rec.level.padded()...)
		buf = appendLocation(buf, rec)
	}
	buf = append(buf, rec.message...)
	buf = append(buf, '\n')
	return buf
}

func appendLocation(buf []byte, rec record) []byte {
	buf = append(buf, " ["...)
	buf = append(buf, rec.category...)
	buf = append(buf, "] "...)
	buf = append(buf, rec.file...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(rec.line), 10)
	buf = append(buf, ": "...)
	return buf
}
