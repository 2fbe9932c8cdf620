package level

// DecFormat writes num in decimal right-aligned in width characters. With
// zeroPad every position is a digit; otherwise the digits stop at the most
// significant one and the rest stays blank. Digits beyond width are dropped.
func DecFormat(num, width int, zeroPad bool) string {
	buf := blank(width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(num%10) + '0'
		num /= 10
		if !zeroPad && num == 0 {
			break
		}
	}
	return string(buf)
}

// HexFormat is DecFormat in uppercase hexadecimal.
func HexFormat(num int32, width int, zeroPad bool) string {
	const digits = "0123456789ABCDEF"
	buf := blank(width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = digits[num&15]
		num >>= 4
		if !zeroPad && num == 0 {
			break
		}
	}
	return string(buf)
}

func blank(width int) []byte {
	buf := make([]byte, max(width, 0))
	for i := range buf {
		buf[i] = ' '
	}
	return buf
}
