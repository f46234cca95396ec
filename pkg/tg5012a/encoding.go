package tg5012a

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const terminator = '\n'

var asciiSet = runes.In(&unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0x00, Hi: unicode.MaxASCII, Stride: 1}},
	LatinOffset: 1,
})

// encodeLine кодирует строку команды в 7-битный ASCII и добавляет терминатор.
func encodeLine(line string) ([]byte, error) {
	if i := strings.IndexFunc(line, func(r rune) bool { return !asciiSet.Contains(r) }); i >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrNonASCII, line, i)
	}
	res, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(line))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonASCII, err)
	}
	return append(res, terminator), nil
}

// decodeLine переводит строку ответа прибора в UTF-8 и обрезает пробелы и
// символы конца строки. Байты вне 7-битного ASCII - ошибка чтения.
func decodeLine(data []byte) (string, error) {
	for i, b := range data {
		if b > unicode.MaxASCII {
			return "", fmt.Errorf("%w: non-ASCII byte 0x%02x at offset %d", ErrRead, b, i)
		}
	}
	r, err := charset.NewReaderLabel("us-ascii", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	res, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(res)), nil
}

// formatNumber форматирует число в кратчайшем виде ("1e-08", "0.01", "50").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseStatusCode разбирает ответ QER?/EER?.
func parseStatusCode(cmd, resp string) (int, error) {
	code, err := strconv.Atoi(resp)
	if err != nil {
		return 0, fmt.Errorf("%w: %s returned %q", ErrRead, cmd, resp)
	}
	return code, nil
}
