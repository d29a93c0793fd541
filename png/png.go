package png

import "github.com/skip2/go-qrcode"

const defaultSize = 300

func Qr(content string) ([]byte, error) {
	return QrWithSize(content, defaultSize)
}

func QrWithSize(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
