package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 512

type QROptions struct {
	Content string
	Size    int
	FgColor string // Hex code e.g. "#000000"
	BgColor string // Hex code e.g. "#FFFFFF"
}

type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GenerateQRCode encodes opts.Content into a colored PNG and returns it
// as a base64 data URL plus the raw PNG bytes.
func (s *QRService) GenerateQRCode(opts QROptions) (string, []byte, error) {
	qr, err := qrcode.New(opts.Content, qrcode.Medium)
	if err != nil {
		return "", nil, err
	}

	qr.ForegroundColor = s.parseHexColor(opts.FgColor, color.Black)
	qr.BackgroundColor = s.parseHexColor(opts.BgColor, color.White)

	size := opts.Size
	if size <= 0 {
		size = defaultQRSize
	}
	img := qr.Image(size)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", nil, err
	}

	pngBytes := buf.Bytes()
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	return dataURL, pngBytes, nil
}

// GenerateQRCodeSVG generates an SVG string for the QR code.
func (s *QRService) GenerateQRCodeSVG(opts QROptions) (string, error) {
	qr, err := qrcode.New(opts.Content, qrcode.Medium)
	if err != nil {
		return "", err
	}

	qr.DisableBorder = true
	bitmap := qr.Bitmap()
	size := len(bitmap)

	var sb strings.Builder
	// ViewBox matches module count
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, size, size))

	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`, opts.BgColor))

	sb.WriteString(fmt.Sprintf(`<path fill="%s" d="`, opts.FgColor))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if bitmap[y][x] {
				sb.WriteString(fmt.Sprintf("M%d %dh1v1h-1z ", x, y))
			}
		}
	}
	sb.WriteString(`"/>`)

	sb.WriteString("</svg>")
	return sb.String(), nil
}

func (s *QRService) parseHexColor(hex string, defaultColor color.Color) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return defaultColor
	}

	hexToByte := func(c byte) byte {
		if c >= '0' && c <= '9' {
			return c - '0'
		}
		if c >= 'a' && c <= 'f' {
			return c - 'a' + 10
		}
		if c >= 'A' && c <= 'F' {
			return c - 'A' + 10
		}
		return 0
	}

	r := (hexToByte(hex[0]) << 4) + hexToByte(hex[1])
	g := (hexToByte(hex[2]) << 4) + hexToByte(hex[3])
	b := (hexToByte(hex[4]) << 4) + hexToByte(hex[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
