package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/httperr"
)

// Largura máxima das fotos da vitrine; acima disso reduzimos mantendo
// a proporção.
const maxWidth = 1280

const webpQuality = 80

// ProcessImage decodifica a foto enviada (jpeg/png/gif), reduz se
// preciso e devolve os bytes reencodados em webp.
func ProcessImage(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxWidth {
		h := bounds.Dy() * maxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
