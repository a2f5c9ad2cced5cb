// Package qrcode genera los códigos QR de mesa que enlazan al menú público.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Generator produce el PNG del QR de una mesa. El QR codifica la URL del
// menú público con la mesa preseleccionada.
type Generator struct {
	baseURL string
}

// NewGenerator construye el generador con la URL pública base (sin slash final).
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// TableMenuPNG devuelve el PNG (256×256, corrección media) del QR de la mesa.
func (g *Generator) TableMenuPNG(restaurantID, tableID string) ([]byte, error) {
	url := fmt.Sprintf("%s/menu?restaurant=%s&table=%s", g.baseURL, restaurantID, tableID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr: generar png: %w", err)
	}
	return png, nil
}
