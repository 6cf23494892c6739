package utils

import qrcode "github.com/skip2/go-qrcode"

// OrderQR génère le QR code PNG du lien de suivi d'une commande, affiché sur
// la vue de confirmation.
func OrderQR(trackingURL string) ([]byte, error) {
	return qrcode.Encode(trackingURL, qrcode.Medium, 256)
}
