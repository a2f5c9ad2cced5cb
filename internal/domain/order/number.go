package order

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Alfabeto del sufijo: base32 sin caracteres ambiguos (0/O, 1/I/L).
const suffixAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// SuffixLength longitud del sufijo aleatorio del número de pedido.
const SuffixLength = 4

// MaxNumberRetries tope duro de reintentos ante colisión del número de
// pedido. Con secuencia por tenant + sufijo aleatorio la colisión es
// prácticamente imposible, pero el constraint único de la DB manda.
const MaxNumberRetries = 3

// BuildNumber arma el número de pedido legible:
//
//	ORD-20260829-00042-K7PM
//
// seq proviene de la secuencia por tenant en la DB (monótona, sin ventana
// check-then-insert) y el sufijo aleatorio desliga el número del volumen
// real de pedidos del tenant.
func BuildNumber(date time.Time, seq int64, suffix string) string {
	return fmt.Sprintf("ORD-%s-%05d-%s", date.Format("20060102"), seq, suffix)
}

// RandomSuffix genera el sufijo aleatorio del número de pedido.
func RandomSuffix() (string, error) {
	buf := make([]byte, SuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar sufijo: %w", err)
	}
	out := make([]byte, SuffixLength)
	for i, b := range buf {
		out[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(out), nil
}
