package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateReference gera o código público de um pedido (exibido em recibos).
func GenerateReference() (string, error) {
	return gonanoid.Generate(characters, 10)
}
