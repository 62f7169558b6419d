package dto

// RegistrarVendaRequest registra a venda de uma peça.
// A pré-condição quantidade ≤ estoque é responsabilidade do chamador; o motor
// não aplica clamp e o estoque pode ficar negativo se ela for ignorada.
type RegistrarVendaRequest struct {
	PecaID     string `json:"pieceId"  validate:"required"`
	Quantidade int    `json:"quantity" validate:"required,min=1"`
}
