// Package httperr concentra o contrato de erro da API: códigos de
// negócio estáveis vindos do domínio e o envelope JSON dos handlers.
package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por código
// estável ("truck_not_found", "invalid_timezone", ...). Handlers mapeiam
// o código para status HTTP e mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
