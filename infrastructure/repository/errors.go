package repository

import "errors"

// ErrNotFound indica que o registro referenciado não existe no armazenamento.
var ErrNotFound = errors.New("registro não encontrado")
