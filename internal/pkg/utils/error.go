package utils

import (
	"errors"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"
)

func GetErrorCode(err error) string {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		return customErr.ErrorCode()
	}
	return "PRESTAMODEFI_INTERNAL_ERROR"
}
