package constants

import (
	"path/filepath"
	"strings"
)

// IsSupportedImageExt diz se a extensão do upload é aceita para foto de aluno.
func IsSupportedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}
