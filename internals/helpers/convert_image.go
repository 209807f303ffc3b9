// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const fotoMaxLado = 512 // px

// ConvertToWebP decodifica o upload (png/jpeg/webp), limita o maior lado a
// fotoMaxLado e reencoda em webp. O resultado vai direto para a coluna
// bytea do aluno — não há object storage neste escopo.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o arquivo de imagem: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imagem inválida: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > fotoMaxLado || b.Dy() > fotoMaxLado {
		img = imaging.Fit(img, fotoMaxLado, fotoMaxLado, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("falha ao converter para webp: %w", err)
	}
	return buf.Bytes(), nil
}
