package usuarios

import (
	"encoding/json"
	"log"
	"os"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/users/auth/model"
	authService "academiafc_backend/internals/features/users/auth/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioSeed struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Role     string `json:"role"`
	AlunoID  string `json:"aluno_id,omitempty"` // só para responsáveis
}

// SeedUsuariosFromJSON provisiona as credenciais iniciais (admin e
// responsáveis). Usuários já existentes são pulados, nunca sobrescritos.
func SeedUsuariosFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de usuários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []UsuarioSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		if !constants.IsKnownRole(data.Role) {
			log.Printf("❌ Papel desconhecido '%s' para '%s', pulado.", data.Role, data.Username)
			continue
		}

		var existing model.UsuarioModel
		if err := db.Where("usuario_username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Usuário '%s' já existe, pulado.", data.Username)
			continue
		}

		var alunoID *uuid.UUID
		if data.Role == constants.RoleResponsavel {
			id, err := uuid.Parse(data.AlunoID)
			if err != nil {
				log.Printf("❌ Responsável '%s' sem aluno_id válido: %v", data.Username, err)
				continue
			}
			alunoID = &id
		}

		// 🔐 Hash da senha antes de gravar
		hashed, err := authService.HashPassword(data.Senha)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Username, err)
			continue
		}

		novo := model.UsuarioModel{
			UsuarioID:       uuid.New(),
			UsuarioUsername: data.Username,
			UsuarioSenha:    hashed,
			UsuarioRole:     data.Role,
			UsuarioAlunoID:  alunoID,
		}

		if err := db.Create(&novo).Error; err != nil {
			log.Printf("❌ Falha ao inserir usuário '%s': %v", data.Username, err)
		} else {
			log.Printf("✅ Usuário '%s' (%s) inserido", data.Username, data.Role)
		}
	}
}
