package seeds

import (
	usuarios "academiafc_backend/internals/seeds/usuarios"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Credenciais iniciais
	usuarios.SeedUsuariosFromJSON(db, "internals/seeds/usuarios/data_usuarios.json")
}
