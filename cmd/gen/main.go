package main

import (
	"ludoteca/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LoanModel{},
		model.GameModel{},
		model.ClientModel{},
		model.LoanEventModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
