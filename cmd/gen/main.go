package main

import (
	"canopy/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CustomerModel{},
		model.SupplierModel{},
		model.CustomerUserModel{},
		model.SupplierUserModel{},
		model.RequestModel{},
		model.RequestItemModel{},
		model.SharedPlotModel{},
		model.LandPlotModel{},
		model.QuestionnaireModel{},
		model.QuestionModel{},
		model.OrganizationProfileModel{},
		model.CertificateModel{},
		model.ProductModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
