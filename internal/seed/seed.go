package seed

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/models"
)

// Run popula o catálogo (especialidades, tipos de serviço, serviços) e os
// cuidadores de demonstração. Idempotente: upsert por nome/email.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if err := seedSpecialties(db); err != nil {
		return err
	}
	if err := seedServiceCatalog(db); err != nil {
		return err
	}
	if err := seedSitters(db); err != nil {
		return err
	}

	logger.Info("seed completed")
	return nil
}

// --------------------------------------------------
// Especialidades
// --------------------------------------------------

var specialties = []models.Specialty{
	{Name: "Day Care", Description: "Oferece day care para pets"},
	{Name: "Hospedagem", Description: "Aceita hospedagem por vários dias"},
	{Name: "Passeio", Description: "Oferece serviços de passeio"},
	{Name: "Visita em Casa", Description: "Visita na casa do pet"},
	{Name: "Aplicação de Medicação", Description: "Capacitado para aplicar medicação"},
	{Name: "Cães de Grande Porte", Description: "Especializado em cães de grande porte"},
	{Name: "Gatos", Description: "Especializado em cuidados com gatos"},
	{Name: "Pets Idosos", Description: "Especializado em pets idosos"},
	{Name: "Necessidades Especiais", Description: "Cuidados especiais para pets com necessidades"},
}

func seedSpecialties(db *gorm.DB) error {
	for _, sp := range specialties {
		var existing models.Specialty
		if err := db.Where("name = ?", sp.Name).
			Attrs(models.Specialty{Description: sp.Description}).
			FirstOrCreate(&existing, models.Specialty{Name: sp.Name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Tipos de serviço + serviços
// --------------------------------------------------

var serviceTypes = []models.ServiceType{
	{Name: "Passeio", Description: "Passeio com o pet"},
	{Name: "Hospedagem", Description: "Hospedagem do pet"},
	{Name: "Day Care", Description: "Cuidado durante o dia"},
	{Name: "Visita em Casa", Description: "Visita na casa do pet"},
	{Name: "Medicação", Description: "Aplicação de medicação"},
}

type serviceSeed struct {
	Name        string
	Description string
	Price       float64
	Duration    int
	TypeName    string
}

var services = []serviceSeed{
	{"Passeio Básico", "Passeio de 30 minutos", 25.00, 30, "Passeio"},
	{"Passeio Longo", "Passeio de 1 hora", 40.00, 60, "Passeio"},
	{"Day Care - Meio Período", "Cuidado por 4 horas", 50.00, 240, "Day Care"},
	{"Day Care - Período Integral", "Cuidado por 8 horas", 80.00, 480, "Day Care"},
	{"Hospedagem - 1 Dia", "Hospedagem por 24 horas", 120.00, 1440, "Hospedagem"},
	{"Visita Domiciliar", "Visita de 1 hora na casa do pet", 35.00, 60, "Visita em Casa"},
	{"Aplicação de Medicação", "Aplicação de medicação prescrita", 20.00, 15, "Medicação"},
}

func seedServiceCatalog(db *gorm.DB) error {
	for _, st := range serviceTypes {
		var existing models.ServiceType
		if err := db.Where("name = ?", st.Name).
			Attrs(models.ServiceType{Description: st.Description}).
			FirstOrCreate(&existing, models.ServiceType{Name: st.Name}).Error; err != nil {
			return err
		}
	}

	for _, svc := range services {
		var st models.ServiceType
		if err := db.Where("name = ?", svc.TypeName).First(&st).Error; err != nil {
			return err
		}

		var existing models.Service
		if err := db.Where("name = ?", svc.Name).
			Attrs(models.Service{
				Description:   svc.Description,
				Price:         svc.Price,
				Duration:      svc.Duration,
				IsActive:      true,
				ServiceTypeID: st.ID,
			}).
			FirstOrCreate(&existing, models.Service{Name: svc.Name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Cuidadores de demonstração
// --------------------------------------------------

type sitterSeed struct {
	Name         string
	Email        string
	Phone        string
	Bio          string
	Experience   string
	Rating       float64
	TotalReviews int
	HourlyRate   float64
	Address      models.Address
	Specialties  []string
}

var sitters = []sitterSeed{
	{
		Name:         "Ana Silva",
		Email:        "ana.silva@email.com",
		Phone:        "(65) 99999-1111",
		Bio:          "Sou apaixonada por animais desde criança e tenho mais de 5 anos de experiência cuidando de pets de todos os tamanhos. Ofereço um ambiente seguro, carinhoso e divertido para seu companheiro.",
		Experience:   "5 anos de experiência com pets",
		Rating:       4.8,
		TotalReviews: 127,
		HourlyRate:   45.00,
		Address: models.Address{
			Street: "Rua das Flores", Number: "123", Complement: "Apto 45",
			Neighborhood: "Centro", City: models.CityCuiaba, ZipCode: "78005-100",
		},
		Specialties: []string{"Day Care", "Hospedagem", "Passeio", "Cães de Grande Porte"},
	},
	{
		Name:         "Carlos Santos",
		Email:        "carlos.santos@email.com",
		Phone:        "(65) 99999-2222",
		Bio:          "Veterinário com 7 anos de experiência, especializado em cuidados domiciliares e emergências. Atendo 24 horas por dia, 7 dias por semana.",
		Experience:   "7 anos como veterinário",
		Rating:       4.9,
		TotalReviews: 89,
		HourlyRate:   60.00,
		Address: models.Address{
			Street: "Av. Historiador Rubens de Mendonça", Number: "456", Complement: "Sala 12",
			Neighborhood: "Bosque da Saúde", City: models.CityCuiaba, ZipCode: "78050-000",
		},
		Specialties: []string{"Aplicação de Medicação", "Necessidades Especiais", "Pets Idosos", "Hospedagem"},
	},
	{
		Name:         "Maria Oliveira",
		Email:        "maria.oliveira@email.com",
		Phone:        "(65) 99999-3333",
		Bio:          "Especialista em cuidados com gatos e pets idosos. Tenho experiência com animais que precisam de atenção especial e medicação.",
		Experience:   "4 anos com gatos e pets idosos",
		Rating:       4.7,
		TotalReviews: 156,
		HourlyRate:   40.00,
		Address: models.Address{
			Street: "Rua dos Pássaros", Number: "789", Complement: "Casa 2",
			Neighborhood: "Goiabeiras", City: models.CityCuiaba, ZipCode: "78032-120",
		},
		Specialties: []string{"Gatos", "Pets Idosos", "Necessidades Especiais", "Visita em Casa"},
	},
	{
		Name:         "João Costa",
		Email:        "joao.costa@email.com",
		Phone:        "(65) 99999-4444",
		Bio:          "Especialista em passeios e exercícios para cães ativos. Trabalho principalmente com raças grandes que precisam de muita atividade física.",
		Experience:   "3 anos como dog walker",
		Rating:       4.6,
		TotalReviews: 78,
		HourlyRate:   35.00,
		Address: models.Address{
			Street: "Rua dos Cães", Number: "321", Complement: "Apto 78",
			Neighborhood: "Cristo Rei", City: models.CityVarzeaGrande, ZipCode: "78118-000",
		},
		Specialties: []string{"Passeio", "Cães de Grande Porte", "Day Care"},
	},
	{
		Name:         "Lucia Ferreira",
		Email:        "lucia.ferreira@email.com",
		Phone:        "(65) 99999-5555",
		Bio:          "Cuidadora especializada em pets idosos e com necessidades especiais. Ofereço serviços de fisioterapia e cuidados médicos básicos.",
		Experience:   "6 anos com pets especiais",
		Rating:       4.8,
		TotalReviews: 94,
		HourlyRate:   50.00,
		Address: models.Address{
			Street: "Rua das Árvores", Number: "654", Complement: "Casa 5",
			Neighborhood: "Jardim das Américas", City: models.CityCuiaba, ZipCode: "78060-600",
		},
		Specialties: []string{"Pets Idosos", "Necessidades Especiais", "Aplicação de Medicação", "Hospedagem"},
	},
}

func seedSitters(db *gorm.DB) error {
	for _, data := range sitters {
		rate := data.HourlyRate

		var sitter models.Sitter
		if err := db.Where("email = ?", data.Email).
			Attrs(models.Sitter{
				Name:         data.Name,
				Phone:        data.Phone,
				Bio:          data.Bio,
				Experience:   data.Experience,
				Rating:       data.Rating,
				TotalReviews: data.TotalReviews,
				HourlyRate:   &rate,
				IsActive:     true,
			}).
			FirstOrCreate(&sitter, models.Sitter{Email: data.Email}).Error; err != nil {
			return err
		}

		address := data.Address
		address.SitterID = &sitter.ID
		var existingAddr models.Address
		if err := db.Where("sitter_id = ?", sitter.ID).
			Attrs(address).
			FirstOrCreate(&existingAddr, models.Address{SitterID: &sitter.ID}).Error; err != nil {
			return err
		}

		if err := linkSpecialties(db, &sitter, data.Specialties); err != nil {
			return err
		}
		if err := linkOfferedServices(db, &sitter, data.Specialties); err != nil {
			return err
		}
	}
	return nil
}

func linkSpecialties(db *gorm.DB, sitter *models.Sitter, names []string) error {
	var specs []models.Specialty
	if err := db.Where("name IN ?", names).Find(&specs).Error; err != nil {
		return err
	}
	return db.Model(sitter).Association("Specialties").Replace(specs)
}

// linkOfferedServices associa ao cuidador os serviços cujo tipo coincide
// com alguma de suas especialidades.
func linkOfferedServices(db *gorm.DB, sitter *models.Sitter, specialtyNames []string) error {
	var svcs []models.Service
	if err := db.
		Joins("JOIN service_types ON service_types.id = services.service_type_id").
		Where("service_types.name IN ?", specialtyNames).
		Find(&svcs).Error; err != nil {
		return err
	}
	if len(svcs) == 0 {
		return nil
	}
	return db.Model(sitter).Association("Services").Replace(svcs)
}
