package directory

import (
	"fmt"

	"github.com/petcaremt/petcare-api/internal/models"
)

const (
	// FallbackPrice é exibido quando o cuidador não tem nenhuma tarifa cadastrada.
	FallbackPrice = "R$ 50,00/dia"

	DefaultType      = "Cuidador"
	DefaultAbout     = "Cuidador experiente e apaixonado por animais."
	PlaceholderImage = "/placeholder-pet.jpg"

	// Distância mockada até haver cálculo por coordenadas.
	MockDistance = "2.5 km"
)

// DisplayPrice escolhe a tarifa exibida por prioridade estrita:
// diária, depois hora, semana e mês. O sufixo sempre corresponde à
// tarifa escolhida.
func DisplayPrice(s *models.Sitter) string {
	switch {
	case s.DayRate != nil:
		return fmt.Sprintf("R$ %.2f/dia", *s.DayRate)
	case s.HourlyRate != nil:
		return fmt.Sprintf("R$ %.2f/hora", *s.HourlyRate)
	case s.WeekRate != nil:
		return fmt.Sprintf("R$ %.2f/semana", *s.WeekRate)
	case s.MonthRate != nil:
		return fmt.Sprintf("R$ %.2f/mês", *s.MonthRate)
	}
	return FallbackPrice
}
