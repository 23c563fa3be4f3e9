package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petcaremt/petcare-api/internal/models"
)

func rate(v float64) *float64 {
	return &v
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		name   string
		sitter models.Sitter
		want   string
	}{
		{
			name:   "diária tem prioridade sobre hora",
			sitter: models.Sitter{DayRate: rate(80), HourlyRate: rate(45)},
			want:   "R$ 80.00/dia",
		},
		{
			name:   "hora quando não há diária",
			sitter: models.Sitter{HourlyRate: rate(45), WeekRate: rate(300)},
			want:   "R$ 45.00/hora",
		},
		{
			name:   "semana quando não há diária nem hora",
			sitter: models.Sitter{WeekRate: rate(300), MonthRate: rate(1000)},
			want:   "R$ 300.00/semana",
		},
		{
			name:   "mês como última tarifa",
			sitter: models.Sitter{MonthRate: rate(1000)},
			want:   "R$ 1000.00/mês",
		},
		{
			name:   "sem tarifa usa o preço padrão",
			sitter: models.Sitter{},
			want:   FallbackPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPrice(&tt.sitter))
		})
	}
}
