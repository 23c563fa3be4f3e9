package petcare

// Dataset embutido usado quando a API está fora do ar. Espelha os cinco
// cuidadores de demonstração do seed, com preços já formatados.
var fallbackCaregivers = []Caregiver{
	{
		ID:       "1",
		Name:     "Ana Silva",
		Type:     "Cuidador de Pets",
		Rating:   4.8,
		Reviews:  127,
		Distance: "2.5 km",
		Price:    "R$ 80/dia",
		Image:    "https://i.pravatar.cc/150?img=44",
		Services: []string{"Cães de grande porte", "Passeio", "Aplica medicação", "Day Care"},
		About:    "Sou apaixonada por animais desde criança e tenho mais de 5 anos de experiência cuidando de pets de todos os tamanhos. Ofereço um ambiente seguro, carinhoso e divertido para seu companheiro.",
	},
	{
		ID:       "2",
		Name:     "Carlos Santos",
		Type:     "Veterinário",
		Rating:   4.9,
		Reviews:  89,
		Distance: "1.8 km",
		Price:    "R$ 120/dia",
		Image:    "https://i.pravatar.cc/150?img=13",
		Services: []string{"Consultas veterinárias", "Emergências", "Medicação", "Cuidados especiais"},
		About:    "Veterinário com 7 anos de experiência, especializado em cuidados domiciliares e emergências. Atendo 24 horas por dia, 7 dias por semana.",
	},
	{
		ID:       "3",
		Name:     "Maria Oliveira",
		Type:     "Pet Sitter",
		Rating:   4.7,
		Reviews:  156,
		Distance: "3.2 km",
		Price:    "R$ 90/dia",
		Image:    "https://i.pravatar.cc/150?img=25",
		Services: []string{"Gatos", "Pets idosos", "Necessidades especiais", "Hospedagem"},
		About:    "Especialista em cuidados com gatos e pets idosos. Tenho experiência com animais que precisam de atenção especial e medicação.",
	},
	{
		ID:       "4",
		Name:     "João Costa",
		Type:     "Dog Walker",
		Rating:   4.6,
		Reviews:  78,
		Distance: "1.2 km",
		Price:    "R$ 60/dia",
		Image:    "https://i.pravatar.cc/150?img=32",
		Services: []string{"Passeios", "Exercícios", "Raças grandes", "Atividades"},
		About:    "Especialista em passeios e exercícios para cães ativos. Trabalho principalmente com raças grandes que precisam de muita atividade física.",
	},
	{
		ID:       "5",
		Name:     "Lucia Ferreira",
		Type:     "Cuidador Especializado",
		Rating:   4.8,
		Reviews:  94,
		Distance: "4.1 km",
		Price:    "R$ 100/dia",
		Image:    "https://i.pravatar.cc/150?img=18",
		Services: []string{"Pets idosos", "Necessidades especiais", "Medicação", "Fisioterapia"},
		About:    "Cuidadora especializada em pets idosos e com necessidades especiais. Ofereço serviços de fisioterapia e cuidados médicos básicos.",
	},
}

// FallbackCaregivers devolve uma cópia do dataset embutido.
func FallbackCaregivers() []Caregiver {
	out := make([]Caregiver, len(fallbackCaregivers))
	copy(out, fallbackCaregivers)
	return out
}

// FallbackCaregiverDetail devolve a entrada do dataset com o id dado, ou
// a primeira entrada quando o id não existe no dataset.
func FallbackCaregiverDetail(id string) CaregiverDetail {
	entry := fallbackCaregivers[0]
	for _, c := range fallbackCaregivers {
		if c.ID == id {
			entry = c
			break
		}
	}
	return CaregiverDetail{Caregiver: entry}
}
