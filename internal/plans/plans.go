package plans

// Plan é um plano de assinatura oferecido na etapa de pagamento.
type Plan struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Features    []string
}

var All = []Plan{
	{
		ID:          "basic",
		Name:        "Básico",
		Price:       49.9,
		Description: "Para barbearias iniciantes",
		Features:    []string{"Até 2 barbeiros", "Agendamentos ilimitados", "Suporte básico"},
	},
	{
		ID:          "pro",
		Name:        "Profissional",
		Price:       99.9,
		Description: "Para barbearias em crescimento",
		Features:    []string{"Até 5 barbeiros", "Relatórios avançados", "Suporte prioritário"},
	},
	{
		ID:          "enterprise",
		Name:        "Empresarial",
		Price:       199.9,
		Description: "Para redes de barbearias",
		Features:    []string{"Barbeiros ilimitados", "Multi-unidades", "Suporte VIP"},
	},
}

// ByID resolve um plano; id desconhecido cai no primeiro da lista.
func ByID(id string) Plan {
	for _, p := range All {
		if p.ID == id {
			return p
		}
	}
	return All[0]
}
