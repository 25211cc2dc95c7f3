package wizard

// Step identifica cada etapa do assistente de configuração da
// barbearia.
type Step int

const (
	StepWelcome Step = iota
	StepBasicInfo
	StepContact
	StepFinalize
)

const StepCount = 4

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepBasicInfo:
		return "basic-info"
	case StepContact:
		return "contact"
	case StepFinalize:
		return "finalize"
	default:
		return "unknown"
	}
}

func (s Step) Title() string {
	switch s {
	case StepWelcome:
		return "Boas-vindas"
	case StepBasicInfo:
		return "Dados básicos"
	case StepContact:
		return "Contato"
	case StepFinalize:
		return "Finalização"
	default:
		return ""
	}
}

func (s Step) Description() string {
	switch s {
	case StepWelcome:
		return "Conheça o BarberFlow"
	case StepBasicInfo:
		return "Informações da barbearia"
	case StepContact:
		return "Meios de comunicação"
	case StepFinalize:
		return "Últimos detalhes"
	default:
		return ""
	}
}

// Tabela de transições explícita: Next e Back só existem onde há
// entrada.
var (
	nextOf = map[Step]Step{
		StepWelcome:   StepBasicInfo,
		StepBasicInfo: StepContact,
		StepContact:   StepFinalize,
	}

	backOf = map[Step]Step{
		StepBasicInfo: StepWelcome,
		StepContact:   StepBasicInfo,
		StepFinalize:  StepContact,
	}
)
