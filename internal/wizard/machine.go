package wizard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/BruksfildServices01/barberflow-web/internal/cep"
	"github.com/BruksfildServices01/barberflow-web/internal/gateway"
	"github.com/BruksfildServices01/barberflow-web/internal/masks"
	"github.com/BruksfildServices01/barberflow-web/internal/onboarding"
	"github.com/BruksfildServices01/barberflow-web/internal/validation"
)

var (
	ErrBusy           = errors.New("submissão em andamento")
	ErrStepInvalid    = errors.New("etapa atual incompleta")
	ErrAtFirstStep    = errors.New("já está na primeira etapa")
	ErrNotFinalStep   = errors.New("submissão só é permitida na última etapa")
	ErrSessionInvalid = errors.New("sessão de onboarding expirada")
)

// Notifier entrega mensagens visíveis ao usuário (toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// AddressLookup resolve um CEP em endereço.
type AddressLookup interface {
	Lookup(ctx context.Context, value string) (*cep.Address, error)
}

// Registrar envia o cadastro final da barbearia ao backend.
type Registrar interface {
	CreateBarbershop(ctx context.Context, in gateway.CreateBarbershopInput) (*gateway.CreateBarbershopInput, error)
}

// Machine dirige o assistente de 4 etapas: etapa atual, gate de
// validade por etapa, flag de loading serializando a submissão e o
// side-effect de busca de CEP.
type Machine struct {
	mu             sync.Mutex
	step           Step
	loading        bool
	form           validation.BarbershopForm
	addressVisible bool

	store     *onboarding.Store
	lookup    AddressLookup
	registrar Registrar
	notify    Notifier
}

func New(store *onboarding.Store, lookup AddressLookup, registrar Registrar, notify Notifier) *Machine {
	m := &Machine{
		step:      StepWelcome,
		store:     store,
		lookup:    lookup,
		registrar: registrar,
		notify:    notify,
	}

	// Retoma os valores do rascunho persistido, se houver.
	m.form = formFromDraft(store.BarbershopData())
	m.addressVisible = m.form.Street != "" && m.form.Neighborhood != "" && m.form.State != ""
	return m
}

func formFromDraft(d onboarding.BarbershopDraft) validation.BarbershopForm {
	return validation.BarbershopForm{
		Name:         d.Name,
		Owner:        d.Owner,
		Phone:        d.Phone,
		Email:        d.Email,
		Month:        d.FoundationDate.Month,
		Year:         d.FoundationDate.Year,
		ZipCode:      d.Address.ZipCode,
		Street:       d.Address.Street,
		Number:       d.Address.Number,
		Complement:   d.Address.Complement,
		Neighborhood: d.Address.Neighborhood,
		State:        d.Address.State,
		Opening:      d.BusinessHours.Opening,
		Closing:      d.BusinessHours.Closing,
		HowFound:     d.HowFound,
		Expectations: d.Expectations,
	}
}

func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

func (m *Machine) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Machine) Form() validation.BarbershopForm {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

func (m *Machine) AddressVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addressVisible
}

// UpdateForm absorve os valores vindos da tela, normaliza as máscaras e
// espelha tudo no rascunho persistido.
func (m *Machine) UpdateForm(ctx context.Context, f validation.BarbershopForm) {
	f.Phone = masks.PhoneNumber(f.Phone)
	f.ZipCode = masks.CEP(f.ZipCode)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))

	m.mu.Lock()
	m.form = f
	if f.Street != "" && f.Neighborhood != "" && f.State != "" {
		m.addressVisible = true
	}
	m.mu.Unlock()

	m.store.SetBarbershopData(ctx, onboarding.BarbershopPatch{
		Name:  onboarding.String(f.Name),
		Owner: onboarding.String(f.Owner),
		Phone: onboarding.String(f.Phone),
		Email: onboarding.String(f.Email),
		FoundationDate: &onboarding.FoundationDate{
			Month: f.Month,
			Year:  f.Year,
		},
		Address: &onboarding.Address{
			ZipCode:      f.ZipCode,
			Street:       f.Street,
			Number:       f.Number,
			Complement:   f.Complement,
			Neighborhood: f.Neighborhood,
			State:        f.State,
		},
		BusinessHours: &onboarding.BusinessHours{
			Opening: f.Opening,
			Closing: f.Closing,
		},
		HowFound:     onboarding.String(f.HowFound),
		Expectations: onboarding.String(f.Expectations),
	})
}

// IsStepValid é o gate de avanço de cada etapa.
func (m *Machine) IsStepValid(s Step) bool {
	m.mu.Lock()
	f := m.form
	m.mu.Unlock()

	switch s {
	case StepWelcome, StepFinalize:
		return true
	case StepBasicInfo:
		return utf8.RuneCountInString(f.Name) >= 3 &&
			f.Month != "" &&
			len(f.Year) == 4 &&
			len(f.ZipCode) == 9 &&
			utf8.RuneCountInString(f.Street) >= 5 &&
			f.Number != "" &&
			utf8.RuneCountInString(f.Neighborhood) >= 3 &&
			utf8.RuneCountInString(f.State) == 2
	case StepContact:
		return len(f.Phone) >= 14 &&
			strings.Contains(f.Email, "@") &&
			f.Opening != "" &&
			f.Closing != ""
	default:
		return false
	}
}

// Next avança uma etapa; barrado se a atual não está válida ou se há
// submissão em voo.
func (m *Machine) Next() error {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return ErrBusy
	}
	current := m.step
	m.mu.Unlock()

	next, ok := nextOf[current]
	if !ok {
		return ErrNotFinalStep
	}
	if !m.IsStepValid(current) {
		return ErrStepInvalid
	}

	m.mu.Lock()
	m.step = next
	m.mu.Unlock()
	return nil
}

func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loading {
		return ErrBusy
	}
	back, ok := backOf[m.step]
	if !ok {
		return ErrAtFirstStep
	}
	m.step = back
	return nil
}

// LookupCEP dispara a busca de endereço quando o campo atinge 8
// dígitos. Sucesso preenche logradouro/bairro/UF e revela os campos
// dependentes; cada categoria de falha gera uma notificação própria e
// mantém os campos escondidos.
func (m *Machine) LookupCEP(ctx context.Context, raw string) error {
	digits := masks.Digits(raw)

	m.mu.Lock()
	m.form.ZipCode = masks.CEP(raw)
	m.mu.Unlock()

	if len(digits) != 8 {
		return nil
	}

	addr, err := m.lookup.Lookup(ctx, digits)
	if err != nil {
		m.mu.Lock()
		m.addressVisible = false
		m.mu.Unlock()

		switch {
		case errors.Is(err, cep.ErrNotFound):
			m.notify.Error("CEP não encontrado. Verifique e tente novamente.")
		case errors.Is(err, cep.ErrUnavailable):
			m.notify.Error("Serviço de CEP indisponível. Tente novamente.")
		default:
			m.notify.Error("Erro ao buscar CEP.")
		}
		return err
	}

	m.mu.Lock()
	m.form.Street = addr.Street
	m.form.Neighborhood = addr.Neighborhood
	m.form.State = addr.State
	m.form.Number = ""
	m.form.Complement = ""
	m.addressVisible = true
	f := m.form
	m.mu.Unlock()

	m.store.SetBarbershopData(ctx, onboarding.BarbershopPatch{
		Address: &onboarding.Address{
			ZipCode:      f.ZipCode,
			Street:       f.Street,
			Neighborhood: f.Neighborhood,
			State:        f.State,
		},
	})
	return nil
}

// Submit envia o rascunho acumulado ao backend. Só dispara na última
// etapa e nunca em paralelo: a flag de loading garante no máximo uma
// submissão em voo.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.step != StepFinalize {
		m.mu.Unlock()
		return ErrNotFinalStep
	}
	if m.loading {
		m.mu.Unlock()
		return ErrBusy
	}
	m.loading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	userEmail := m.store.UserData().Email
	if userEmail == "" {
		return ErrSessionInvalid
	}

	draft := m.store.BarbershopData()
	month, _ := strconv.Atoi(draft.FoundationDate.Month)
	year, _ := strconv.Atoi(draft.FoundationDate.Year)

	_, err := m.registrar.CreateBarbershop(ctx, gateway.CreateBarbershopInput{
		Name:           draft.Name,
		Phone:          draft.Phone,
		Email:          draft.Email,
		UserEmail:      userEmail,
		FoundationDate: gateway.FoundationDate{Month: month, Year: year},
		Address: gateway.BarbershopAddress{
			ZipCode: masks.Digits(draft.Address.ZipCode),
			Street:  draft.Address.Street,
			City:    draft.Address.Neighborhood,
			State:   draft.Address.State,
		},
		BusinessHours: gateway.BarbershopHours{
			OpenTime:  draft.BusinessHours.Opening,
			CloseTime: draft.BusinessHours.Closing,
		},
		Expectation: draft.Expectations,
		FoundUsOn:   draft.HowFound,
	})
	if err != nil {
		m.notify.Error(err.Error())
		return err
	}

	m.notify.Success("Barbearia criada com sucesso!")
	m.store.Clear(ctx)
	return nil
}
