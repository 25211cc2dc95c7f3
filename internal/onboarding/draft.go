package onboarding

// Rascunhos do onboarding: dados capturados ao longo do fluxo antes da
// submissão final. A senha nunca entra no rascunho — é write-only,
// segue direto para o backend no cadastro.

type UserDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
}

type FoundationDate struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

type Address struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	State        string `json:"state"`
}

type BusinessHours struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

type BarbershopDraft struct {
	Name           string         `json:"name"`
	Owner          string         `json:"owner"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	FoundationDate FoundationDate `json:"foundationDate"`
	Address        Address        `json:"address"`
	BusinessHours  BusinessHours  `json:"businessHours"`
	HowFound       string         `json:"howFound"`
	Expectations   string         `json:"expectations"`
}

// Patches carregam atualizações parciais: campo nil não é tocado.
// Estruturas aninhadas (Address, BusinessHours, FoundationDate) são
// substituídas inteiras quando presentes — o merge é raso, quem chama
// monta o objeto aninhado completo.

type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Cellphone *string
}

type BarbershopPatch struct {
	Name           *string
	Owner          *string
	Phone          *string
	Email          *string
	FoundationDate *FoundationDate
	Address        *Address
	BusinessHours  *BusinessHours
	HowFound       *string
	Expectations   *string
}

func (d *UserDraft) apply(p UserPatch) {
	setString(&d.FirstName, p.FirstName)
	setString(&d.LastName, p.LastName)
	setString(&d.Email, p.Email)
	setString(&d.Cellphone, p.Cellphone)
}

func (d *BarbershopDraft) apply(p BarbershopPatch) {
	setString(&d.Name, p.Name)
	setString(&d.Owner, p.Owner)
	setString(&d.Phone, p.Phone)
	setString(&d.Email, p.Email)
	setString(&d.HowFound, p.HowFound)
	setString(&d.Expectations, p.Expectations)

	if p.FoundationDate != nil {
		d.FoundationDate = *p.FoundationDate
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.BusinessHours != nil {
		d.BusinessHours = *p.BusinessHours
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func String(v string) *string { return &v }
