package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/validation"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// NavItem é um item da barra lateral do painel.
type NavItem struct {
	Label string
	Path  string
}

var sidebar = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Fila de Espera", Path: "/fila-de-espera"},
	{Label: "Nova transação", Path: "/vendas/nova-transacao"},
	{Label: "Estoque", Path: "/estoque"},
	{Label: "Clientes", Path: "/dashboard/clientes"},
	{Label: "Staff", Path: "/staff"},
}

// Client é um cliente da barbearia listado no painel.
type Client struct {
	Name       string
	Phone      string
	LastVisit  string
	TotalSpent string
}

// Dados de demonstração até o painel ser ligado na API.
var demoClients = []Client{
	{Name: "Carlos Silva", Phone: "(11) 91234-5678", LastVisit: "12/08/2026", TotalSpent: "R$ 250,00"},
	{Name: "João Pereira", Phone: "(11) 98877-1122", LastVisit: "05/08/2026", TotalSpent: "R$ 180,00"},
	{Name: "Marcos Souza", Phone: "(21) 99911-3344", LastVisit: "28/07/2026", TotalSpent: "R$ 320,00"},
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Title":   "Dashboard",
		"Sidebar": sidebar,
		"Active":  "/",
	})
}

func (h *DashboardHandler) Clients(c *gin.Context) {
	c.HTML(http.StatusOK, "clients", gin.H{
		"Title":   "Clientes",
		"Sidebar": sidebar,
		"Active":  "/dashboard/clientes",
		"Clients": demoClients,
	})
}

func (h *DashboardHandler) NewSalePage(c *gin.Context) {
	c.HTML(http.StatusOK, "new_sale", gin.H{
		"Title":   "Nova transação",
		"Sidebar": sidebar,
		"Active":  "/vendas/nova-transacao",
		"Form":    validation.SaleForm{},
		"Errors":  map[string]string{},
	})
}

// NewSale registra uma venda do dia. Por enquanto só valida e confirma;
// a persistência chega junto com o módulo de vendas da API.
func (h *DashboardHandler) NewSale(c *gin.Context) {
	var form validation.SaleForm
	_ = c.ShouldBind(&form)

	if errs := validation.Struct(form); len(errs) > 0 {
		c.HTML(http.StatusUnprocessableEntity, "new_sale", gin.H{
			"Title":   "Nova transação",
			"Sidebar": sidebar,
			"Active":  "/vendas/nova-transacao",
			"Form":    form,
			"Errors":  errs,
		})
		return
	}

	c.HTML(http.StatusOK, "new_sale", gin.H{
		"Title":   "Nova transação",
		"Sidebar": sidebar,
		"Active":  "/vendas/nova-transacao",
		"Form":    validation.SaleForm{},
		"Errors":  map[string]string{},
		"Flashes": []Flash{{Kind: "success", Message: "Venda registrada com sucesso!"}},
	})
}
