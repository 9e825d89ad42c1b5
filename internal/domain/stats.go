package domain

// DashboardStats agrega os contadores exibidos nos painéis. No escopo
// global TotalClients é o total de clientes cadastrados; no escopo de um
// cliente o campo é sempre zero (sentinela fixa do painel do cliente).
type DashboardStats struct {
	TotalClients       int     `json:"totalClients"`
	TotalProducts      int     `json:"totalProducts"`
	ApprovedAgreements int     `json:"approvedAgreements"`
	PendingInvoices    int     `json:"pendingInvoices"`
	PaidInvoices       int     `json:"paidInvoices"`
	TotalRevenue       float64 `json:"totalRevenue"`
}
