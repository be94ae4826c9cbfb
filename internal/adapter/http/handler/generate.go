package handler

//go:generate mockgen -destination mocks/mock_services.go -package mocks github.com/caixaflow/caixaflow/internal/adapter/http/handler AccountService,BalanceReader,ChartService,LedgerService,ReconciliationService,CashFlowService,ClosingService
