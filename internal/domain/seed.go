package domain

// seedDef is one row of the statutory default chart.
type seedDef struct {
	code string
	name string
	typ  CategoryType
}

// Default statutory chart of accounts. Roots 1-5, 8 and 9 are fixed business
// sections; 9.2.01.001/9.2.01.002 are the reserved transfer leaves every
// transfer pair books against.
var defaultChart = []seedDef{
	{"1", "RECEITAS", CategoryIncome},
	{"1.1", "RECEITAS OPERACIONAIS", CategoryIncome},
	{"1.1.01", "VENDA DIRETA", CategoryIncome},
	{"1.1.01.001", "VENDAS À VISTA", CategoryIncome},
	{"1.1.01.002", "VENDAS A PRAZO", CategoryIncome},
	{"1.1.01.003", "RECEBIMENTO DE VENDA A PRAZO", CategoryIncome},
	{"1.1.01.004", "ESTORNO DE RECEBIMENTO", CategoryExpense},
	{"1.1.01.005", "DEVOLUÇÕES DE VENDAS À VISTA", CategoryExpense},
	{"1.1.02", "FINANCEIRAS", CategoryIncome},
	{"1.1.02.001", "CHEQUES DEVOLVIDOS", CategoryExpense},
	{"1.1.02.002", "JUROS RECEBIDOS POR ATRASO DE PAGAMENTO", CategoryIncome},
	{"1.1.02.004", "RENDIMENTOS DE APLICAÇÕES FINANCEIRAS", CategoryIncome},
	{"1.1.03", "OUTRAS RECEITAS", CategoryIncome},
	{"1.1.03.001", "RECEITA COM ALUGUÉIS", CategoryIncome},
	{"1.1.03.003", "OUTRAS RECEITAS EVENTUAIS", CategoryIncome},
	{"1.1.03.004", "DIFERENÇA POSITIVA DE CAIXA", CategoryIncome},

	{"2", "CUSTOS DE VENDA E SERVIÇOS", CategoryExpense},
	{"2.1", "CUSTOS OPERACIONAIS", CategoryExpense},
	{"2.1.01", "CUSTO DA MERCADORIA VENDIDA (CMV)", CategoryExpense},
	{"2.1.01.001", "PAGAMENTO DE FORNECEDORES", CategoryExpense},
	{"2.1.01.002", "EMBALAGEM", CategoryExpense},
	{"2.1.01.003", "FRETE ENTREGA DE VENDAS/COMPRAS (CMV)", CategoryExpense},
	{"2.1.01.004", "ESTORNO PAGAMENTO FORNECEDORES", CategoryIncome},
	{"2.1.03", "IMPOSTOS SOBRE VENDAS E SERVIÇOS", CategoryExpense},
	{"2.1.03.001", "SIMPLES NACIONAL", CategoryExpense},
	{"2.1.03.002", "ISS", CategoryExpense},
	{"2.1.03.003", "ICMS / ICMS-ST", CategoryExpense},
	{"2.1.04", "OUTROS CUSTOS VARIÁVEIS", CategoryExpense},
	{"2.1.04.001", "COMISSÕES DE VENDEDORES", CategoryExpense},
	{"2.1.04.002", "TAXA ADM CARTÃO CRÉDITO", CategoryExpense},
	{"2.1.04.003", "TAXA ADM CARTÃO DÉBITO", CategoryExpense},
	{"2.1.04.004", "TAXA ADM PIX", CategoryExpense},

	{"3", "DESPESAS", CategoryExpense},
	{"3.1", "DESPESAS OPERACIONAIS", CategoryExpense},
	{"3.1.01", "MANUTENCAO DA OPERACAO", CategoryExpense},
	{"3.1.01.001", "ÁGUA/ESGOTO", CategoryExpense},
	{"3.1.01.002", "ALUGUEL", CategoryExpense},
	{"3.1.01.003", "ENERGIA ELÉTRICA", CategoryExpense},
	{"3.1.01.004", "HONORÁRIOS CONTÁBEIS", CategoryExpense},
	{"3.1.01.007", "TELEFONIA", CategoryExpense},
	{"3.1.02", "PESSOAL", CategoryExpense},
	{"3.1.02.001", "13º SALÁRIO", CategoryExpense},
	{"3.1.02.003", "ALIMENTAÇÃO", CategoryExpense},
	{"3.1.02.006", "FGTS", CategoryExpense},
	{"3.1.02.007", "SALÁRIOS", CategoryExpense},
	{"3.1.02.008", "UNIFORMES", CategoryExpense},
	{"3.1.04", "TRIBUTÁRIAS", CategoryExpense},
	{"3.1.04.001", "IMPOSTOS FEDERAIS", CategoryExpense},
	{"3.1.04.002", "IMPOSTOS ESTADUAIS", CategoryExpense},
	{"3.1.04.003", "IMPOSTOS MUNICIPAIS", CategoryExpense},
	{"3.1.07", "MARKETING", CategoryExpense},
	{"3.1.07.001", "AGENCIA DE MARKETING", CategoryExpense},
	{"3.1.08", "TECNOLOGIA", CategoryExpense},
	{"3.1.08.002", "SISTEMA DE GESTÃO", CategoryExpense},
	{"3.1.08.003", "PROVEDOR DE INTERNET", CategoryExpense},
	{"3.1.09", "BANCÁRIOS", CategoryExpense},
	{"3.1.09.001", "TARIFA DE COBRANÇA", CategoryExpense},
	{"3.1.09.002", "ESTORNO DE TAXA BANCÁRIA", CategoryIncome},
	{"3.1.11", "FINANCEIROS", CategoryExpense},
	{"3.1.11.001", "IOF", CategoryExpense},
	{"3.1.11.003", "DIFERENÇA NEGATIVA DE CAIXA", CategoryExpense},

	{"4", "DESPESAS FINANCEIRAS NÃO OPERACIONAIS", CategoryExpense},
	{"4.1", "DESPESAS COM JUROS", CategoryExpense},
	{"4.1.01", "CUSTO COM JUROS", CategoryExpense},
	{"4.1.01.001", "JUROS DE EMPRESTIMOS", CategoryExpense},
	{"4.1.01.003", "JUROS PAGOS POR ATRASO DE PAGAMENTO", CategoryExpense},

	{"5", "OPERAÇÕES PATRIMONIAIS", CategoryExpense},
	{"5.1", "IMOBILIZACAO DE CAPITAL", CategoryExpense},
	{"5.1.01", "IMOBILIZADO", CategoryExpense},
	{"5.1.01.001", "MÓVEIS/EQUIPAMENTOS", CategoryExpense},
	{"5.1.01.004", "VEÍCULOS", CategoryExpense},
	{"5.2", "FINANCIAMENTO DA OPERAÇÃO", CategoryExpense},
	{"5.2.01", "TOMADA", CategoryIncome},
	{"5.2.01.001", "TOMADA DE EMPRÉSTIMOS - ALAVANCAGEM", CategoryIncome},
	{"5.2.02", "PAGAMENTO", CategoryExpense},
	{"5.2.02.001", "PAGAMENTO DE EMPRÉSTIMOS - ALAVANCAGEM", CategoryExpense},
	{"5.4", "MOVIMENTAÇÃO DOS SÓCIOS", CategoryExpense},
	{"5.4.01", "DISTRIBUIÇÃO DE LUCROS", CategoryExpense},
	{"5.4.01.001", "RETIRADAS DOS SÓCIOS", CategoryExpense},
	{"5.4.02", "CAPITALIZAÇÃO", CategoryExpense},
	{"5.4.02.001", "INJEÇÃO DE CAPITAL", CategoryIncome},

	{"8", "MOVIMENTAÇÃO COMPLEMENTARES", CategoryExpense},
	{"8.1", "MOVIMENTAÇÃO NÃO OPERACIONAL", CategoryExpense},
	{"8.1.01", "MOVIMENTAÇÃO DE TERCEIROS", CategoryExpense},
	{"8.1.01.001", "CRÉDITO DE TERCEIROS", CategoryIncome},
	{"8.1.01.002", "DÉBITO DE TERCEIROS", CategoryExpense},

	{"9", "OPERAÇÕES PERMUTATIVAS", CategoryExpense},
	{"9.2", "OPERAÇÕES DE APOIO À OPERAÇÃO", CategoryExpense},
	{"9.2.01", "TRANSFERÊNCIAS", CategoryExpense},
	{"9.2.01.001", "TRANSFERENCIA CRÉDITO", CategoryIncome},
	{"9.2.01.002", "TRANSFERENCIA DÉBITO", CategoryExpense},
}

// DefaultChart builds the statutory seed categories with every derived field
// filled and the protection flags locked.
func DefaultChart() []*Category {
	out := make([]*Category, 0, len(defaultChart))

	for _, d := range defaultChart {
		c := &Category{
			Code:   d.code,
			Name:   d.name,
			Type:   d.typ,
			Active: true,
		}
		c.Enrich()

		protected := SeedProtected(c.Code)
		c.IsSystem = protected
		c.IsEditable = !protected
		c.CanDelete = !protected

		out = append(out, c)
	}

	return out
}
