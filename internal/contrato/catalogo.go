package contrato

// ModeloClausula é o texto-fonte de uma cláusula, com tokens entre
// colchetes que são substituídos na geração. Os modelos pertencem ao
// catálogo e nunca são alterados depois da inicialização.
type ModeloClausula struct {
	ID      string
	Ordinal int
	Titulo  string
	Corpo   string
}

// Catalogo guarda a lista ordenada de modelos de cláusula de cada
// variante. É montado uma única vez na subida do processo e depois só é
// lido, portanto é seguro para leituras concorrentes sem sincronização.
type Catalogo struct {
	modelos map[Variante][]ModeloClausula
}

// ModelosPara devolve os modelos da variante, na ordem dos ordinais.
func (cat *Catalogo) ModelosPara(v Variante) ([]ModeloClausula, error) {
	modelos, ok := cat.modelos[v]
	if !ok {
		return nil, ErrVarianteDesconhecida
	}
	return modelos, nil
}

// NovoCatalogo monta o catálogo padrão da revenda.
func NovoCatalogo() *Catalogo {
	return &Catalogo{modelos: map[Variante][]ModeloClausula{
		VarianteVenda: {
			{
				ID:      "venda-partes",
				Ordinal: 1,
				Titulo:  "Das Partes",
				Corpo: "Pelo presente instrumento particular de compra e venda, de um lado a REVENDA, " +
					"neste ato representada por [NOME_VENDEDOR], e de outro lado [NOME_CLIENTE], " +
					"portador(a) do documento [DOCUMENTO_CLIENTE], residente e domiciliado(a) em " +
					"[ENDERECO_CLIENTE], telefone [TELEFONE_CLIENTE], doravante denominado(a) COMPRADOR(A), " +
					"têm entre si justo e contratado o que segue.",
			},
			{
				ID:      "venda-objeto",
				Ordinal: 2,
				Titulo:  "Do Objeto",
				Corpo: "O presente contrato tem por objeto a venda do veículo marca [MARCA_VEICULO], " +
					"modelo [MODELO_VEICULO], ano [ANO_VEICULO], cor [COR_VEICULO], combustível " +
					"[COMBUSTIVEL_VEICULO], com [KM_VEICULO] km rodados, placa [PLACA_VEICULO], " +
					"chassi [CHASSI_VEICULO].",
			},
			{
				ID:      "venda-preco",
				Ordinal: 3,
				Titulo:  "Do Preço e Forma de Pagamento",
				Corpo: "O COMPRADOR pagará à REVENDA pelo veículo descrito na cláusula anterior o valor " +
					"total de [VALOR_VENDA], na forma ajustada entre as partes no ato da assinatura.",
			},
			{
				ID:      "venda-entrega",
				Ordinal: 4,
				Titulo:  "Da Entrega e Transferência",
				Corpo: "A REVENDA entregará o veículo ao COMPRADOR livre de ônus, com a documentação " +
					"necessária à transferência de propriedade, ficando as despesas de transferência " +
					"junto ao órgão de trânsito a cargo do COMPRADOR.",
			},
			{
				ID:      "venda-estado",
				Ordinal: 5,
				Titulo:  "Do Estado do Veículo",
				Corpo: "O COMPRADOR declara ter vistoriado o veículo, recebendo-o no estado em que se " +
					"encontra, ciente de tratar-se de veículo usado, ressalvada a garantia legal prevista " +
					"no Código de Defesa do Consumidor.",
			},
			{
				ID:      "venda-foro",
				Ordinal: 6,
				Titulo:  "Do Foro",
				Corpo: "Fica eleito o foro da comarca da sede da REVENDA para dirimir quaisquer " +
					"controvérsias oriundas deste contrato, firmado em [DATA_ATUAL].",
			},
		},
		VarianteConsignacao: {
			{
				ID:      "csg-partes",
				Ordinal: 1,
				Titulo:  "Das Partes",
				Corpo: "Pelo presente instrumento particular de consignação, [NOME_CLIENTE], portador(a) " +
					"do documento [DOCUMENTO_CLIENTE], residente em [ENDERECO_CLIENTE], telefone " +
					"[TELEFONE_CLIENTE], doravante CONSIGNANTE, entrega à REVENDA, representada por " +
					"[NOME_VENDEDOR], doravante CONSIGNATÁRIA, o veículo abaixo descrito para venda em consignação.",
			},
			{
				ID:      "csg-objeto",
				Ordinal: 2,
				Titulo:  "Do Veículo Consignado",
				Corpo: "Veículo marca [MARCA_VEICULO], modelo [MODELO_VEICULO], ano [ANO_VEICULO], cor " +
					"[COR_VEICULO], combustível [COMBUSTIVEL_VEICULO], com [KM_VEICULO] km, placa " +
					"[PLACA_VEICULO], chassi [CHASSI_VEICULO].",
			},
			{
				ID:      "csg-preco",
				Ordinal: 3,
				Titulo:  "Do Preço de Venda e Comissão",
				Corpo: "O veículo será ofertado pelo valor de [VALOR_VENDA]. Sobre o valor efetivamente " +
					"obtido na venda incidirá comissão de [TAXA_COMISSAO]% em favor da CONSIGNATÁRIA, " +
					"deduzida no ato do repasse ao CONSIGNANTE.",
			},
			{
				ID:      "csg-prazo",
				Ordinal: 4,
				Titulo:  "Do Prazo",
				Corpo: "A consignação vigorará pelo prazo de [PRAZO_CONSIGNACAO] dias contados da " +
					"assinatura, podendo ser prorrogada por acordo escrito entre as partes. Findo o prazo " +
					"sem venda, o CONSIGNANTE retirará o veículo em até 5 dias úteis.",
			},
			{
				ID:      "csg-guarda",
				Ordinal: 5,
				Titulo:  "Da Guarda e Responsabilidade",
				Corpo: "Durante a vigência, a CONSIGNATÁRIA responde pela guarda do veículo em seu pátio, " +
					"obrigando-se a comunicar imediatamente ao CONSIGNANTE qualquer sinistro ou avaria.",
			},
			{
				ID:      "csg-foro",
				Ordinal: 6,
				Titulo:  "Do Foro",
				Corpo: "Fica eleito o foro da comarca da sede da CONSIGNATÁRIA para dirimir quaisquer " +
					"controvérsias oriundas deste contrato, firmado em [DATA_ATUAL].",
			},
		},
		VarianteGarantia: {
			{
				ID:      "gar-partes",
				Ordinal: 1,
				Titulo:  "Das Partes e do Veículo",
				Corpo: "A REVENDA, representada por [NOME_VENDEDOR], concede a [NOME_CLIENTE], documento " +
					"[DOCUMENTO_CLIENTE], telefone [TELEFONE_CLIENTE], garantia complementar sobre o " +
					"veículo marca [MARCA_VEICULO], modelo [MODELO_VEICULO], ano [ANO_VEICULO], placa " +
					"[PLACA_VEICULO], chassi [CHASSI_VEICULO], adquirido pelo valor de [VALOR_VENDA].",
			},
			{
				ID:      "gar-cobertura",
				Ordinal: 2,
				Titulo:  "Da Cobertura",
				Corpo: "A garantia cobre exclusivamente o seguinte item ou defeito: [DEFEITO_COBERTO], " +
					"limitada ao valor de [VALOR_GARANTIA].",
			},
			{
				ID:      "gar-exclusoes",
				Ordinal: 3,
				Titulo:  "Das Exclusões",
				Corpo: "Não estão cobertos itens de desgaste natural, tais como pneus, pastilhas, correias, " +
					"palhetas e lâmpadas, nem danos decorrentes de mau uso, acidente ou manutenção realizada " +
					"fora de oficina autorizada pela REVENDA.",
			},
			{
				ID:      "gar-acionamento",
				Ordinal: 4,
				Titulo:  "Do Acionamento",
				Corpo: "Constatado o defeito coberto, o COMPRADOR apresentará o veículo à REVENDA, que terá " +
					"o prazo de 30 dias para o reparo, nos termos do art. 18 do Código de Defesa do Consumidor.",
			},
			{
				ID:      "gar-vigencia",
				Ordinal: 5,
				Titulo:  "Da Vigência",
				Corpo: "Este termo entra em vigor na data de sua assinatura, firmado em [DATA_ATUAL], e " +
					"complementa, sem substituir, a garantia legal.",
			},
		},
	}}
}
