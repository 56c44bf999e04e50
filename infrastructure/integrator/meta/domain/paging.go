package metadomain

// Cursors são os cursores opacos de paginação da Graph API
type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging é o envelope de paginação retornado em toda listagem. Next,
// quando presente, é a URL completa da próxima página, já com filtros e
// cursores embutidos; deve ser seguida literalmente, nunca reconstruída.
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Envelope é a resposta padrão de listagem da Graph API
type Envelope[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}
