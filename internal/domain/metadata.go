package domain

// Metadata é o saco de atributos livres carregado por cada entidade.
// Guarda campos da API remota que o motor ainda não modela em colunas.
// A mesclagem por união (valor existente vence por chave) acontece no
// banco, no upsert da conta, para não abrir janela de leitura-escrita
// entre execuções concorrentes.
type Metadata map[string]any
