package storage

import "context"

//go:generate mockgen -source=uploader.go -destination=mocks/uploader.go -package=mocks

// Uploader é o contrato do armazenamento durável de objetos usado para
// espelhar os assets de criativos. A falha de um upload nunca deve
// derrubar uma sincronização: o chamador trata o erro como warning.
type Uploader interface {
	Upload(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error)
	PublicURL(bucket, filename string) string
}
