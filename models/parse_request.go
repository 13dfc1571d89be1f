package models

type ParseRequest struct {
	Source  string
	Content []byte

	Format InputFormat `json:"format,omitempty"`
}
