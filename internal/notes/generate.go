package notes

//go:generate mockgen -destination mocks/store_mock.go -package mocks github.com/gotestlab/gotestlab/internal/notes Store
