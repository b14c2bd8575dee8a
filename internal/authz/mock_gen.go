// internal/authz/mock_gen.go
package authz

//go:generate mockgen -source=./authority.go -destination=../mocks/mock_permission_source.go -package=mocks PermissionSource
