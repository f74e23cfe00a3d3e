// Package expiration holds the shared month/year value that pickers read and
// write. The widget depends only on Context; Store is the provider used by
// the application.
package expiration

//go:generate mockgen -source=context.go -destination=mocks/mock_context.go -package=mocks

// Context is the capability set a picker needs from the value owner.
type Context interface {
	Month() string
	Year() string
	SetMonth(value string)
	SetYear(value string)
}
